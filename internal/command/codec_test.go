package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wordbits/slip39c/internal/wordlist"
)

// run executes a command and returns its stdout, stderr, and error.
func run(cmd Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := cmd.Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestEncodeWordCommand(t *testing.T) {
	out, _, err := run(NewEncodeWordCommand(), "zero")
	if err != nil {
		t.Fatalf("encode-word: %v", err)
	}
	if out != "1111111111\n" {
		t.Errorf("output = %q, want 1111111111", out)
	}
}

func TestEncodeWordCommandNormalizes(t *testing.T) {
	out, _, err := run(NewEncodeWordCommand(), "  ZERO ")
	if err != nil {
		t.Fatalf("encode-word: %v", err)
	}
	if out != "1111111111\n" {
		t.Errorf("output = %q", out)
	}
}

func TestEncodeWordCommandPrefix(t *testing.T) {
	// Without -prefix, a bare prefix is not a word.
	_, _, err := run(NewEncodeWordCommand(), "zer")
	var nf *wordlist.WordNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want WordNotFoundError", err)
	}

	// With -prefix, the unique prefix resolves.
	cmd := NewEncodeWordCommand()
	cmd.prefix = true
	out, _, err := run(cmd, "zer")
	if err != nil {
		t.Fatalf("encode-word -prefix: %v", err)
	}
	if out != "1111111111\n" {
		t.Errorf("output = %q", out)
	}
}

func TestEncodeWordCommandAmbiguousPrefix(t *testing.T) {
	cmd := NewEncodeWordCommand()
	cmd.prefix = true
	_, _, err := run(cmd, "ac")
	var amb *wordlist.AmbiguousPrefixError
	if !errors.As(err, &amb) {
		t.Fatalf("error = %v, want AmbiguousPrefixError", err)
	}
}

func TestDecodeBitsCommand(t *testing.T) {
	out, _, err := run(NewDecodeBitsCommand(), "0000000000")
	if err != nil {
		t.Fatalf("decode-bits: %v", err)
	}
	if out != "academic\n" {
		t.Errorf("output = %q, want academic", out)
	}
}

func TestDecodeBitsCommandInvalid(t *testing.T) {
	_, _, err := run(NewDecodeBitsCommand(), "111")
	var il *wordlist.InvalidBinaryLengthError
	if !errors.As(err, &il) {
		t.Fatalf("error = %v, want InvalidBinaryLengthError", err)
	}
}

func TestWordToIndexCommand(t *testing.T) {
	out, _, err := run(NewWordToIndexCommand(), "acquire")
	if err != nil {
		t.Fatalf("word-to-index: %v", err)
	}
	if out != "3\n" {
		t.Errorf("output = %q, want 3", out)
	}
}

func TestIndexToWordCommand(t *testing.T) {
	out, _, err := run(NewIndexToWordCommand(), "1023")
	if err != nil {
		t.Fatalf("index-to-word: %v", err)
	}
	if out != "zero\n" {
		t.Errorf("output = %q, want zero", out)
	}
}

func TestIndexToWordCommandOutOfRange(t *testing.T) {
	_, _, err := run(NewIndexToWordCommand(), "1024")
	if err == nil {
		t.Fatal("index 1024 should be out of range")
	}
	_, _, err = run(NewIndexToWordCommand(), "-1")
	if err == nil {
		t.Fatal("index -1 should be out of range")
	}
	_, _, err = run(NewIndexToWordCommand(), "banana")
	if err == nil {
		t.Fatal("non-numeric index should fail")
	}
}

func TestExplainCommand(t *testing.T) {
	out, _, err := run(NewExplainCommand(), "acid")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if out != "acid -> 1 -> 0000000001\n" {
		t.Errorf("output = %q", out)
	}
}

func TestWordsCommand(t *testing.T) {
	out, _, err := run(NewWordsCommand())
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	lines := bytes.Count([]byte(out), []byte("\n"))
	if lines != wordlist.Size {
		t.Errorf("printed %d lines, want %d", lines, wordlist.Size)
	}
}

func TestCommandsRejectWrongArity(t *testing.T) {
	cases := []struct {
		cmd  Command
		args []string
	}{
		{NewEncodeWordCommand(), nil},
		{NewEncodeWordCommand(), []string{"a", "b"}},
		{NewDecodeBitsCommand(), nil},
		{NewWordToIndexCommand(), nil},
		{NewIndexToWordCommand(), nil},
		{NewExplainCommand(), []string{"a", "b"}},
		{NewWordsCommand(), []string{"extra"}},
	}
	for _, tc := range cases {
		if _, _, err := run(tc.cmd, tc.args...); err == nil {
			t.Errorf("%s with args %v should fail", tc.cmd.Name(), tc.args)
		}
	}
}
