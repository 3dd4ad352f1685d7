package command

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/wordbits/slip39c/internal/wordlist"
)

// EncodeWordCommand prints a word's 10-bit binary representation.
type EncodeWordCommand struct {
	*BaseCommand
	prefix bool
}

// NewEncodeWordCommand creates a new encode-word command.
func NewEncodeWordCommand() *EncodeWordCommand {
	return &EncodeWordCommand{
		BaseCommand: NewBaseCommand(
			"encode-word",
			"Encode a SLIP-39 word to its 10-bit binary representation",
			"encode-word [options] <word>",
		),
	}
}

// SetupFlags configures the flags for the encode-word command.
func (c *EncodeWordCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.prefix, "prefix", false, "Allow matching by unique prefix")
}

// Execute encodes the word.
func (c *EncodeWordCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stderr, "expected exactly one word")
		return fmt.Errorf("expected exactly one word")
	}
	word, err := resolveWord(args[0], c.prefix)
	if err != nil {
		return err
	}
	bits, err := wordlist.Encode(word)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, bits)
	return nil
}

// DecodeBitsCommand prints the word for a 10-bit binary string.
type DecodeBitsCommand struct {
	*BaseCommand
}

// NewDecodeBitsCommand creates a new decode-bits command.
func NewDecodeBitsCommand() *DecodeBitsCommand {
	return &DecodeBitsCommand{
		BaseCommand: NewBaseCommand(
			"decode-bits",
			"Decode a 10-bit binary string to its SLIP-39 word",
			"decode-bits <binary>",
		),
	}
}

// Execute decodes the binary string.
func (c *DecodeBitsCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stderr, "expected exactly one binary string")
		return fmt.Errorf("expected exactly one binary string")
	}
	word, err := wordlist.Decode(args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, word)
	return nil
}

// WordToIndexCommand prints a word's index in the catalog.
type WordToIndexCommand struct {
	*BaseCommand
	prefix bool
}

// NewWordToIndexCommand creates a new word-to-index command.
func NewWordToIndexCommand() *WordToIndexCommand {
	return &WordToIndexCommand{
		BaseCommand: NewBaseCommand(
			"word-to-index",
			"Get the index (0-1023) of a SLIP-39 word",
			"word-to-index [options] <word>",
		),
	}
}

// SetupFlags configures the flags for the word-to-index command.
func (c *WordToIndexCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.prefix, "prefix", false, "Allow matching by unique prefix")
}

// Execute looks up the index.
func (c *WordToIndexCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stderr, "expected exactly one word")
		return fmt.Errorf("expected exactly one word")
	}
	word, err := resolveWord(args[0], c.prefix)
	if err != nil {
		return err
	}
	index, ok := wordlist.Default().Index(word)
	if !ok {
		return &wordlist.WordNotFoundError{Word: word}
	}
	_, _ = fmt.Fprintln(stdout, index)
	return nil
}

// IndexToWordCommand prints the word at a catalog index.
type IndexToWordCommand struct {
	*BaseCommand
}

// NewIndexToWordCommand creates a new index-to-word command.
func NewIndexToWordCommand() *IndexToWordCommand {
	return &IndexToWordCommand{
		BaseCommand: NewBaseCommand(
			"index-to-word",
			"Get the SLIP-39 word at a specific index (0-1023)",
			"index-to-word <index>",
		),
	}
}

// Execute looks up the word.
func (c *IndexToWordCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stderr, "expected exactly one index")
		return fmt.Errorf("expected exactly one index")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	word, ok := wordlist.Default().Word(index)
	if !ok {
		return fmt.Errorf("index %d out of range (0-%d)", index, wordlist.Size-1)
	}
	_, _ = fmt.Fprintln(stdout, word)
	return nil
}

// ExplainCommand prints a word's full mapping: word -> index -> bits.
type ExplainCommand struct {
	*BaseCommand
	prefix bool
}

// NewExplainCommand creates a new explain command.
func NewExplainCommand() *ExplainCommand {
	return &ExplainCommand{
		BaseCommand: NewBaseCommand(
			"explain",
			"Explain a word: show word -> index -> bits",
			"explain [options] <word>",
		),
	}
}

// SetupFlags configures the flags for the explain command.
func (c *ExplainCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.prefix, "prefix", false, "Allow matching by unique prefix")
}

// Execute explains the word.
func (c *ExplainCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stderr, "expected exactly one word")
		return fmt.Errorf("expected exactly one word")
	}
	word, err := resolveWord(args[0], c.prefix)
	if err != nil {
		return err
	}
	index, ok := wordlist.Default().Index(word)
	if !ok {
		return &wordlist.WordNotFoundError{Word: word}
	}
	bits, err := wordlist.Encode(word)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "%s -> %d -> %s\n", word, index, bits)
	return nil
}

// WordsCommand prints the full catalog, one word per line.
type WordsCommand struct {
	*BaseCommand
	indexed bool
}

// NewWordsCommand creates a new words command.
func NewWordsCommand() *WordsCommand {
	return &WordsCommand{
		BaseCommand: NewBaseCommand(
			"words",
			"Print the full SLIP-39 wordlist",
			"words [options]",
		),
	}
}

// SetupFlags configures the flags for the words command.
func (c *WordsCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.indexed, "indexed", false, "Prefix each word with its index")
}

// Execute prints the catalog.
func (c *WordsCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	for i, word := range wordlist.Default().Words() {
		if c.indexed {
			_, _ = fmt.Fprintf(stdout, "%4d %s\n", i, word)
		} else {
			_, _ = fmt.Fprintln(stdout, word)
		}
	}
	return nil
}
