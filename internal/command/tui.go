package command

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/wordbits/slip39c/internal/config"
	"github.com/wordbits/slip39c/internal/session"
	"github.com/wordbits/slip39c/internal/tui"
	"github.com/wordbits/slip39c/internal/wordlist"
)

// TUICommand launches the interactive calculator.
type TUICommand struct {
	*BaseCommand
	config *config.Config
	paper  bool
	mode   string
}

// NewTUICommand creates a new tui command.
func NewTUICommand(cfg *config.Config) *TUICommand {
	return &TUICommand{
		BaseCommand: NewBaseCommand(
			"tui",
			"Launch the interactive calculator (default)",
			"tui [options]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the tui command.
func (c *TUICommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.paper, "paper", false, "Keep only the most recent word (air-gapped paper workflow)")
	fs.StringVar(&c.mode, "mode", "", "Skip the startup modal: word or binary")
}

// Execute runs the interactive session until the user exits.
func (c *TUICommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the interactive session requires a terminal (stdin is not a TTY)")
	}

	// Flags win over config.
	paper := c.paper || c.config.GetCommandBool("tui", "paper")
	mode := c.mode
	if mode == "" {
		mode, _ = c.config.GetCommandOption("tui", "mode")
	}

	sess, err := newSession(mode, paper)
	if err != nil {
		return err
	}

	// stdout belongs to the alternate screen, so debug output goes to a
	// file when requested. The env var wins over config.
	logPath := os.Getenv("SLIP39C_DEBUG")
	if logPath == "" {
		logPath, _ = c.config.GetCommandOption("tui", "debug-log")
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "slip39c")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		slog.Debug("starting interactive session",
			"session_id", uuid.NewString(), "paper", paper, "mode", mode)
	}

	p := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

// newSession builds a session for the requested mode string. An empty
// mode starts at the selection modal.
func newSession(mode string, paper bool) (*session.Session, error) {
	catalog := wordlist.Default()
	switch mode {
	case "":
		return session.New(catalog, paper), nil
	case "word":
		return session.NewWithMode(catalog, session.ModeWord, paper), nil
	case "binary":
		return session.NewWithMode(catalog, session.ModeBinary, paper), nil
	default:
		return nil, fmt.Errorf("invalid mode %q: expected word or binary", mode)
	}
}
