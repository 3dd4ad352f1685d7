package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wordbits/slip39c/internal/command"
	"github.com/wordbits/slip39c/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// If config doesn't exist or can't be read, start from an empty one
		cfg = config.NewConfig()
	}

	registry := command.NewRegistry()

	// Register built-in commands
	helpCmd := command.NewHelpCommand(registry)
	registry.Register(helpCmd)
	registry.Register(command.NewVersionCommand(version))
	registry.Register(command.NewConfigCommand(cfg))
	registry.Register(command.NewInitCommand())
	registry.Register(command.NewTUICommand(cfg))
	registry.Register(command.NewEncodeWordCommand())
	registry.Register(command.NewDecodeBitsCommand())
	registry.Register(command.NewWordToIndexCommand())
	registry.Register(command.NewIndexToWordCommand())
	registry.Register(command.NewExplainCommand())
	registry.Register(command.NewWordsCommand())

	// No command starts the interactive session.
	cmdName := "tui"
	var cmdArgs []string
	if len(os.Args) > 1 {
		cmdName = os.Args[1]
		cmdArgs = os.Args[2:]
	}

	// Handle special case for help
	if cmdName == "-h" || cmdName == "--help" {
		return helpCmd.Execute([]string{}, os.Stdout, os.Stderr)
	}

	cmd, err := registry.Get(cmdName)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		_, _ = fmt.Fprintln(os.Stderr, "Use 'slip39c help' to see available commands.")
		return err
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ExitOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.Usage())
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n\n", cmd.Description())
		_, _ = fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
	}

	cmd.SetupFlags(fs)

	if err := fs.Parse(cmdArgs); err != nil {
		return err
	}

	return cmd.Execute(fs.Args(), os.Stdout, os.Stderr)
}
