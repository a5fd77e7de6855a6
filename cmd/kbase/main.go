package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/clipboard"
	"github.com/gravitrone/kbase/internal/cmd"
	"github.com/gravitrone/kbase/internal/ui"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	flags := &cmd.Flags{}
	root := &cobra.Command{
		Use:   "kbase",
		Short: "kbase - knowledge base browser",
		Long:  "kbase: browse scripts, resources and frequently asked questions from a static knowledge base.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Register(root)

	root.AddCommand(cmd.ServeCmd(flags))
	root.AddCommand(cmd.SearchCmd(flags))
	root.AddCommand(cmd.NameCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(flags *cmd.Flags) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("the browser needs an interactive terminal; try 'kbase search' or 'kbase serve'")
	}

	env, err := flags.Env("")
	if err != nil {
		return err
	}
	defer env.Close()

	// The OSC 52 fallback must not interleave with the renderer on stdout.
	var term io.Writer
	if tty, err := clipboard.OpenTerminal(clipboard.TerminalPath); err == nil {
		defer tty.Close()
		term = tty
	} else {
		env.Logger.Warn("clipboard fallback disabled", zap.Error(err))
	}

	app := ui.NewApp(ui.Options{
		Loader:      env.Loader,
		FAQFile:     env.Config.FAQFile,
		Table:       env.Table,
		Names:       cmd.NameStore{},
		DisplayName: env.Config.DisplayName,
		Clipboard:   clipboard.New(term),
		Opener:      ui.SystemOpener,
		DownloadDir: env.Config.DownloadDir,
		Logger:      env.Logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
