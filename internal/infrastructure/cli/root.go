// Package cli provides the cobra command tree, the interactive loop and the
// terminal-facing adapters (prompter, line reader, prompt rendering).
package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/doeshing/termsh/internal/app"
)

const version = "0.3.0"

type rootFlags struct {
	command    string
	yes        bool
	quiet      bool
	noHistory  bool
	verbose    bool
	configPath string
	prompt     string
}

// NewRootCmd builds the termsh command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "termsh",
		Short:   "An interactive shell with guard rails",
		Long:    "termsh is an interactive command shell with builtins, a configurable\nprompt, bounded external execution and confirmation gates for\nhigh-risk commands.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			if flags.prompt != "" {
				return persistPrompt(container, flags.prompt, cmd.OutOrStdout())
			}
			if flags.command != "" {
				return runSingleShot(container, flags)
			}
			return runInteractive(container, flags, cmd)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.command, "command", "c", "", "run a single command and exit")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "auto-confirm high-risk prompts (still printed)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the startup banner")
	cmd.Flags().BoolVar(&flags.noHistory, "no-history", false, "do not persist command history this session")
	cmd.Flags().StringVar(&flags.prompt, "prompt", "", "persist a new prompt template and exit")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default: per-user termsh directory)")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newDoctorCmd(flags))
	return cmd
}

// Execute runs the command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

func buildContainer(flags *rootFlags, cmd *cobra.Command) *app.Container {
	return app.New(app.Options{
		ConfigPath: flags.configPath,
		Prompter:   NewStdinPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		NoHistory:  flags.noHistory,
		Verbose:    flags.verbose || os.Getenv("TERMSH_DEBUG") != "",
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
	})
}

func persistPrompt(container *app.Container, template string, out io.Writer) error {
	cfg := container.Config
	cfg.Prompt = template
	if err := container.Loader.Save(cfg); err != nil {
		return fmt.Errorf("save prompt: %w", err)
	}
	fmt.Fprintf(out, "Prompt set to %q\n", template)
	return nil
}

func runSingleShot(container *app.Container, flags *rootFlags) error {
	// An interrupt while the command runs must still flush history before the
	// process dies.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
			container.Dispatch.FlushHistory()
			os.Exit(130)
		case <-done:
		}
	}()

	container.Dispatch.Dispatch(flags.command, flags.yes)
	close(done)
	signal.Stop(sig)
	container.Dispatch.FlushHistory()
	return nil
}

func runInteractive(container *app.Container, flags *rootFlags, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if container.ConfigWarning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "termsh: "+container.ConfigWarning)
	}
	if !flags.quiet {
		printBanner(out, container)
	}

	reader, err := NewReader(
		RenderPrompt(container.Config.Prompt, runtime.GOOS),
		app.HistoryFilePath(),
		container.Table.Keywords(),
	)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer reader.Close()

	for {
		reader.SetPrompt(RenderPrompt(container.Config.Prompt, runtime.GOOS))
		line, err := reader.Readline()
		switch {
		case err == readline.ErrInterrupt:
			// Ctrl-C abandons the current line, never the session. Flushing
			// here means an eventual Ctrl-\ or kill loses nothing.
			container.Dispatch.FlushHistory()
			fmt.Fprintln(out, "(interrupt — type exit or press Ctrl-D to leave)")
			continue
		case err == io.EOF:
			fmt.Fprintln(out, "Goodbye!")
			container.Dispatch.FlushHistory()
			return nil
		case err != nil:
			container.Dispatch.FlushHistory()
			return err
		}

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			reader.AppendHistory(trimmed)
		}
		if !container.Dispatch.Dispatch(line, flags.yes) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
}

func printBanner(out io.Writer, container *app.Container) {
	fmt.Fprintf(out, "termsh %s — type 'help' for builtins, 'exit' to leave\n", version)
	fmt.Fprintf(out, "config: %s | timeout: %ds | history: %s\n",
		container.Loader.Path(),
		container.Config.CmdTimeoutSeconds,
		historyLabel(container),
	)
}

func historyLabel(container *app.Container) string {
	if container.History == nil {
		return "off"
	}
	return container.History.Path()
}
