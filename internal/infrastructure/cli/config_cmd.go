package cli

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/termsh/internal/infrastructure/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the configuration file",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			raw, err := yaml.Marshal(container.Config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			fmt.Fprintln(cmd.OutOrStdout(), container.Loader.Path())
			return nil
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the configuration deviates from the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			diff := cmp.Diff(config.DefaultConfig(), container.Config)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "configuration matches the defaults")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration (backing up the current file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			if backup, err := container.Loader.Backup(); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up current config to %s\n", backup)
			}
			if _, err := container.Loader.Reset(); err != nil {
				return fmt.Errorf("reset config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset to defaults at %s\n", container.Loader.Path())
			return nil
		},
	}

	cmd.AddCommand(showCmd, pathCmd, diffCmd, resetCmd)
	return cmd
}
