package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/camerondurham/typy-cli/internal/config"
)

const starterConfig = `# typy configuration
# Every table and key is optional. Remove the leading "# " to enable a value.

[theme]
# fg = "#cdd6f4"
# missing = "#6c7086"
# error = "#f38ba8"
# accent = "#cba6f7"

[graph]
# data = "#89b4fa"
# title = "#cdd6f4"
# axis = "#585b70"

[cursor]
# default, blinking-block, steady-block, blinking-underline,
# steady-underline, blinking-bar, steady-bar
# style = "default"

[modes]
# normal, uppercase, punctuation
# default_mode = "normal"
# uppercase_chance = "0.25"
# punctuation_chance = "0.1"

[language]
# lang = "english"
`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the typy configuration file",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigPathCmd(), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, report := config.LoadFrom(config.Candidates()...)
			for _, w := range report.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
			}

			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List candidate config paths, marking the one in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report := config.LoadFrom(config.Candidates()...)
			for _, path := range config.Candidates() {
				marker := " "
				if path == report.Path {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, path)
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				home, err := config.HomePath()
				if err != nil {
					return err
				}
				target = home
			}

			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("stat %s: %w", target, err)
				}
			}

			if err := config.WriteFile(target, []byte(starterConfig)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "write to this path instead of ~/.config/typy/config.toml")
	return cmd
}
