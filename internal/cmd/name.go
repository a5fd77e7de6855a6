package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/kbase/internal/config"
)

// NameCmd returns the `kbase name` command.
func NameCmd() *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "name [value]",
		Short: "Show or set the name used in scripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if forget || len(args) == 1 {
				value := ""
				if len(args) == 1 && !forget {
					value = args[0]
				}
				if err := (NameStore{}).SaveDisplayName(value); err != nil {
					return fmt.Errorf("save name: %w", err)
				}
			}

			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}
			if cfg.DisplayName == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin nombre")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.DisplayName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&forget, "clear", false, "forget the stored name")
	return cmd
}
