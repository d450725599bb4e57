package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists [declarator]",
	Short: "Report whether a declarator is usable in the environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered declarators",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(listCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	reg, e, err := newEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	d, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d.Exists(e))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	reg, _, err := newEnv()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
