package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplus/libdecl/decl"
	"github.com/goplus/libdecl/internal/companion"
	"github.com/goplus/libdecl/internal/onboardfilter"
)

var (
	planDepsOnly bool
	planLibs     bool
)

var planCmd = &cobra.Command{
	Use:   "plan [declarator[@tag]]",
	Short: "Print the registrations of a declarator",
	Long: `Plan runs a declarator against the configured environment and prints every
registration it issues, companions included, one per line.

A package tag selects the matching revision, e.g. OnboardFilterLib@OnboardFilter-01-01-00.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVarP(&planDepsOnly, "deps-only", "d", false, "do not register the component's own library")
	planCmd.Flags().BoolVarP(&planLibs, "libs", "l", false, "print the deduplicated link line instead")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	reg, e, err := newEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	name, err := resolveDeclArg(reg, args[0])
	if err != nil {
		return err
	}
	if err := e.Declare(name, decl.Options{DepsOnly: planDepsOnly}); err != nil {
		return fmt.Errorf("failed to declare %s: %w", name, err)
	}

	lines := e.Strings()
	if planLibs {
		lines = e.Libraries()
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// parseDeclArg parses a declarator argument in the form "name@tag" or "name".
func parseDeclArg(arg string) (name, tag string) {
	for i := len(arg) - 1; i >= 0; i-- {
		if arg[i] == '@' {
			return arg[:i], arg[i+1:]
		}
	}
	return arg, ""
}

// resolveDeclArg returns the registered declarator name arg refers to.
// Registered names are used as is; OnboardFilterLib@<tag> picks the revision
// matching tag.
func resolveDeclArg(reg *decl.Registry, arg string) (string, error) {
	if _, err := reg.Lookup(arg); err == nil {
		return arg, nil
	}
	name, tag := parseDeclArg(arg)
	if tag == "" || name != companion.OnboardFilterLib {
		return arg, nil
	}
	rev, err := onboardfilter.RevisionFor(tag)
	if err != nil {
		return "", err
	}
	return companion.OnboardFilterFor(rev), nil
}
