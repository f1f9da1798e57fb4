/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ordergen/logger"
	"ordergen/order"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the ordergen command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ordergen <num_rows> <max_task_id>",
		Short: "Generate a CSV of shuffled, evenly distributed task ids",
		Long: `Generate a CSV file with the columns order and task_id.
Task ids run from 1 to max_task_id and each one appears as close to
equally often as possible, in random order.`,
		Args:          invalidArgs(cobra.ExactArgs(2)),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGenerate,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", order.ErrInvalidArgument, err)
	})

	AddGenerateFlags(root)
	root.AddCommand(newGenerateDocsCmd())

	return root
}

// invalidArgs tags positional argument errors so Run prints usage for them
func invalidArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", order.ErrInvalidArgument, err)
		}
		return nil
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := ParseCommandConfig(cmd, args)
	if err != nil {
		return err
	}

	level := logger.LevelError
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logger.LevelDebug
	}
	ctx := logger.ContextWithFields(cmd.Context(), logger.String("run_id", uuid.NewString()))
	log := logger.NewLoggerWithOutput(cmd.ErrOrStderr(), level).WithContext(ctx)

	res, err := order.Generate(*config, log)
	if err != nil {
		return err
	}

	for _, line := range order.Summary(res) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// Run executes the CLI with the given arguments and returns the exit code
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	c, err := root.ExecuteC()
	if err != nil {
		if c == nil {
			c = root
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, order.ErrInvalidArgument) {
			fmt.Fprint(stderr, c.UsageString())
		}
		return 1
	}
	return 0
}

// Execute runs the CLI against the process arguments and exits non-zero on failure
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// GetRootCmd returns the root command, used by the docs generator
func GetRootCmd() *cobra.Command {
	return rootCmd
}
