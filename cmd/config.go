package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ordergen/constants"
	"ordergen/order"
)

// ParseCommandConfig extracts and validates the generation config from the
// positional arguments and flags
func ParseCommandConfig(cmd *cobra.Command, args []string) (*order.Config, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: expected <num_rows> <max_task_id>, got %d argument(s)", order.ErrInvalidArgument, len(args))
	}

	numRows, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: num_rows must be an integer, got %q", order.ErrInvalidArgument, args[0])
	}
	maxTaskID, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: max_task_id must be an integer, got %q", order.ErrInvalidArgument, args[1])
	}

	output, _ := cmd.Flags().GetString("output")

	config := &order.Config{
		NumRows:    numRows,
		MaxTaskID:  maxTaskID,
		OutputPath: output,
	}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		config.Seed = &seed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// AddGenerateFlags adds the generation flags to a cobra command
func AddGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", constants.DefaultOutputPath, "Output CSV filename")
	cmd.Flags().Int64("seed", 0, "Seed for the shuffle (random when omitted)")
	cmd.Flags().BoolP("verbose", "v", false, "Log debug details to stderr")
}
