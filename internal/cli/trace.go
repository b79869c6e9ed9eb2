package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdsim/reactree/tracelog"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	Step     int64 // 0 means every step
}

// TraceStep is one step's reactions in the trace output.
type TraceStep struct {
	StepSeq   int64             `json:"step_seq"`
	Reactions []tracelog.Record `json:"reactions"`
}

// TraceResult holds the complete trace output.
type TraceResult struct {
	Steps          []TraceStep `json:"steps"`
	TotalReactions int         `json:"total_reactions"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Dump a step trace database",
		Long: `Dump the reactions recorded in a step trace database.

Each step lists its collected reactions in dispatch order: kind by kind,
tree order within a kind.

Examples:
  reactree trace --db ./trace.db
  reactree trace --db ./trace.db --step 12
  reactree trace --db ./trace.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to trace database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().Int64Var(&opts.Step, "step", 0, "dump only this step sequence number")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	ctx := context.Background()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := tracelog.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer st.Close()

	steps, err := st.Steps(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list steps", err)
	}
	if opts.Step != 0 {
		steps = filterSteps(steps, opts.Step)
		if len(steps) == 0 {
			return NewExitError(ExitCommandError, fmt.Sprintf("step %d not found", opts.Step))
		}
	}

	result := TraceResult{}
	for _, seq := range steps {
		records, err := st.StepRecords(ctx, seq)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read step %d", seq), err)
		}
		result.Steps = append(result.Steps, TraceStep{StepSeq: seq, Reactions: records})
		result.TotalReactions += len(records)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(formatTrace(result))
}

func filterSteps(steps []int64, want int64) []int64 {
	for _, s := range steps {
		if s == want {
			return []int64{s}
		}
	}
	return nil
}

func formatTrace(result TraceResult) string {
	var b strings.Builder
	for _, step := range result.Steps {
		fmt.Fprintf(&b, "step %d (%d reactions)\n", step.StepSeq, len(step.Reactions))
		for _, r := range step.Reactions {
			fmt.Fprintf(&b, "  %3d  %-19s %-9s %-8s %s\n",
				r.DispatchSeq, r.Kind, r.Trigger, r.NodePath, r.ReactionID)
		}
	}
	fmt.Fprintf(&b, "%d steps, %d reactions", len(result.Steps), result.TotalReactions)
	return b.String()
}
