package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdsim/reactree/shape"
)

// ValidateResult holds validation output for one shape file.
type ValidateResult struct {
	Valid   bool   `json:"valid"`
	Shape   string `json:"shape,omitempty"`
	Leaves  int    `json:"leaves"`
	Message string `json:"message,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <shape-file>",
		Short: "Validate a model-tree shape file",
		Long: `Validate a YAML model-tree shape file.

Checks the document against the shape schema and the structural rules
(legal variants, leaves without children), then reports the parsed shape.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	node, err := shape.Load(path)
	if err != nil {
		if outErr := formatter.Error("INVALID_SHAPE", err.Error(), nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, "shape validation failed")
	}

	result := ValidateResult{
		Valid:  true,
		Shape:  node.String(),
		Leaves: countLeaves(node),
	}
	formatter.VerboseLog("Validated %s", path)

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ Valid shape: %s (%d leaves)", result.Shape, result.Leaves))
}

func countLeaves(n *shape.Node) int {
	if n.Variant == shape.VariantLeaf {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += countLeaves(child)
	}
	return total
}
