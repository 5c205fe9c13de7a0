package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/family"
	"github.com/northhaven/kinship/pkg/pedigree"
)

// Output format constants for the tree command.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// validFormats lists the accepted tree output formats.
var validFormats = []string{FormatSVG, FormatPNG, FormatDOT, FormatJSON}

// treeCommand creates the tree command for rendering a pedigree to a file.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format      string
		output      string
		generations int
	)

	cmd := &cobra.Command{
		Use:   "tree [person-id]",
		Short: "Render a person's pedigree to svg, png, dot, or json",
		Long: `Render a person's pedigree to svg, png, dot, or json.

The tree follows parent links only, up to --generations parent-hops
from the start person. Parent identifiers that do not resolve against
the dataset still appear as nodes labeled by the raw identifier, so
gaps in the research stay visible. With no person-id, the first person
in the dataset is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if generations < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "generations must not be negative: %d", generations)
			}
			startID := ""
			if len(args) == 1 {
				startID = args[0]
			}
			return c.runTree(cmd.Context(), startID, format, output, generations)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatSVG, "output format: "+strings.Join(validFormats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <person-id>.<format>)")
	cmd.Flags().IntVarP(&generations, "generations", "g", pedigree.DefaultMaxGenerations, "generation bound in parent-hops")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, startID, format, output string, generations int) error {
	_, st, err := c.loadSite()
	if err != nil {
		return err
	}

	if startID == "" {
		first, ok := st.FirstPersonID()
		if !ok {
			return errors.New(errors.ErrCodeNotFound, "no people loaded; nothing to render")
		}
		startID = first
	}
	if _, ok := family.Find(st.People, startID); !ok {
		return errors.New(errors.ErrCodePersonNotFound, "person %q not found in dataset", startID)
	}

	p := newProgress(loggerFromContext(ctx))
	g := pedigree.Build(st.People, startID, generations)

	if output == "" {
		output = startID + "." + format
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	data, err := renderTree(ctx, g, format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	p.done(fmt.Sprintf("Rendered pedigree of %s", startID))
	printSuccess("Pedigree written")
	printFile(output)
	printStats(len(g.Nodes), len(g.Edges))
	return nil
}

// renderTree serializes the graph in the requested format.
func renderTree(ctx context.Context, g pedigree.Graph, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(pedigree.ToDOT(g)), nil
	case FormatJSON:
		return pedigree.MarshalGraph(g)
	case FormatSVG:
		return pedigree.RenderSVG(ctx, pedigree.ToDOT(g))
	case FormatPNG:
		return pedigree.RenderPNG(ctx, pedigree.ToDOT(g))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// validateFormat checks the --format flag against the supported set.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat,
		"unsupported format %q (valid: %s)", format, strings.Join(validFormats, ", "))
}
