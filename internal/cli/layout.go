package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tikznet/pkg/pipeline"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	sf := styleFlags{seed: -1}

	cmd := &cobra.Command{
		Use:   "layout <network>",
		Short: "Compute node coordinates without rendering",
		Long: `Compute node coordinates without rendering.

The coordinates are fitted to the canvas, in centimeters, and written as a
style file with a single "layout" keyword:

  {"layout": {"a": [0.35, 0.35], "b": [5.65, 5.65]}}

Passing that file to 'plot --style' draws the network at exactly these
positions, so an expensive layout can be computed once and restyled freely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], sf, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json), - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addStyleFlags(cmd, &sf)

	return cmd
}

// runLayout loads the network, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, sf styleFlags, output string, noCache bool) error {
	g, err := loadNetwork(ctx, input)
	if err != nil {
		return err
	}
	kw, err := sf.keywords(ctx)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()
	res, err := runner.Plot(ctx, g, kw)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = defaultOutput(input, "layout.json")
	}
	if err := writeFile(output, layoutJSON(res.Nodes)); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Plot", appName+" plot "+input+" --style "+output)
	return nil
}

// layoutJSON writes node coordinates in node order.
func layoutJSON(nodes []pipeline.NodeRecord) []byte {
	var buf bytes.Buffer
	buf.WriteString("{\n  \"layout\": {")
	for i, n := range nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		id, _ := json.Marshal(string(n.ID))
		fmt.Fprintf(&buf, "\n    %s: [%s, %s]", id, coord(n.X), coord(n.Y))
	}
	if len(nodes) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("}\n}\n")
	return buf.Bytes()
}

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
