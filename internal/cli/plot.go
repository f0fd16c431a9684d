package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tikznet/pkg/cache"
	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/render"
	"github.com/matzehuels/tikznet/pkg/render/tikz"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	output  string // output path, "-" for stdout
	format  string // overrides the output extension
	noCache bool
	style   styleFlags
}

// plotCommand creates the plot command.
func (c *CLI) plotCommand() *cobra.Command {
	opts := plotOpts{style: styleFlags{seed: -1}}

	cmd := &cobra.Command{
		Use:   "plot <network>",
		Short: "Lay out a network and write it as TikZ, CSV or a preview",
		Long: `Lay out a network and write it to a file.

The network is read from .json, .dot or .gv. The output format follows the
extension of --output (.tex, .csv, .dat, .dot, .svg, .png, .json) unless
--type is given. CSV and DAT outputs are written as two files,
<name>_nodes.<ext> and <name>_edges.<ext>.

Without --output, an interactive picker asks for the format when stdout is
a terminal; otherwise a .tex file is written next to the input.

Style keywords come from --style files and --set assignments, later ones
winning:

  tikznet plot net.json -o net.tex --style paper.toml --set node_color=red

Layouts of seeded runs (--seed or layout_seed) are cached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVarP(&opts.format, "type", "t", "", "output format, overriding the extension (see 'tikznet formats')")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	addStyleFlags(cmd, &opts.style)

	return cmd
}

// addStyleFlags registers the keyword flags shared by plot and layout.
func addStyleFlags(cmd *cobra.Command, s *styleFlags) {
	cmd.Flags().StringArrayVar(&s.files, "style", nil, "style file (.toml, .yaml, .json), repeatable")
	cmd.Flags().StringArrayVar(&s.sets, "set", nil, "style keyword as key=value, repeatable")
	cmd.Flags().Int64Var(&s.seed, "seed", -1, "layout seed (shorthand for --set layout_seed=N)")
}

// runPlot resolves the output, runs the pipeline and writes the files.
func (c *CLI) runPlot(ctx context.Context, input string, opts plotOpts) error {
	output, format, err := resolveOutput(input, opts.output, opts.format)
	if err != nil {
		return err
	}
	if output == "" {
		printDetail("No format selected")
		return nil
	}

	g, err := loadNetwork(ctx, input)
	if err != nil {
		return err
	}
	kw, err := opts.style.keywords(ctx)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
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

	parts, cached, err := renderParts(ctx, runner, res, format)
	if err != nil {
		return err
	}
	if output == "-" {
		if len(parts) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "%s output has %d files and cannot go to stdout", format, len(parts))
		}
		_, err := os.Stdout.Write(parts[0].Data)
		return err
	}

	paths := render.Paths(output, parts)
	for i, path := range paths {
		if err := writeFile(path, parts[i].Data); err != nil {
			return err
		}
	}

	printSuccess("Plotted %s", input)
	for _, path := range paths {
		printFile(path)
	}
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.CacheInfo.LayoutHit || cached)
	return nil
}

// resolveOutput returns the output path and format. An empty path with a
// nil error means the user left the format picker without choosing.
func resolveOutput(input, output, override string) (string, render.Format, error) {
	if output == "" && override == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		f, err := pickFormat()
		if err != nil || f == "" {
			return "", "", err
		}
		return defaultOutput(input, string(f)), f, nil
	}
	if output == "" {
		ext := override
		if ext == "" {
			ext = string(render.FormatTeX)
		}
		f, err := render.ParseFormat(ext)
		if err != nil {
			return "", "", err
		}
		return defaultOutput(input, string(f)), f, nil
	}
	if output == "-" {
		ext := override
		if ext == "" {
			ext = string(render.FormatTeX)
		}
		f, err := render.ParseFormat(ext)
		return output, f, err
	}
	f, err := render.FromPath(output, override)
	return output, f, err
}

// renderParts renders res through the runner's artifact cache.
func renderParts(ctx context.Context, runner *pipeline.Runner, res *pipeline.Result, format render.Format) ([]render.Part, bool, error) {
	key := cache.ArtifactKeyOpts{Format: string(format), Standalone: tikz.Standalone(res.General)}
	data, cached, err := runner.Artifact(ctx, res, key, func() ([]byte, error) {
		parts, err := render.Render(ctx, res, format)
		if err != nil {
			return nil, err
		}
		return render.EncodeParts(parts)
	})
	if err != nil {
		return nil, false, fmt.Errorf("render %s: %w", format, err)
	}
	parts, err := render.DecodeParts(data)
	if err != nil {
		return nil, false, err
	}
	return parts, cached, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// pickFormat runs the interactive format picker.
func pickFormat() (render.Format, error) {
	final, err := tea.NewProgram(NewFormatListModel(render.Formats())).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(FormatListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Format, nil
}
