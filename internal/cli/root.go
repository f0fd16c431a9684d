package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tikznet/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Commands read their logger from the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "tikznet draws networks as tikz-network pictures",
		Long: `tikznet lays out a network and writes it as a tikz-network LaTeX picture,
as node and edge lists for tikz-network, or as a Graphviz preview.

Visual attributes are given as style keywords, either in a style file
(--style) or on the command line (--set node_color=red).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.plotCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
