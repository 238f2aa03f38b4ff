package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphdraw/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The configuration file is loaded in PersistentPreRunE, so every
// subcommand sees c.Config and a logger configured from it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "graphdraw plots undirected graphs as interactive web pages",
		Long:          `graphdraw is a CLI tool for plotting undirected graphs. Vertices are placed at random positions, colored individually or by connected component, and written as an interactive HTML page that opens in your browser.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			c.Logger.Debug("starting", "version", buildinfo.Version, "commit", buildinfo.Commit)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/graphdraw/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
