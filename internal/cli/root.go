package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Familytree prints the descendants of a person",
		Long: `Familytree builds the descendant tree of one person from a genealogy record set
(JSON, YAML or MongoDB) and prints it as text, CSV, HTML, Graphviz or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/familytree/config.toml)")

	root.AddCommand(c.reportCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.seedCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
