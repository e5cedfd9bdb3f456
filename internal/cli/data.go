package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fio "github.com/matzehuels/familytree/pkg/io"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/source/mongo"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:   "convert <source> <output>",
		Short: "Convert a record set to JSON or YAML",
		Long: `Convert a record set to JSON or YAML.

The source is a record file or a mongodb:// URI; the output format follows
the extension of the output file (.json, .yaml or .yml).`,
		Example: `  familytree convert family.yaml family.json
  familytree convert mongodb://localhost:27017 backup.json --database genealogy`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cfg, true)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("database") {
				database = cfg.Mongo.Database
			}
			store, err := runner.Load(ctx, pipeline.Options{Source: args[0], Database: database})
			if err != nil {
				return err
			}
			if err := fio.Export(store, args[1]); err != nil {
				return err
			}

			n, f := store.Len()
			printSuccess("Converted %d individuals, %d families", n, f)
			printFile(args[1])
			printNextStep("Print a report", fmt.Sprintf("%s report %s --root <id>", appName, args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "MongoDB database of a mongodb:// source")
	return cmd
}

// seedCommand creates the seed command.
func (c *CLI) seedCommand() *cobra.Command {
	var uri, database string

	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Replace the MongoDB records with a record file",
		Long: `Replace the individuals and families collections of a MongoDB database
with the records of a JSON or YAML file. Existing documents are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("uri") {
				uri = cfg.Mongo.URI
			}
			if !cmd.Flags().Changed("database") {
				database = cfg.Mongo.Database
			}

			store, err := fio.Import(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			mcfg := mongo.Config{URI: uri, Database: database}
			if err := mongo.Seed(ctx, mcfg, store); err != nil {
				return err
			}
			n, f := store.Len()
			prog.done(fmt.Sprintf("Seeded %d individuals, %d families", n, f))
			printSuccess("Seeded %s", mongo.New(mcfg).Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "MongoDB connection URI (default mongo.uri)")
	cmd.Flags().StringVar(&database, "database", "", "MongoDB database (default genealogy)")
	return cmd
}
