package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/config"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/render"
)

// reportFlags holds the flags of the report command that are not copied
// straight into pipeline.Options.
type reportFlags struct {
	root                    string
	format                  string
	title                   string
	order                   string
	database                string
	output                  string
	hide                    []string
	sort                    bool
	maxDepth                int
	noCache                 bool
	refresh                 bool
	levels                  bool
	detailed                bool
	divorcedWithChildren    bool
	divorcedWithoutChildren bool
}

// reportCommand creates the report command.
func (c *CLI) reportCommand() *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report [source]",
		Short: "Print the descendants of an individual",
		Long: `Print the descendants of an individual.

The source is a JSON or YAML record file or a mongodb:// URI. Without a
source argument, server.source and then mongo.uri from the config file are
used.

Every couple is printed with its children below it. A person with several
partners appears once per union. Divorced partners are printed according
to --divorced-with-children and --divorced-without-children, and a partner
already printed through another union is not repeated.

Reports are cached; --refresh rebuilds, --no-cache disables the cache.`,
		Example: `  familytree report family.json --root I1
  familytree report family.yaml -r I1 --sort --order youngest -o tree.html
  familytree report mongodb://localhost:27017 -r I1 -f csv --levels --hide email,address`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := reportOptions(cmd, cfg, f, args)
			if err != nil {
				return err
			}
			return c.runReport(cmd, cfg, opts, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.root, "root", "r", "", "id of the individual whose descendants are printed (required)")
	flags.StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(render.Formats, ", "))
	flags.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&f.title, "title", "", "report title (default \"Descendants of <name>\")")
	flags.BoolVar(&f.sort, "sort", false, "sort siblings by birth date")
	flags.StringVar(&f.order, "order", "", "sort order: oldest (default), youngest")
	flags.IntVar(&f.maxDepth, "max-depth", 0, "maximum number of generations")
	flags.StringVar(&f.database, "database", "", "MongoDB database (default genealogy)")
	flags.StringSliceVar(&f.hide, "hide", nil, "fields to leave out: "+strings.Join(hideableFields(), ", "))
	flags.BoolVar(&f.divorcedWithChildren, "divorced-with-children", true, "print divorced partners of unions with children")
	flags.BoolVar(&f.divorcedWithoutChildren, "divorced-without-children", true, "print divorced partners of childless unions")
	flags.BoolVar(&f.levels, "levels", false, "add generation columns to CSV reports")
	flags.BoolVar(&f.detailed, "detailed", false, "add email and address to diagram boxes")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	flags.BoolVar(&f.refresh, "refresh", false, "ignore cached datasets and reports")
	_ = cmd.MarkFlagRequired("root")
	_ = cmd.RegisterFlagCompletionFunc("format", formatChoices)
	_ = cmd.RegisterFlagCompletionFunc("hide", hideChoices)

	return cmd
}

// reportOptions merges the config file and the flags that were set.
func reportOptions(cmd *cobra.Command, cfg config.Config, f reportFlags, args []string) (pipeline.Options, error) {
	changed := cmd.Flags().Changed

	opts := pipeline.Options{
		Source:    reportSource(cfg, args),
		Database:  cfg.Mongo.Database,
		RootID:    f.root,
		Title:     cfg.Report.Title,
		Format:    cfg.Report.Format,
		Sort:      cfg.Report.Sort,
		Order:     cfg.Report.Order,
		MaxDepth:  cfg.Build.MaxDepth,
		Print:     cfg.RenderOptions(),
		CSVLevels: cfg.Print.CSVLevels,
		Detailed:  cfg.Print.Detailed,
		Refresh:   f.refresh,
	}
	if opts.Source == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "no record source: pass a file or URI, or set server.source or mongo.uri")
	}

	switch {
	case changed("format"):
		opts.Format = f.format
	case f.output != "":
		if format, ok := formatFromPath(f.output); ok {
			opts.Format = format
		}
	}
	if changed("title") {
		opts.Title = f.title
	}
	if changed("sort") {
		opts.Sort = f.sort
	}
	if changed("order") {
		opts.Order = f.order
		opts.Sort = opts.Sort || !changed("sort")
	}
	if changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if changed("database") {
		opts.Database = f.database
	}
	if changed("levels") {
		opts.CSVLevels = f.levels
	}
	if changed("detailed") {
		opts.Detailed = f.detailed
	}
	if changed("divorced-with-children") {
		opts.Print.Policy.ShowDivorcedWithChildren = f.divorcedWithChildren
	}
	if changed("divorced-without-children") {
		opts.Print.Policy.ShowDivorcedWithoutChildren = f.divorcedWithoutChildren
	}
	if err := hideFields(&opts.Print, f.hide); err != nil {
		return opts, err
	}
	return opts, opts.ValidateAndSetDefaults()
}

// reportSource returns the positional source, else the configured one.
func reportSource(cfg config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Server.Source != "" {
		return cfg.Server.Source
	}
	return cfg.Mongo.URI
}

// formatFromPath maps an output file extension to a report format.
func formatFromPath(path string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range render.Formats {
		if ext == render.Extension(f) {
			return f, true
		}
	}
	if ext == "htm" {
		return render.FormatHTML, true
	}
	return "", false
}

// hideSwitches maps --hide names to the switch they clear.
func hideSwitches(o *render.Options) map[string]*bool {
	return map[string]*bool{
		"id":           &o.ShowID,
		"gender":       &o.ShowGender,
		"relationship": &o.ShowRelationship,
		"email":        &o.ShowEmail,
		"address":      &o.ShowAddress,
		"age":          &o.ShowAgeForDead,
		"birth":        &o.ShowBirthDate,
		"death":        &o.ShowDeathDate,
		"first-name":   &o.ShowFirstName,
		"maiden-name":  &o.ShowMaidenName,
		"married-name": &o.ShowMarriedName,
	}
}

func hideableFields() []string {
	var names []string
	for name := range hideSwitches(&render.Options{}) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hideFields clears the switches named in fields.
func hideFields(o *render.Options, fields []string) error {
	switches := hideSwitches(o)
	for _, name := range fields {
		sw, ok := switches[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "unknown field %q (must be one of %s)",
				name, strings.Join(hideableFields(), ", "))
		}
		*sw = false
	}
	return nil
}

// runReport executes the pipeline and writes the report.
func (c *CLI) runReport(cmd *cobra.Command, cfg config.Config, opts pipeline.Options, f reportFlags) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, cfg, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if f.output == "" {
		_, err := cmd.OutOrStdout().Write(result.Report)
		return err
	}
	if err := writeReport(ctx, f.output, result.Report); err != nil {
		return err
	}

	printSuccess("Wrote %s report for %s", opts.Format, opts.RootID)
	printFile(f.output)
	printStats(result.Stats.Nodes, len(result.Warnings), result.CacheInfo.ReportHit)
	if len(result.Warnings) > 0 {
		printNextStep("List dangling references", fmt.Sprintf("%s check %s", appName, opts.Source))
	}
	return nil
}

// writeReport writes data to path, creating parent directories.
func writeReport(ctx context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("wrote report", "path", path, "bytes", len(data))
	return nil
}

func formatChoices(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return slices.Clone(render.Formats), cobra.ShellCompDirectiveNoFileComp
}

func hideChoices(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return hideableFields(), cobra.ShellCompDirectiveNoFileComp
}
