package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/records"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		database string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "check [source]",
		Short: "List dangling references and ambiguous families",
		Long: `Load a record set and list the problems that make report builders skip
branches: links to missing individuals or families, spouse links to
families the individual is not a parent of, and couples that share more
than one family.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("database") {
				cfg.Mongo.Database = database
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cfg, true)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			store, err := runner.Load(ctx, pipeline.Options{Source: reportSource(cfg, args), Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			n, f := store.Len()
			prog.done(fmt.Sprintf("Loaded %d individuals, %d families", n, f))

			findings := checkStore(store)
			printKeyValue("individuals", strconv.Itoa(n))
			printKeyValue("families", strconv.Itoa(f))
			if len(findings) == 0 {
				printSuccess("No problems found")
				return nil
			}
			for _, fd := range findings {
				printWarning("%s", fd)
			}
			if strict {
				return errors.New(errors.ErrCodeInvalidRecord, "%d problems found", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "MongoDB database (default genealogy)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when problems are found")

	return cmd
}

// checkStore lists the problems of s in a stable order.
func checkStore(s *records.MemoryStore) []string {
	var findings []string
	for _, ref := range s.Dangling() {
		findings = append(findings, fmt.Sprintf("%s.%s: %s does not exist", ref.From, ref.Field, ref.To))
	}

	for _, ind := range s.Individuals() {
		for _, famID := range ind.SpouseFamilies {
			if fam, ok := s.Family(famID); ok && !fam.HasParent(ind.ID) {
				findings = append(findings, fmt.Sprintf("%s.spouse_families: not a parent of %s", ind.ID, famID))
			}
		}
	}

	seen := make(map[[2]string]bool)
	for _, fam := range s.Families() {
		if fam.Husband == "" || fam.Wife == "" {
			continue
		}
		pair := [2]string{fam.Husband, fam.Wife}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		if _, err := s.FamilyOfParents(fam.Husband, fam.Wife); err != nil {
			findings = append(findings, errors.UserMessage(err))
		}
	}
	return findings
}
