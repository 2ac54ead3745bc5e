package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/trivia/opentdb"
)

var (
	countCategory string
	countAll      bool
)

// countsCmd represents the counts command
var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show question counts",
	Long: `Show how many questions the Open Trivia Database holds. Without flags the
service-wide totals are shown; --category shows one category and --all
queries every category.`,
	PreRunE: initializeClient,
	RunE:    runCounts,
}

func init() {
	rootCmd.AddCommand(countsCmd)

	countsCmd.Flags().StringVarP(&countCategory, "category", "c", "", "show counts for one category")
	countsCmd.Flags().BoolVar(&countAll, "all", false, "show counts for every category")
	countsCmd.MarkFlagsMutuallyExclusive("category", "all")
}

// categoryCountRow is a category count labelled with the category name
type categoryCountRow struct {
	Name                  string `json:"name" yaml:"name"`
	opentdb.CategoryCount `yaml:",inline"`
}

func runCounts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case countCategory != "":
		count, err := client.CategoryQuestionCount(ctx, countCategory)
		if err != nil {
			return fmt.Errorf("failed to get question count: %w", err)
		}
		return writeCategoryCounts(out, cfg.Output.Format, []categoryCountRow{{Name: countCategory, CategoryCount: count}})

	case countAll:
		rows, err := countAllCategories(ctx, client, cfg.Counts.Concurrency)
		if err != nil {
			return err
		}
		return writeCategoryCounts(out, cfg.Output.Format, rows)

	default:
		count, err := client.GlobalQuestionCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to get global question count: %w", err)
		}
		return writeGlobalCount(out, cfg.Output.Format, count, categoryRows(client))
	}
}

// countAllCategories fetches every category's counts with at most
// concurrency requests in flight. Rows keep the category order.
func countAllCategories(ctx context.Context, api opentdb.API, concurrency int) ([]categoryCountRow, error) {
	names := api.Categories()
	rows := make([]categoryCountRow, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			count, err := api.CategoryQuestionCount(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to get question count for %s: %w", name, err)
			}
			rows[i] = categoryCountRow{Name: name, CategoryCount: count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("categories", len(rows)).Msg("Retrieved category counts")

	return rows, nil
}
