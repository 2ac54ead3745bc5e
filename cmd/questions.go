package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trivia/config"
	"github.com/s0up4200/trivia/filter"
	"github.com/s0up4200/trivia/opentdb"
)

var (
	amount     int
	category   string
	difficulty string
	qType      string
	filterExpr string
	preset     string
)

// questionsCmd represents the questions command
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Fetch a batch of trivia questions",
	Long: `Fetch up to 50 questions, optionally restricted to a category, difficulty
and question type. Fetched questions can be narrowed further with a filter
expression, for example:

  trivia questions -n 20 -f 'isMultiple() && containsFold(Text, "capital")'`,
	PreRunE: initializeClient,
	RunE:    runQuestions,
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().IntVarP(&amount, "amount", "n", 0, "number of questions (1-50)")
	questionsCmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	questionsCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "difficulty: easy, medium or hard")
	questionsCmd.Flags().StringVarP(&qType, "type", "t", "", "question type: multiple or boolean")
	questionsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	questionsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// questionRequest is a fully resolved questions invocation
type questionRequest struct {
	Amount int
	Query  opentdb.Query
	Filter string
}

func runQuestions(cmd *cobra.Command, args []string) error {
	req, err := resolveQuestionRequest(cmd, cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Int("amount", req.Amount).
		Str("category", req.Query.Category).
		Str("difficulty", req.Query.Difficulty).
		Str("type", req.Query.Type).
		Str("filter", req.Filter).
		Msg("Fetching questions")

	questions, err := fetchQuestions(cmd.Context(), client, req)
	if err != nil {
		return err
	}

	return writeQuestions(cmd.OutOrStdout(), cfg.Output.Format, questions)
}

// resolveQuestionRequest merges command line flags over the configured defaults
func resolveQuestionRequest(cmd *cobra.Command, cfg *config.Config) (questionRequest, error) {
	req := questionRequest{
		Amount: cfg.Questions.Amount,
		Query: opentdb.Query{
			Category:   cfg.Questions.Category,
			Difficulty: cfg.Questions.Difficulty,
			Type:       cfg.Questions.Type,
		},
	}

	flags := cmd.Flags()
	if flags.Changed("amount") {
		req.Amount = amount
	}
	if flags.Changed("category") {
		req.Query.Category = category
	}
	if flags.Changed("difficulty") {
		req.Query.Difficulty = difficulty
	}
	if flags.Changed("type") {
		req.Query.Type = qType
	}

	expr, err := getFilterExpression(cfg.Filter, filterExpr, preset)
	if err != nil {
		return questionRequest{}, err
	}
	req.Filter = expr

	return req, nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression(cfg config.FilterConfig, expr, preset string) (string, error) {
	// Priority: command line filter > preset > default > none
	if expr != "" {
		return expr, nil
	}

	if preset != "" {
		if p, ok := cfg.Presets[preset]; ok {
			return p.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.DefaultExpression, nil
}

// fetchQuestions fetches questions and applies the request's filter, if any
func fetchQuestions(ctx context.Context, api opentdb.API, req questionRequest) ([]opentdb.Question, error) {
	// Compile first so a bad expression doesn't spend questions from the session
	var f *filter.Filter
	if req.Filter != "" {
		var err error
		f, err = filter.Compile(req.Filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	questions, err := api.GetQuestions(ctx, req.Amount, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	if f == nil {
		return questions, nil
	}

	matched, err := f.Apply(questions)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("fetched", len(questions)).
		Int("matched", len(matched)).
		Msg("Applied question filter")

	return matched, nil
}
