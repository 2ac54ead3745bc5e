package opentdb

import (
	"context"
)

// API defines the operations the CLI needs from a trivia client
type API interface {
	// Categories returns the category names in service order
	Categories() []string

	// CategoryID resolves a category name to its id
	CategoryID(name string) (int, bool)

	// Difficulties returns the accepted difficulty values
	Difficulties() []string

	// Types returns the accepted question types
	Types() []string

	// Token returns the current session token
	Token() string

	// GetQuestions fetches a batch of questions
	GetQuestions(ctx context.Context, amount int, q Query) ([]Question, error)

	// CategoryQuestionCount returns the question counts of one category
	CategoryQuestionCount(ctx context.Context, name string) (CategoryCount, error)

	// GlobalQuestionCount returns the service-wide question counts
	GlobalQuestionCount(ctx context.Context) (GlobalCount, error)
}

var _ API = (*Client)(nil)
