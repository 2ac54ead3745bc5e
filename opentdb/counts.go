package opentdb

import (
	"context"
	"net/url"
	"strconv"
)

// CategoryCount holds the number of verified questions in one category
type CategoryCount struct {
	CategoryID int `json:"category_id" yaml:"category_id"`
	Total      int `json:"total" yaml:"total"`
	Easy       int `json:"easy" yaml:"easy"`
	Medium     int `json:"medium" yaml:"medium"`
	Hard       int `json:"hard" yaml:"hard"`
}

// QuestionTotals holds the service-wide question counters for a scope
type QuestionTotals struct {
	Total    int `json:"total_num_of_questions" yaml:"total"`
	Pending  int `json:"total_num_of_pending_questions" yaml:"pending"`
	Verified int `json:"total_num_of_verified_questions" yaml:"verified"`
	Rejected int `json:"total_num_of_rejected_questions" yaml:"rejected"`
}

// GlobalCount holds the overall totals and the totals per category id
type GlobalCount struct {
	Overall    QuestionTotals         `json:"overall" yaml:"overall"`
	Categories map[int]QuestionTotals `json:"categories" yaml:"categories"`
}

type categoryCountResponse struct {
	CategoryID            int `json:"category_id"`
	CategoryQuestionCount struct {
		Total  int `json:"total_question_count"`
		Easy   int `json:"total_easy_question_count"`
		Medium int `json:"total_medium_question_count"`
		Hard   int `json:"total_hard_question_count"`
	} `json:"category_question_count"`
}

type globalCountResponse struct {
	Overall    QuestionTotals            `json:"overall"`
	Categories map[string]QuestionTotals `json:"categories"`
}

// CategoryQuestionCount returns the question counts for the named category.
// It only reads the category table, so it is safe to call concurrently.
func (c *Client) CategoryQuestionCount(ctx context.Context, name string) (CategoryCount, error) {
	id, err := c.resolveCategory(name)
	if err != nil {
		return CategoryCount{}, err
	}

	params := url.Values{}
	params.Set("category", strconv.Itoa(id))

	var resp categoryCountResponse
	if err := c.transport.fetch(ctx, categoryCountPath, params, false, &resp); err != nil {
		return CategoryCount{}, err
	}

	return CategoryCount{
		CategoryID: resp.CategoryID,
		Total:      resp.CategoryQuestionCount.Total,
		Easy:       resp.CategoryQuestionCount.Easy,
		Medium:     resp.CategoryQuestionCount.Medium,
		Hard:       resp.CategoryQuestionCount.Hard,
	}, nil
}

// GlobalQuestionCount returns the service-wide question counts.
// It is safe to call concurrently.
func (c *Client) GlobalQuestionCount(ctx context.Context) (GlobalCount, error) {
	var resp globalCountResponse
	if err := c.transport.fetch(ctx, globalCountPath, nil, false, &resp); err != nil {
		return GlobalCount{}, err
	}

	count := GlobalCount{
		Overall:    resp.Overall,
		Categories: make(map[int]QuestionTotals, len(resp.Categories)),
	}
	for key, totals := range resp.Categories {
		id, err := strconv.Atoi(key)
		if err != nil {
			return GlobalCount{}, newParseError("Category key is not an id.", err)
		}
		count.Categories[id] = totals
	}

	return count, nil
}
