package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/trivia/opentdb"
)

// categoryRow is a category name with its id
type categoryRow struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func categoryRows(api opentdb.API) []categoryRow {
	names := api.Categories()
	rows := make([]categoryRow, len(names))
	for i, name := range names {
		id, _ := api.CategoryID(name)
		rows[i] = categoryRow{ID: id, Name: name}
	}
	return rows
}

// encode writes v as JSON or YAML; it reports false for the text format
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// writeQuestions prints questions as a tree, or encodes them
func writeQuestions(w io.Writer, format string, questions []opentdb.Question) error {
	if done, err := encode(w, format, questions); done {
		return err
	}

	if len(questions) == 0 {
		_, err := fmt.Fprintln(w, "No questions found")
		return err
	}

	var sb strings.Builder

	sb.WriteString("\nQuestion")
	if len(questions) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(questions))

	for i, q := range questions {
		isLast := i == len(questions)-1

		fmt.Fprintf(&sb, "%d. %s\n", i+1, q.Text)
		fmt.Fprintf(&sb, "│  %s · %s · %s\n", q.Category, q.Difficulty, q.Type)
		fmt.Fprintf(&sb, "├─ ✓ %s\n", q.CorrectAnswer)
		for j, answer := range q.IncorrectAnswers {
			branch := "├─"
			if j == len(q.IncorrectAnswers)-1 {
				branch = "└─"
			}
			fmt.Fprintf(&sb, "%s ✗ %s\n", branch, answer)
		}

		if !isLast {
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCategories prints the category list
func writeCategories(w io.Writer, format string, rows []categoryRow, withIDs bool) error {
	if done, err := encode(w, format, rows); done {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Categories (%d):\n", len(rows))
	for _, row := range rows {
		if withIDs {
			fmt.Fprintf(&sb, "  • %s (ID: %d)\n", row.Name, row.ID)
		} else {
			fmt.Fprintf(&sb, "  • %s\n", row.Name)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCategoryCounts prints per-category question counts
func writeCategoryCounts(w io.Writer, format string, rows []categoryCountRow) error {
	if done, err := encode(w, format, rows); done {
		return err
	}

	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "%s (ID: %d)\n", row.Name, row.CategoryID)
		fmt.Fprintf(&sb, "  Total: %d  Easy: %d  Medium: %d  Hard: %d\n",
			row.Total, row.Easy, row.Medium, row.Hard)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeGlobalCount prints service-wide counts; categories name the per-category lines
func writeGlobalCount(w io.Writer, format string, count opentdb.GlobalCount, categories []categoryRow) error {
	if done, err := encode(w, format, count); done {
		return err
	}

	var sb strings.Builder
	sb.WriteString("Open Trivia DB statistics:\n")
	fmt.Fprintf(&sb, "- Total questions: %d\n", count.Overall.Total)
	fmt.Fprintf(&sb, "- Verified: %d\n", count.Overall.Verified)
	fmt.Fprintf(&sb, "- Pending: %d\n", count.Overall.Pending)
	fmt.Fprintf(&sb, "- Rejected: %d\n", count.Overall.Rejected)

	if len(categories) > 0 {
		sb.WriteString("\nVerified questions per category:\n")
		for _, cat := range categories {
			totals, ok := count.Categories[cat.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "  • %s: %d\n", cat.Name, totals.Verified)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
