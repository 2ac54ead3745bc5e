package opentdb

import (
	"html"
	"unicode"
	"unicode/utf8"
)

// RawQuestion is one entry of the question endpoint's results list, as sent by the service
type RawQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Question is a decoded trivia question
type Question struct {
	Category         string   `json:"category" yaml:"category"`
	Type             string   `json:"type" yaml:"type"`
	Difficulty       string   `json:"difficulty" yaml:"difficulty"`
	Text             string   `json:"text" yaml:"text"`
	CorrectAnswer    string   `json:"correct_answer" yaml:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers" yaml:"incorrect_answers"`
}

// NewQuestion decodes a raw service record. Type and difficulty get their
// first letter upper-cased; text fields are HTML-unescaped.
func NewQuestion(raw RawQuestion) Question {
	incorrect := make([]string, len(raw.IncorrectAnswers))
	for i, answer := range raw.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(answer)
	}

	return Question{
		Category:         html.UnescapeString(raw.Category),
		Type:             capitalize(raw.Type),
		Difficulty:       capitalize(raw.Difficulty),
		Text:             html.UnescapeString(raw.Question),
		CorrectAnswer:    html.UnescapeString(raw.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}

// Answers returns the correct answer followed by the incorrect ones
func (q Question) Answers() []string {
	answers := make([]string, 0, len(q.IncorrectAnswers)+1)
	answers = append(answers, q.CorrectAnswer)
	return append(answers, q.IncorrectAnswers...)
}

// IsBoolean reports whether q is a true/false question
func (q Question) IsBoolean() bool {
	return q.Type == capitalize(TypeBoolean)
}

// capitalize upper-cases the first rune and leaves the rest untouched
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
