package opentdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuestion(t *testing.T) {
	raw := RawQuestion{
		Category:         "Sports",
		Type:             "multiple",
		Difficulty:       "easy",
		Question:         "A &amp; B?",
		CorrectAnswer:    "X",
		IncorrectAnswers: []string{"Y", "Z"},
	}

	assert.Equal(t, Question{
		Category:         "Sports",
		Type:             "Multiple",
		Difficulty:       "Easy",
		Text:             "A & B?",
		CorrectAnswer:    "X",
		IncorrectAnswers: []string{"Y", "Z"},
	}, NewQuestion(raw))
}

func TestNewQuestionEntities(t *testing.T) {
	raw := RawQuestion{
		Category:         "Entertainment: Japanese Anime &amp; Manga",
		Type:             "boolean",
		Difficulty:       "hard",
		Question:         "&quot;Pok&eacute;mon&quot; is spelled with an &#039;&eacute;&#039;?",
		CorrectAnswer:    "True",
		IncorrectAnswers: []string{"&lt;False&gt;"},
	}

	q := NewQuestion(raw)
	assert.Equal(t, "Entertainment: Japanese Anime & Manga", q.Category)
	assert.Equal(t, `"Pokémon" is spelled with an 'é'?`, q.Text)
	assert.Equal(t, []string{"<False>"}, q.IncorrectAnswers)
	assert.Equal(t, "Boolean", q.Type)
	assert.Equal(t, "Hard", q.Difficulty)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"easy", "Easy"},
		{"multiple", "Multiple"},
		{"Hard", "Hard"},
		{"mIxEd", "MIxEd"},
		{"two words", "Two words"},
		{"élan", "Élan"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalize(tt.in))
		})
	}
}

func TestQuestionHelpers(t *testing.T) {
	q := Question{
		Type:             "Multiple",
		CorrectAnswer:    "X",
		IncorrectAnswers: []string{"Y", "Z"},
	}

	answers := q.Answers()
	assert.Equal(t, []string{"X", "Y", "Z"}, answers)

	answers[1] = "changed"
	assert.Equal(t, []string{"Y", "Z"}, q.IncorrectAnswers)

	assert.False(t, q.IsBoolean())
	assert.True(t, Question{Type: "Boolean"}.IsBoolean())
}
