// Package filter selects trivia questions with expr-lang expressions.
//
// Expressions see the question fields (Category, Type, Difficulty, Text,
// CorrectAnswer, IncorrectAnswers, Answers) and a few helpers:
//
//	Difficulty == "Hard" && isMultiple()
//	containsFold(Text, "capital") && words(CorrectAnswer) == 1
//	hasAnswer("True")
//
// The case-sensitive operators work as usual:
//
//	Text contains "capital" || Category startsWith "Science"
package filter
