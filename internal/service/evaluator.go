package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/rs/zerolog/log"
)

// Evaluate decides whether a submission answers the question correctly and
// how many points it earns. It is a pure function: persistence and ledger
// updates are the caller's job. A student's garbled input is never an error,
// it is just a wrong answer, so every malformed case resolves to (false, 0).
func Evaluate(question *model.Question, submission dto.AnswerSubmissionDTO) (isCorrect bool, awardedPoints int) {
	switch question.QuestionType {
	case model.QuestionTypeQuiz, model.QuestionTypeDragAndDrop:
		isCorrect = evaluateChoice(question, submission.SelectedOptionID)
	case model.QuestionTypeFillInTheBlank:
		isCorrect = evaluateFillInTheBlank(question, submission.TypedAnswer)
	case model.QuestionTypeMatchTheColumn:
		isCorrect = evaluateMatchTheColumn(question, submission.TypedAnswer)
	case model.QuestionTypeWordHunt:
		isCorrect = evaluateWordHunt(question, submission.TypedAnswer)
	default:
		log.Warn().
			Uint("questionID", question.ID).
			Str("questionType", question.QuestionType).
			Msg("Evaluate: unknown question type, treating answer as incorrect")
		return false, 0
	}

	if isCorrect {
		awardedPoints = question.Points
	}
	return isCorrect, awardedPoints
}

// evaluateChoice covers quiz and drag_and_drop: the submitted option must
// belong to this question and be flagged correct. A missing or foreign
// option ID is simply wrong.
func evaluateChoice(question *model.Question, selectedOptionID *uint) bool {
	if selectedOptionID == nil {
		return false
	}
	for _, option := range question.Options {
		if option.ID == *selectedOptionID {
			return option.IsCorrect
		}
	}
	return false
}

func evaluateFillInTheBlank(question *model.Question, typedAnswer *string) bool {
	if typedAnswer == nil || question.CorrectAnswer == nil {
		return false
	}
	expected := strings.TrimSpace(*question.CorrectAnswer)
	if expected == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*typedAnswer), expected)
}

// evaluateMatchTheColumn expects the typed answer to be a comma-separated
// list of option IDs in the order the student arranged them. It is correct
// when it matches the option IDs sorted by their stored order, element for
// element.
func evaluateMatchTheColumn(question *model.Question, typedAnswer *string) bool {
	if typedAnswer == nil {
		return false
	}
	submitted, ok := parseIDSequence(*typedAnswer)
	if !ok {
		return false
	}

	ordered := make([]model.Option, 0, len(question.Options))
	for _, option := range question.Options {
		if option.Order == nil {
			continue
		}
		ordered = append(ordered, option)
	}
	sort.Slice(ordered, func(i, j int) bool { return *ordered[i].Order < *ordered[j].Order })

	if len(submitted) != len(ordered) || len(ordered) == 0 {
		return false
	}
	for i, option := range ordered {
		if submitted[i] != option.ID {
			return false
		}
	}
	return true
}

// evaluateWordHunt expects a single integer: the number of correct options
// the student found in the grid.
func evaluateWordHunt(question *model.Question, typedAnswer *string) bool {
	if typedAnswer == nil {
		return false
	}
	count, err := strconv.Atoi(strings.TrimSpace(*typedAnswer))
	if err != nil {
		return false
	}
	return count == question.CorrectOptionCount()
}

func parseIDSequence(raw string) ([]uint, bool) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint(value))
	}
	return ids, true
}
