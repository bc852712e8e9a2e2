// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"fmt"
	"strconv"

	"employee_manager/internal/prompt"
)

// Question records what was asked and, for Select, which labels were offered.
type Question struct {
	Message string
	Labels  []string
}

// Script answers questions from a fixed list. Select answers are matched by
// label; Input and Number answers are returned as typed. Once the answers run
// out every question returns prompt.ErrAborted, which ends a session.
type Script struct {
	Answers []string
	Asked   []Question
}

func New(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) next(q Question) (string, error) {
	s.Asked = append(s.Asked, q)
	if len(s.Answers) == 0 {
		return "", prompt.ErrAborted
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Script) Select(ctx context.Context, message string, choices []prompt.Choice) (prompt.Choice, error) {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	answer, err := s.next(Question{Message: message, Labels: labels})
	if err != nil {
		return prompt.Choice{}, err
	}
	for _, c := range choices {
		if c.Label == answer {
			return c, nil
		}
	}
	return prompt.Choice{}, fmt.Errorf("prompttest: %q is not offered for %q (have %v)", answer, message, labels)
}

func (s *Script) Input(ctx context.Context, message string) (string, error) {
	return s.next(Question{Message: message})
}

func (s *Script) Number(ctx context.Context, message string) (float64, error) {
	answer, err := s.next(Question{Message: message})
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(answer, 64)
}

// Last returns the most recent question, or the zero Question.
func (s *Script) Last() Question {
	if len(s.Asked) == 0 {
		return Question{}
	}
	return s.Asked[len(s.Asked)-1]
}
