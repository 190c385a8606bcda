package prompt

import (
	"errors"
	"fmt"
)

// ErrScriptExhausted is returned when a Script runs out of answers.
var ErrScriptExhausted = errors.New("prompt script exhausted")

// Answer is one scripted reply. Cancel simulates the user backing out.
type Answer struct {
	Value  string
	Cancel bool
}

// Reply is shorthand for an accepted answer.
func Reply(v string) Answer { return Answer{Value: v} }

// Cancelled is a cancelled answer.
var Cancelled = Answer{Cancel: true}

// Script replays queued answers and records every question it was asked.
type Script struct {
	Texts    []Answer
	Confirms []bool
	Choices  []Answer

	// Asked holds the prompts in the order they were shown, with the
	// offered default in brackets for Text.
	Asked []string
}

func (s *Script) Text(title, defaultValue string) (string, bool, error) {
	s.Asked = append(s.Asked, fmt.Sprintf("%s [%s]", title, defaultValue))
	if len(s.Texts) == 0 {
		return "", false, fmt.Errorf("%w: text %q", ErrScriptExhausted, title)
	}
	a := s.Texts[0]
	s.Texts = s.Texts[1:]
	if a.Cancel {
		return "", false, nil
	}
	return a.Value, true, nil
}

func (s *Script) Confirm(message string) (bool, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Confirms) == 0 {
		return false, fmt.Errorf("%w: confirm %q", ErrScriptExhausted, message)
	}
	yes := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return yes, nil
}

func (s *Script) Choose(title string, options []Option) (string, bool, error) {
	s.Asked = append(s.Asked, title)
	if len(options) == 0 {
		return "", false, ErrNoOptions
	}
	if len(s.Choices) == 0 {
		return "", false, fmt.Errorf("%w: choose %q", ErrScriptExhausted, title)
	}
	a := s.Choices[0]
	s.Choices = s.Choices[1:]
	if a.Cancel {
		return "", false, nil
	}
	return a.Value, true, nil
}
