package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLanguage matches any *InvalidLanguageError via errors.Is
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrEmptyLanguageSet is returned when neither the call nor the config names a language
	ErrEmptyLanguageSet = errors.New("empty language set")
	// ErrInvalidCensorType matches any *InvalidCensorTypeError via errors.Is
	ErrInvalidCensorType = errors.New("invalid censor type")
)

// InvalidLanguageError names a language code without a corpus entry
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language: %q", e.Code)
}

func (e *InvalidLanguageError) Is(target error) bool { return target == ErrInvalidLanguage }

// InvalidCensorTypeError carries the rejected value
type InvalidCensorTypeError struct {
	Value string
}

func (e *InvalidCensorTypeError) Error() string {
	return fmt.Sprintf("invalid censor type: %q", e.Value)
}

func (e *InvalidCensorTypeError) Is(target error) bool { return target == ErrInvalidCensorType }
