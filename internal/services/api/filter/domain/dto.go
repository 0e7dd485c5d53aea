// Package domain holds DTOs and ports for the filter http and service layers
package domain

import "profanity/internal/core/filter"

// TextInput is the body for exists and matches. Text is untyped on purpose:
// non-string values are never profane
type TextInput struct {
	Text      any      `json:"text" swaggertype:"string" example:"what the tsk"`
	Languages []string `json:"languages,omitempty" validate:"omitempty,max=16,dive,notblank,max=16" example:"en,de"`
}

// CensorInput is the body for censor
type CensorInput struct {
	Text       any      `json:"text" swaggertype:"string" example:"what the tsk"`
	CensorType string   `json:"censor_type,omitempty" validate:"omitempty,max=32" example:"first_vowel"`
	Languages  []string `json:"languages,omitempty" validate:"omitempty,max=16,dive,notblank,max=16" example:"en"`
}

// WordsInput carries phrases for the blacklist or whitelist
type WordsInput struct {
	Words []string `json:"words" validate:"required,min=1,max=1000,dive,notblank,max=256" example:"tsk,blimey"`
}

// ExistsResult answers exists
type ExistsResult struct {
	Exists bool `json:"exists" example:"true"`
}

// CensorResult carries the censored text, or the input unchanged when it was not a string
type CensorResult struct {
	Text any `json:"text" swaggertype:"string" example:"what the @#$%&!"`
}

// MatchesResult lists every reportable match with byte offsets into the input
type MatchesResult struct {
	Matches []filter.Match `json:"matches"`
}

// WordsResult reports how many phrases a mutation touched and the resulting list size
type WordsResult struct {
	List     string `json:"list" example:"blacklist"`
	Accepted int    `json:"accepted" example:"2"`
	Size     int    `json:"size" example:"14"`
}

// Lists is a snapshot of the mutable word lists
type Lists struct {
	Blacklist []string `json:"blacklist"`
	Whitelist []string `json:"whitelist"`
	Removed   []string `json:"removed"`
	Languages []string `json:"languages"`
	Defaults  []string `json:"defaults"`
	WholeWord bool     `json:"whole_word"`
}

// List names the persisted override lists
type List string

// Override lists
const (
	ListBlacklist List = "blacklist"
	ListWhitelist List = "whitelist"
	ListRemoved   List = "removed"
)

// Override is one persisted list entry
type Override struct {
	Phrase string
	List   List
}

// Change is the net effect of one mutation on one list
type Change struct {
	List  List
	Added []string
	Gone  []string
}

// Empty reports whether the change touches nothing
func (c Change) Empty() bool { return len(c.Added) == 0 && len(c.Gone) == 0 }

// Event is one filter call recorded in the event log
type Event struct {
	Op        string
	Languages []string
	Matches   int
	Flagged   bool
}
