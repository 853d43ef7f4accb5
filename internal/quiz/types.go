package quiz

import (
	"slices"
	"strings"
)

// Kind identifies the question variant. Every consumer of Question must
// switch over all five kinds so that adding a kind is a compile-visible
// change everywhere.
type Kind int

const (
	KindShortAnswer Kind = iota
	KindListAnswer
	KindOrderedListAnswer
	KindMultipleChoice
	KindUngraded
)

// kindNames maps the wire-format kind strings to Kind values.
var kindNames = map[string]Kind{
	"ShortAnswer":       KindShortAnswer,
	"ListAnswer":        KindListAnswer,
	"OrderedListAnswer": KindOrderedListAnswer,
	"MultipleChoice":    KindMultipleChoice,
	"Ungraded":          KindUngraded,
}

// ParseKind resolves a kind string from a quiz document.
// The empty string defaults to ShortAnswer.
func ParseKind(s string) (Kind, bool) {
	if s == "" {
		return KindShortAnswer, true
	}
	k, ok := kindNames[s]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindShortAnswer:
		return "ShortAnswer"
	case KindListAnswer:
		return "ListAnswer"
	case KindOrderedListAnswer:
		return "OrderedListAnswer"
	case KindMultipleChoice:
		return "MultipleChoice"
	case KindUngraded:
		return "Ungraded"
	}
	return "Unknown"
}

// Normalize prepares a string for comparison: leading and trailing
// whitespace is trimmed and the result is lowercased. Every string
// comparison in the grading path goes through this function.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// VariantSet is an ordered, non-empty set of mutually acceptable strings
// for one answer slot. The first element is the canonical form used for
// display. Constructed once at parse time, never mutated afterwards.
type VariantSet []string

// Canonical returns the display form of the answer.
func (v VariantSet) Canonical() string {
	return v[0]
}

// Matches reports whether s is equivalent to any variant in the set.
func (v VariantSet) Matches(s string) bool {
	n := Normalize(s)
	for _, variant := range v {
		if Normalize(variant) == n {
			return true
		}
	}
	return false
}

// Text is an ordered, non-empty sequence of phrasings of the same prompt.
// Any one may be chosen for display.
type Text []string

// Primary returns the first phrasing.
func (t Text) Primary() string {
	return t[0]
}

// Question is one prompt in a quiz, in one of five kinds. Which answer
// fields are populated depends on Kind:
//
//   - ShortAnswer, MultipleChoice: Answer (MultipleChoice also Candidates)
//   - ListAnswer, OrderedListAnswer: AnswerItems
//   - Ungraded: SampleAnswer
//
// Questions are immutable after parsing.
type Question struct {
	Kind Kind
	Text Text

	// ID is optional but unique across the set when present. Depends
	// names the ID of a question that must be presented earlier.
	ID      string
	Depends string

	Tags []string

	// Explanations maps normalized wrong answers to supplementary text
	// shown when that answer is given. Keys are lowercase at rest.
	Explanations map[string]string

	Answer       VariantSet
	Candidates   []string
	AnswerItems  []VariantSet
	SampleAnswer string
}

// HasTag reports whether the question carries the given tag.
func (q *Question) HasTag(tag string) bool {
	return slices.Contains(q.Tags, tag)
}

// HasAnyTag reports whether the question carries at least one of the tags.
func (q *Question) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if q.HasTag(t) {
			return true
		}
	}
	return false
}

// Quiz is a full question set loaded from one document.
type Quiz struct {
	// Instructions is optional free text shown before the first question.
	Instructions string
	Questions    []Question
}
