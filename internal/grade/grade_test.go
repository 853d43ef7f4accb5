package grade

import (
	"strings"
	"testing"

	"github.com/quizdrill/quizdrill/internal/quiz"
)

func shortAnswer(variants ...string) *quiz.Question {
	return &quiz.Question{
		Kind:   quiz.KindShortAnswer,
		Text:   quiz.Text{"q"},
		Answer: quiz.VariantSet(variants),
	}
}

func listAnswer(kind quiz.Kind, items ...string) *quiz.Question {
	q := &quiz.Question{Kind: kind, Text: quiz.Text{"q"}}
	for _, item := range items {
		q.AnswerItems = append(q.AnswerItems, quiz.VariantSet{item})
	}
	return q
}

func TestGrade_ShortAnswer(t *testing.T) {
	q := shortAnswer("Mount Everest", "Everest")

	tests := []struct {
		response string
		want     Verdict
	}{
		{"Mount Everest", Correct},
		{"mount everest", Correct},
		{"  EVEREST  ", Correct},
		{"K2", Incorrect},
		{"", Incorrect},
	}

	for _, tt := range tests {
		got := Grade(q, tt.response)
		if got.Verdict != tt.want {
			t.Errorf("Grade(%q) = %v, want %v", tt.response, got.Verdict, tt.want)
		}
	}
}

func TestGrade_MultipleChoice(t *testing.T) {
	q := &quiz.Question{
		Kind:       quiz.KindMultipleChoice,
		Text:       quiz.Text{"Capital of Australia?"},
		Answer:     quiz.VariantSet{"Canberra"},
		Candidates: []string{"Sydney", "Melbourne", "Perth"},
	}

	if got := Grade(q, "canberra"); got.Verdict != Correct {
		t.Errorf("Grade(canberra) = %v, want Correct", got.Verdict)
	}
	if got := Grade(q, "Sydney"); got.Verdict != Incorrect {
		t.Errorf("Grade(Sydney) = %v, want Incorrect", got.Verdict)
	}
}

func TestGrade_Explanation(t *testing.T) {
	explanation := "Charleston is the capital of West Virginia, not South Carolina."
	q := shortAnswer("Columbia")
	q.Explanations = map[string]string{"charleston": explanation}

	got := Grade(q, "Charleston")
	if got.Verdict != Incorrect {
		t.Fatalf("verdict = %v, want Incorrect", got.Verdict)
	}
	if got.Explanation != explanation {
		t.Errorf("explanation = %q, want %q", got.Explanation, explanation)
	}

	// Unrecognized wrong answers carry no explanation.
	got = Grade(q, "Savannah")
	if got.Explanation != "" {
		t.Errorf("unexpected explanation %q", got.Explanation)
	}
}

func TestGrade_ListAnswer_Permutations(t *testing.T) {
	q := listAnswer(quiz.KindListAnswer, "Hokkaido", "Honshu", "Shikoku", "Kyushu")

	permutations := [][]string{
		{"Hokkaido", "Honshu", "Shikoku", "Kyushu"},
		{"Kyushu", "Shikoku", "Honshu", "Hokkaido"},
		{"honshu", "kyushu", "hokkaido", "shikoku"},
	}
	for _, perm := range permutations {
		response := strings.Join(perm, "\n")
		if got := Grade(q, response); got.Verdict != Correct {
			t.Errorf("Grade(%q) = %v, want Correct", response, got.Verdict)
		}
	}
}

func TestGrade_ListAnswer_Cardinality(t *testing.T) {
	q := listAnswer(quiz.KindListAnswer, "Hokkaido", "Honshu", "Shikoku", "Kyushu")

	tests := []struct {
		name     string
		response string
	}{
		{"missing item", "Hokkaido\nHonshu\nShikoku"},
		{"extra item", "Hokkaido\nHonshu\nShikoku\nKyushu\nOkinawa"},
		{"wrong item", "Hokkaido\nHonshu\nShikoku\nOkinawa"},
		{"duplicate item", "Hokkaido\nHokkaido\nShikoku\nKyushu"},
		{"empty response", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(q, tt.response); got.Verdict != Incorrect {
				t.Errorf("Grade(%q) = %v, want Incorrect", tt.response, got.Verdict)
			}
		})
	}
}

func TestGrade_ListAnswer_OverlappingVariants(t *testing.T) {
	// "Holland" matches both items; a greedy first-match would burn the
	// wrong one. The bijection must still be found.
	q := &quiz.Question{
		Kind: quiz.KindListAnswer,
		Text: quiz.Text{"q"},
		AnswerItems: []quiz.VariantSet{
			{"Netherlands", "Holland"},
			{"Holland"},
		},
	}

	if got := Grade(q, "Holland\nNetherlands"); got.Verdict != Correct {
		t.Errorf("Grade = %v, want Correct", got.Verdict)
	}
	if got := Grade(q, "Netherlands\nNetherlands"); got.Verdict != Incorrect {
		t.Errorf("Grade(duplicates) = %v, want Incorrect", got.Verdict)
	}
}

func TestGrade_OrderedListAnswer(t *testing.T) {
	q := listAnswer(quiz.KindOrderedListAnswer,
		"George Washington", "John Adams", "Thomas Jefferson")

	correct := "George Washington\nJohn Adams\nThomas Jefferson"
	if got := Grade(q, correct); got.Verdict != Correct {
		t.Errorf("Grade(in order) = %v, want Correct", got.Verdict)
	}

	reversed := "Thomas Jefferson\nJohn Adams\nGeorge Washington"
	if got := Grade(q, reversed); got.Verdict != Incorrect {
		t.Errorf("Grade(reversed) = %v, want Incorrect", got.Verdict)
	}

	short := "George Washington\nJohn Adams"
	if got := Grade(q, short); got.Verdict != Incorrect {
		t.Errorf("Grade(short) = %v, want Incorrect", got.Verdict)
	}
}

func TestGrade_Ungraded(t *testing.T) {
	q := &quiz.Question{
		Kind:         quiz.KindUngraded,
		Text:         quiz.Text{"Describe the water cycle."},
		SampleAnswer: "Evaporation, condensation, precipitation.",
	}

	for _, response := range []string{"", "anything at all", q.SampleAnswer} {
		got := Grade(q, response)
		if got.Verdict != Ungraded {
			t.Errorf("Grade(%q) = %v, want Ungraded", response, got.Verdict)
		}
		if got.SampleAnswer != q.SampleAnswer {
			t.Errorf("sample answer = %q, want %q", got.SampleAnswer, q.SampleAnswer)
		}
	}
}

func TestSplitItems(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"  a  \n\n b \n", []string{"a", "b"}},
		{"", nil},
		{"\n\n", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		got := SplitItems(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitItems(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitItems(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
