package session

import (
	"testing"
	"time"

	"github.com/quizdrill/quizdrill/internal/grade"
	"github.com/quizdrill/quizdrill/internal/quiz"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Questions: []quiz.Question{
			{
				Kind:   quiz.KindShortAnswer,
				Text:   quiz.Text{"Capital of France?"},
				Answer: quiz.VariantSet{"Paris"},
				Tags:   []string{"europe"},
			},
			{
				Kind:   quiz.KindShortAnswer,
				Text:   quiz.Text{"Capital of Japan?"},
				Answer: quiz.VariantSet{"Tokyo"},
				Tags:   []string{"asia"},
			},
			{
				Kind:         quiz.KindUngraded,
				Text:         quiz.Text{"Describe the Edo period."},
				SampleAnswer: "The Tokugawa shogunate era, 1603-1868.",
				Tags:         []string{"asia"},
			},
		},
	}
}

func TestStart_EmptyAfterFilter(t *testing.T) {
	_, err := Start("sid", "test", testQuiz(), TakeOptions{
		IncludeTags: []string{"africa"},
	})
	if err != ErrEmptyQuiz {
		t.Errorf("err = %v, want ErrEmptyQuiz", err)
	}
}

func TestStart_Limit(t *testing.T) {
	st, err := Start("sid", "test", testQuiz(), TakeOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(st.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(st.Questions))
	}
}

func TestSubmitAndSummarize(t *testing.T) {
	st, err := Start("sid", "test", testQuiz(), TakeOptions{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := st.Submit("paris"); got.Verdict != grade.Correct {
		t.Errorf("first answer = %v, want Correct", got.Verdict)
	}
	if got := st.Submit("Kyoto"); got.Verdict != grade.Incorrect {
		t.Errorf("second answer = %v, want Incorrect", got.Verdict)
	}
	if got := st.Submit("some essay"); got.Verdict != grade.Ungraded {
		t.Errorf("third answer = %v, want Ungraded", got.Verdict)
	}

	if !st.Done() {
		t.Error("expected session to be done")
	}
	if st.Current() != nil {
		t.Error("expected no current question after done")
	}

	sum := st.Summarize(time.Now())
	if sum.Total != 3 || sum.Correct != 1 || sum.Incorrect != 1 || sum.Ungraded != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Percent != 50 {
		t.Errorf("percent = %v, want 50 (ungraded excluded)", sum.Percent)
	}
}

func TestSummarize_NoGradedQuestions(t *testing.T) {
	qz := &quiz.Quiz{Questions: []quiz.Question{
		{Kind: quiz.KindUngraded, Text: quiz.Text{"t"}, SampleAnswer: "s"},
	}}
	st, err := Start("sid", "test", qz, TakeOptions{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	st.Submit("")

	sum := st.Summarize(time.Now())
	if sum.Percent != 0 {
		t.Errorf("percent = %v, want 0", sum.Percent)
	}
}

func TestBuildChoices_Deterministic(t *testing.T) {
	q := &quiz.Question{
		Kind:       quiz.KindMultipleChoice,
		Text:       quiz.Text{"Capital of Australia?"},
		Answer:     quiz.VariantSet{"Canberra"},
		Candidates: []string{"Sydney", "Melbourne", "Perth", "Darwin"},
	}

	choices, correct := BuildChoices(q, nil)
	if len(choices) != 4 {
		t.Fatalf("got %d choices, want 4", len(choices))
	}
	if choices[correct] != "Canberra" {
		t.Errorf("choices[%d] = %q, want Canberra", correct, choices[correct])
	}
	// Candidate pool truncated to three before the answer is added.
	for _, c := range choices {
		if c == "Darwin" {
			t.Error("fourth candidate should have been truncated")
		}
	}
}

func TestBuildChoices_FewCandidates(t *testing.T) {
	q := &quiz.Question{
		Kind:       quiz.KindMultipleChoice,
		Text:       quiz.Text{"2+2?"},
		Answer:     quiz.VariantSet{"4"},
		Candidates: []string{"3"},
	}

	choices, correct := BuildChoices(q, nil)
	if len(choices) != 2 {
		t.Fatalf("got %d choices, want 2", len(choices))
	}
	if choices[correct] != "4" {
		t.Errorf("correct choice = %q, want 4", choices[correct])
	}
}
