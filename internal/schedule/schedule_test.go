package schedule

import (
	"testing"

	"github.com/quizdrill/quizdrill/internal/quiz"
)

func mkq(id, depends string, tags ...string) quiz.Question {
	return quiz.Question{
		Kind:    quiz.KindShortAnswer,
		Text:    quiz.Text{"text-" + id},
		ID:      id,
		Depends: depends,
		Tags:    tags,
		Answer:  quiz.VariantSet{"a"},
	}
}

func ids(questions []quiz.Question) []string {
	out := make([]string, 0, len(questions))
	for i := range questions {
		out = append(out, questions[i].ID)
	}
	return out
}

func assertOrder(t *testing.T, got []quiz.Question, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("order = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotIDs, want)
		}
	}
}

func TestSelect(t *testing.T) {
	questions := []quiz.Question{
		mkq("q1", "", "geography"),
		mkq("q2", "", "history"),
		mkq("q3", "", "geography", "history"),
		mkq("q4", ""),
	}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{"no filters", nil, nil, []string{"q1", "q2", "q3", "q4"}},
		{"include geography", []string{"geography"}, nil, []string{"q1", "q3"}},
		{"exclude history", nil, []string{"history"}, []string{"q1", "q4"}},
		{"include and exclude", []string{"geography"}, []string{"history"}, []string{"q1"}},
		{"include nothing matches", []string{"science"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(questions, tt.include, tt.exclude)
			assertOrder(t, got, tt.want...)
		})
	}
}

func TestOrder_DependentAfterTarget(t *testing.T) {
	// A depends on b1, which appears later in the document. The order must
	// still place b1 first.
	questions := []quiz.Question{
		mkq("a", "b1"),
		mkq("b1", ""),
		mkq("c", ""),
	}

	got := Order(questions, Options{})
	assertOrder(t, got, "b1", "a", "c")
}

func TestOrder_DeterministicPassThrough(t *testing.T) {
	questions := []quiz.Question{
		mkq("q1", ""),
		mkq("q2", ""),
		mkq("q3", ""),
	}

	got := Order(questions, Options{})
	assertOrder(t, got, "q1", "q2", "q3")
}

func TestOrder_ShuffleOnlyTouchesIndependent(t *testing.T) {
	questions := []quiz.Question{
		mkq("q1", ""),
		mkq("q2", ""),
		mkq("dep", "q1"),
	}

	reverse := func(qs []quiz.Question) {
		for i, j := 0, len(qs)-1; i < j; i, j = i+1, j-1 {
			qs[i], qs[j] = qs[j], qs[i]
		}
	}

	got := Order(questions, Options{Shuffle: reverse})
	// Shuffle saw only q1 and q2; dep still lands right after q1.
	assertOrder(t, got, "q2", "q1", "dep")
}

func TestOrder_UnplacedDependentAppended(t *testing.T) {
	// dep's target was filtered out of the set; it is appended at the end
	// instead of being dropped.
	questions := []quiz.Question{
		mkq("dep", "gone"),
		mkq("q1", ""),
		mkq("q2", ""),
	}

	got := Order(questions, Options{})
	assertOrder(t, got, "q1", "q2", "dep")
}

func TestOrder_MultipleDependentsSameTarget(t *testing.T) {
	questions := []quiz.Question{
		mkq("a", "t"),
		mkq("b", "t"),
		mkq("t", ""),
	}

	got := Order(questions, Options{})
	// Both land after t, in original order. (Fan-in ordering beyond this
	// is not guaranteed.)
	assertOrder(t, got, "t", "a", "b")
}

func TestOrder_FilteredThenOrdered(t *testing.T) {
	questions := []quiz.Question{
		mkq("a", "b1", "keep"),
		mkq("b1", "", "drop"),
		mkq("c", "", "keep"),
	}

	selected := Select(questions, []string{"keep"}, nil)
	got := Order(selected, Options{})
	// b1 was filtered out, so a falls back to the end.
	assertOrder(t, got, "c", "a")
}
