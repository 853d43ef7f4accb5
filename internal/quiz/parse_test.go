package quiz

import (
	"reflect"
	"testing"
)

func doc(records ...map[string]any) []any {
	out := make([]any, 0, len(records))
	for _, r := range records {
		out = append(out, any(r))
	}
	return out
}

func TestParseDocument_DefaultKind(t *testing.T) {
	qz, err := ParseDocument(doc(map[string]any{
		"text":   "What is the capital of France?",
		"answer": "Paris",
	}))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(qz.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(qz.Questions))
	}
	q := qz.Questions[0]
	if q.Kind != KindShortAnswer {
		t.Errorf("kind = %v, want ShortAnswer", q.Kind)
	}
	if q.Text.Primary() != "What is the capital of France?" {
		t.Errorf("text = %q", q.Text.Primary())
	}
	if !q.Answer.Matches("paris") {
		t.Error("expected answer to match 'paris'")
	}
}

func TestParseDocument_TextVariants(t *testing.T) {
	qz, err := ParseDocument(doc(map[string]any{
		"text":   []any{"Largest planet?", "Which planet is largest?"},
		"answer": []any{"Jupiter", "jupiter"},
	}))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	q := qz.Questions[0]
	if len(q.Text) != 2 {
		t.Errorf("got %d phrasings, want 2", len(q.Text))
	}
	if len(q.Answer) != 2 {
		t.Errorf("got %d answer variants, want 2", len(q.Answer))
	}
}

func TestParseDocument_AllKinds(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   Kind
	}{
		{
			name:   "short answer",
			record: map[string]any{"kind": "ShortAnswer", "text": "t", "answer": "a"},
			want:   KindShortAnswer,
		},
		{
			name: "list answer",
			record: map[string]any{
				"kind": "ListAnswer", "text": "t",
				"answer_list": []any{"a", "b"},
			},
			want: KindListAnswer,
		},
		{
			name: "ordered list answer",
			record: map[string]any{
				"kind": "OrderedListAnswer", "text": "t",
				"answer_list": []any{"a", []any{"b", "bee"}},
			},
			want: KindOrderedListAnswer,
		},
		{
			name: "multiple choice",
			record: map[string]any{
				"kind": "MultipleChoice", "text": "t", "answer": "a",
				"candidates": []any{"b", "c", "d"},
			},
			want: KindMultipleChoice,
		},
		{
			name:   "ungraded",
			record: map[string]any{"kind": "Ungraded", "text": "t", "answer": "sample"},
			want:   KindUngraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qz, err := ParseDocument(doc(tt.record))
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if got := qz.Questions[0].Kind; got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []any
		code    ErrorCode
	}{
		{
			name:    "unknown kind",
			records: doc(map[string]any{"kind": "Essay", "text": "t", "answer": "a"}),
			code:    ErrUnknownKind,
		},
		{
			name:    "missing text",
			records: doc(map[string]any{"answer": "a"}),
			code:    ErrMissingField,
		},
		{
			name:    "missing answer",
			records: doc(map[string]any{"text": "t"}),
			code:    ErrMissingField,
		},
		{
			name: "missing answer_list",
			records: doc(map[string]any{
				"kind": "ListAnswer", "text": "t",
			}),
			code: ErrMissingField,
		},
		{
			name: "missing candidates",
			records: doc(map[string]any{
				"kind": "MultipleChoice", "text": "t", "answer": "a",
			}),
			code: ErrMissingField,
		},
		{
			name: "depends as list",
			records: doc(map[string]any{
				"text": "t", "answer": "a", "depends": []any{"b1"},
			}),
			code: ErrTypeMismatch,
		},
		{
			name: "text as number",
			records: doc(map[string]any{"text": 42, "answer": "a"}),
			code:    ErrTypeMismatch,
		},
		{
			name: "duplicate id",
			records: doc(
				map[string]any{"text": "t1", "answer": "a", "id": "q1"},
				map[string]any{"text": "t2", "answer": "a", "id": "q1"},
			),
			code: ErrDuplicateID,
		},
		{
			name: "dangling dependency",
			records: doc(map[string]any{
				"text": "t", "answer": "a", "depends": "nope",
			}),
			code: ErrDanglingDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(tt.records)
			pe := AsParseError(err)
			if pe == nil {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Code != tt.code {
				t.Errorf("code = %v, want %v (error: %v)", pe.Code, tt.code, err)
			}
		})
	}
}

func TestParseDocument_DependsResolved(t *testing.T) {
	qz, err := ParseDocument(doc(
		map[string]any{"text": "later", "answer": "a", "depends": "b1"},
		map[string]any{"text": "earlier", "answer": "b", "id": "b1"},
	))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if qz.Questions[0].Depends != "b1" {
		t.Errorf("depends = %q, want b1", qz.Questions[0].Depends)
	}
}

func TestParseDocument_ExplanationKeysLowercased(t *testing.T) {
	qz, err := ParseDocument(doc(map[string]any{
		"text":   "Capital of South Carolina?",
		"answer": "Columbia",
		"explanations": map[string]any{
			"Charleston": "Charleston is the capital of West Virginia, not South Carolina.",
		},
	}))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	q := qz.Questions[0]
	if _, ok := q.Explanations["charleston"]; !ok {
		t.Errorf("explanation key not lowercased: %v", q.Explanations)
	}
}

func TestParseDocument_InstructionsForm(t *testing.T) {
	qz, err := ParseDocument(map[string]any{
		"instructions": "Answer from memory.",
		"questions": doc(map[string]any{
			"text": "t", "answer": "a",
		}),
	})
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if qz.Instructions != "Answer from memory." {
		t.Errorf("instructions = %q", qz.Instructions)
	}
	if len(qz.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(qz.Questions))
	}
}

func TestRoundTrip(t *testing.T) {
	original := doc(
		map[string]any{
			"text":   "Capital of Japan?",
			"answer": []any{"Tokyo", "tokyo"},
			"id":     "jp",
			"tags":   []any{"geography", "asia"},
		},
		map[string]any{
			"kind":        "ListAnswer",
			"text":        "The four main islands of Japan?",
			"answer_list": []any{"Hokkaido", "Honshu", "Shikoku", "Kyushu"},
			"depends":     "jp",
		},
		map[string]any{
			"kind":       "MultipleChoice",
			"text":       "Currency of Japan?",
			"answer":     "Yen",
			"candidates": []any{"Won", "Yuan", "Baht"},
			"explanations": map[string]any{
				"won": "The won is the currency of Korea.",
			},
		},
		map[string]any{
			"kind":   "Ungraded",
			"text":   "Describe the Meiji Restoration.",
			"answer": "The 1868 restoration of imperial rule.",
		},
	)

	first, err := ParseDocument(original)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseDocument(first.Records())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the quiz:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
