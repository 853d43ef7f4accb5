package quiz

import "testing"

func TestVariantSetMatches(t *testing.T) {
	ans := VariantSet{"Barack Obama", "Obama"}

	tests := []struct {
		guess string
		want  bool
	}{
		{"Barack Obama", true},
		{"barack obama", true},
		{"Obama", true},
		{"obama", true},
		{"  obama  ", true},
		{"Mitt Romney", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ans.Matches(tt.guess); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.guess, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Mount Everest ", "mount everest"},
		{"TOKYO", "tokyo"},
		{"", ""},
		{"\tParis\n", "paris"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	q := Question{Tags: []string{"geography", "asia"}}

	if !q.HasTag("asia") {
		t.Error("expected HasTag(asia) to be true")
	}
	if q.HasTag("history") {
		t.Error("expected HasTag(history) to be false")
	}
	if !q.HasAnyTag([]string{"history", "geography"}) {
		t.Error("expected HasAnyTag to find geography")
	}
	if q.HasAnyTag(nil) {
		t.Error("expected HasAnyTag(nil) to be false")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"", KindShortAnswer, true},
		{"ShortAnswer", KindShortAnswer, true},
		{"ListAnswer", KindListAnswer, true},
		{"OrderedListAnswer", KindOrderedListAnswer, true},
		{"MultipleChoice", KindMultipleChoice, true},
		{"Ungraded", KindUngraded, true},
		{"shortanswer", 0, false},
		{"Essay", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseKind(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
