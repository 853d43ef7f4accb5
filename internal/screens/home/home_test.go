package home

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/router"
)

func testLibrary(t *testing.T, quizzes ...string) *library.Library {
	t.Helper()
	dir := t.TempDir()
	for _, name := range quizzes {
		err := os.WriteFile(filepath.Join(dir, name+".json"),
			[]byte(`[{"text": "q", "answer": "a"}]`), 0o644)
		if err != nil {
			t.Fatalf("write quiz: %v", err)
		}
	}
	return library.New(dir)
}

func TestHomeScreen_ListsQuizzes(t *testing.T) {
	h := New(testLibrary(t, "geography", "history"), nil, nil, nil)
	view := h.View(80, 24)
	if !strings.Contains(view, "geography") || !strings.Contains(view, "history") {
		t.Errorf("expected quizzes in view, got:\n%s", view)
	}
}

func TestHomeScreen_EmptyLibraryHint(t *testing.T) {
	h := New(testLibrary(t), nil, nil, nil)
	view := h.View(80, 24)
	if !strings.Contains(view, "No quizzes yet") {
		t.Error("expected empty-library hint")
	}
}

func TestHomeScreen_SelectQuizStartsTake(t *testing.T) {
	h := New(testLibrary(t, "geography"), nil, nil, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for selected quiz")
	}
}
