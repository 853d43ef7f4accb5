package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizdrill/quizdrill/internal/quiz"
)

func writeQuiz(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const jsonQuiz = `[
  {"text": "Capital of France?", "answer": "Paris", "id": "fr", "tags": ["europe"]},
  {"text": "Capital of Spain?", "answer": "Madrid", "depends": "fr"}
]`

const yamlQuiz = `instructions: Answer from memory.
questions:
  - text: Capital of Japan?
    answer: [Tokyo, tokyo]
  - kind: ListAnswer
    text: The four main islands of Japan?
    answer_list: [Hokkaido, Honshu, Shikoku, Kyushu]
`

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "europe.json", jsonQuiz)

	qz, err := New(dir).Load("europe")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(qz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(qz.Questions))
	}
	if qz.Questions[1].Depends != "fr" {
		t.Errorf("depends = %q, want fr", qz.Questions[1].Depends)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "japan.yaml", yamlQuiz)

	qz, err := New(dir).Load("japan")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if qz.Instructions != "Answer from memory." {
		t.Errorf("instructions = %q", qz.Instructions)
	}
	if len(qz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(qz.Questions))
	}
	if qz.Questions[1].Kind != quiz.KindListAnswer {
		t.Errorf("kind = %v, want ListAnswer", qz.Questions[1].Kind)
	}
	if len(qz.Questions[1].AnswerItems) != 4 {
		t.Errorf("got %d answer items, want 4", len(qz.Questions[1].AnswerItems))
	}
}

func TestLoad_ParseErrorSurfaced(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "bad.json", `[{"text": "t", "answer": "a", "depends": ["b1"]}]`)

	_, err := New(dir).Load("bad")
	if err == nil {
		t.Fatal("expected error")
	}
	pe := quiz.AsParseError(err)
	if pe == nil {
		t.Fatalf("expected ParseError in chain, got %v", err)
	}
	if pe.Code != quiz.ErrTypeMismatch {
		t.Errorf("code = %v, want type mismatch", pe.Code)
	}
}

func TestLoad_NotAQuizDocument(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "scalar.json", `"just a string"`)

	if _, err := New(dir).Load("scalar"); err == nil {
		t.Fatal("expected schema rejection")
	}
}

func TestLoad_MissingQuiz(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir).Load("nope"); err == nil {
		t.Fatal("expected error for missing quiz")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "b.yaml", yamlQuiz)
	writeQuiz(t, dir, "a.json", jsonQuiz)
	writeQuiz(t, dir, "notes.txt", "not a quiz")

	names, err := New(dir).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("List = %v, want [a b]", names)
	}
}

func TestRenameAndRemove(t *testing.T) {
	dir := t.TempDir()
	writeQuiz(t, dir, "old.json", jsonQuiz)
	lib := New(dir)

	if err := lib.Rename("old", "new"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := lib.Resolve("old"); err == nil {
		t.Error("old name still resolves")
	}
	if _, err := lib.Resolve("new"); err != nil {
		t.Errorf("new name does not resolve: %v", err)
	}

	if err := lib.Remove("new"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := lib.Resolve("new"); err == nil {
		t.Error("removed quiz still resolves")
	}
}
