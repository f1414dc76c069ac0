package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"FcnLang/internal/history"
	"FcnLang/internal/lexer"
	"FcnLang/internal/parser"
)

type memoryStore struct {
	entries []*history.Entry
}

func (m *memoryStore) Append(ctx context.Context, entry *history.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryStore) Recent(ctx context.Context, limit int) ([]*history.Entry, error) {
	return m.entries, nil
}

func (m *memoryStore) Close() error {
	return nil
}

func testOptions(store history.Store) Options {
	return Options{Prompt: "> ", ContinuationPrompt: "... ", History: store}
}

func TestExecuteAddFunction(t *testing.T) {
	result := Execute("fcn add(x :: Int32, y :: Int32) -> Int32 { }")
	if result.Err() != nil {
		t.Fatalf("Unexpected error: %v", result.Err())
	}
	if result.Tree == nil || result.Tree.Name != "add" {
		t.Fatalf("Unexpected tree: %+v", result.Tree)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %v", result.Diagnostics)
	}
	if result.Outcome() != history.Parsed {
		t.Errorf("Expected outcome parsed, got %s", result.Outcome())
	}
}

func TestExecuteSeparatesFatalError(t *testing.T) {
	result := Execute("fcn add(x :: Int32) Int32 { }")
	if !errors.Is(result.ParseErr, &parser.Error{Kind: parser.MissingToken}) {
		t.Fatalf("Expected missing token error, got %v", result.ParseErr)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Fatal error should not be repeated as a diagnostic, got %v", result.Diagnostics)
	}
	if result.Outcome() != history.ParseFailed {
		t.Errorf("Expected outcome parse_failed, got %s", result.Outcome())
	}
}

func TestExecuteStrict(t *testing.T) {
	result := Execute("fcn a@", lexer.WithStrict())
	if !errors.Is(result.LexErr, lexer.UnexpectedCharacter) {
		t.Fatalf("Expected unexpected character error, got %v", result.LexErr)
	}
	if result.Tokens != nil || result.Outcome() != history.LexFailed {
		t.Errorf("Expected nothing to be parsed after a lex error")
	}
}

func TestRunMultiLineUnit(t *testing.T) {
	input := strings.Join([]string{
		"fcn add(x :: Int32, y :: Int32) -> Int32 {",
		"    var z :: Int32 = x",
		"    return z",
		"}",
		"",
		"exit",
	}, "\n")

	store := &memoryStore{}
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(input), &out, testOptions(store)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"... ", "| Class", "FunctionDecl add(x :: Int32, y :: Int32) -> Int32", "VariableDecl z :: Int32", "ControlStatement return"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}

	if len(store.entries) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(store.entries))
	}
	entry := store.entries[0]
	if strings.Count(entry.Source, "\n") != 3 {
		t.Errorf("Expected the four lines to be joined, got %q", entry.Source)
	}
	if entry.Outcome != history.Parsed || entry.SessionID == "" {
		t.Errorf("Unexpected history entry: %+v", entry)
	}
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	input := "x = \"open\nfcn 1\n\nquit\nfcn never() -> Int32 { }\n"

	store := &memoryStore{}
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(input), &out, testOptions(store)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Error: unterminated string") {
		t.Errorf("Expected lex error in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Error: parse failed: invalid function name") {
		t.Errorf("Expected parse failure in output, got:\n%s", got)
	}
	if strings.Contains(got, "never") {
		t.Errorf("Input after quit should not be processed, got:\n%s", got)
	}

	if len(store.entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(store.entries))
	}
	if store.entries[0].Outcome != history.LexFailed || store.entries[1].Outcome != history.ParseFailed {
		t.Errorf("Unexpected outcomes: %s, %s", store.entries[0].Outcome, store.entries[1].Outcome)
	}
	if store.entries[0].Detail == "" {
		t.Error("Expected failure detail to be recorded")
	}
}

func TestRunEndsAtEOF(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader("fcn f() -> Int32 {"), &out, testOptions(nil)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "could not find the end of the block") {
		t.Errorf("Expected unfinished block to be reported, got:\n%s", out.String())
	}
}

func TestRunStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("fcn f() -> Int32 { }\n"), &out, testOptions(nil))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if strings.Contains(out.String(), "FunctionDecl") {
		t.Errorf("Nothing should be processed after cancellation, got:\n%s", out.String())
	}
}

func TestRunCancelWhileWaitingForInput(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, in, io.Discard, testOptions(nil))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation while blocked on input")
	}
}

func TestRunCancelDuringContinuation(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	store := &memoryStore{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, in, io.Discard, testOptions(store))
	}()

	if _, err := io.WriteString(w, "fcn f() -> Int32 {\n"); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if len(store.entries) != 0 {
		t.Errorf("Expected the unfinished unit to be dropped, got %+v", store.entries)
	}
}
