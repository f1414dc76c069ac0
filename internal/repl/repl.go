package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"FcnLang/internal/history"
	"FcnLang/internal/lexer"
	"FcnLang/internal/logger"

	"github.com/google/uuid"
)

type Options struct {
	Prompt             string
	ContinuationPrompt string
	Strict             bool
	// History receives every submitted unit when set.
	History history.Store
}

type Repl struct {
	scanner   *bufio.Scanner
	lines     chan string
	done      chan struct{}
	eof       bool
	out       io.Writer
	opts      Options
	sessionID string
	logger    *logger.Logger
}

func New(in io.Reader, out io.Writer, opts Options) *Repl {
	return &Repl{
		scanner:   bufio.NewScanner(in),
		lines:     make(chan string),
		done:      make(chan struct{}),
		out:       out,
		opts:      opts,
		sessionID: uuid.NewString(),
		logger:    logger.Get("repl"),
	}
}

// Run reads units from in until exit, quit, end of input or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	return New(in, out, opts).Run(ctx)
}

func (r *Repl) SessionID() string {
	return r.sessionID
}

func (r *Repl) Run(ctx context.Context) error {
	r.logger.Info("Starting REPL session %s", r.sessionID)
	go r.scan()
	defer close(r.done)

	fmt.Fprintln(r.out, "fcn front end")
	fmt.Fprintln(r.out, "Enter a function declaration, end a line with { to continue it, or type 'exit' to quit")

	for ctx.Err() == nil {
		source, ok := r.readUnit(ctx)
		if !ok {
			break
		}

		switch strings.ToLower(strings.TrimSpace(source)) {
		case "exit", "quit":
			r.logger.Info("User requested exit")
			r.logger.Info("REPL session %s ended", r.sessionID)
			return nil
		case "":
			continue
		}

		r.logger.Debug("Processing unit: %q", source)
		result := r.execute(source)
		if err := result.Err(); err != nil {
			r.logger.Error("Unit failed: %v", err)
		}
		fmt.Fprint(r.out, FormatResult(result))
		r.record(ctx, result)
	}

	// The scanner belongs to the reading goroutine until it reports the end.
	if err := r.scanErr(); err != nil {
		r.logger.Error("Error reading input: %v", err)
		return fmt.Errorf("failed to read input: %w", err)
	}

	r.logger.Info("REPL session %s ended", r.sessionID)
	return ctx.Err()
}

func (r *Repl) execute(source string) *Result {
	var opts []lexer.Option
	if r.opts.Strict {
		opts = append(opts, lexer.WithStrict())
	}
	return Execute(source, opts...)
}

// scan feeds input lines to readLine so a blocked read never holds up
// cancellation. lines is closed at end of input.
func (r *Repl) scan() {
	defer close(r.lines)
	for r.scanner.Scan() {
		select {
		case r.lines <- r.scanner.Text():
		case <-r.done:
			return
		}
	}
}

func (r *Repl) readLine(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-r.lines:
		r.eof = !ok
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (r *Repl) scanErr() error {
	if !r.eof {
		return nil
	}
	return r.scanner.Err()
}

// readUnit reads one line, or several when the first ends with an opening
// brace. Continuation lines are gathered until a blank line.
func (r *Repl) readUnit(ctx context.Context) (string, bool) {
	fmt.Fprint(r.out, r.opts.Prompt)
	line, ok := r.readLine(ctx)
	if !ok {
		return "", false
	}

	if !strings.HasSuffix(strings.TrimRight(line, " \t\r"), "{") {
		return line, true
	}

	lines := []string{line}
	for {
		fmt.Fprint(r.out, r.opts.ContinuationPrompt)
		next, ok := r.readLine(ctx)
		if !ok || strings.TrimSpace(next) == "" {
			break
		}
		lines = append(lines, next)
	}

	if ctx.Err() != nil {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func (r *Repl) record(ctx context.Context, result *Result) {
	if r.opts.History == nil {
		return
	}

	entry := &history.Entry{
		SessionID: r.sessionID,
		Source:    result.Source,
		Outcome:   result.Outcome(),
	}
	if err := result.Err(); err != nil {
		entry.Detail = err.Error()
	}

	if err := r.opts.History.Append(ctx, entry); err != nil {
		r.logger.Error("Failed to record history: %v", err)
	}
}
