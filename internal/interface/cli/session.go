package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// Executor runs one line of input. *logic.Manager implements it.
type Executor interface {
	Execute(ctx context.Context, line string) (command.Result, error)
	FilteredModules() []*module.Module
}

// Session is the interactive read-eval-print loop.
type Session struct {
	exec      Executor
	in        io.Reader
	presenter *Presenter
	logger    *logger.Logger
}

// NewSession creates a session reading commands from in and printing to out.
func NewSession(exec Executor, in io.Reader, out io.Writer, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		exec:      exec,
		in:        in,
		presenter: NewPresenter(out),
		logger:    log.With(logger.Component("cli")),
	}
}

// Run prints the welcome banner and processes lines until exit, end of input
// or cancellation of ctx. Cancellation is noticed while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.presenter.Welcome()
	s.presenter.Modules(s.exec.FilteredModules())

	lines, readErr := s.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.presenter.Prompt()

		var line string
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled while waiting for input")
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return err
				}
				s.logger.Debug("session ended at end of input")
				return nil
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}

		if exit := s.Step(ctx, line); exit {
			s.logger.Debug("session ended by user")
			return nil
		}
	}
}

// readLines scans s.in in the background. lines is closed at end of input or
// when ctx ends; readErr then holds the scanner or context error.
func (s *Session) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Step executes one line and renders the outcome. It reports whether the
// user asked to exit.
func (s *Session) Step(ctx context.Context, line string) bool {
	result, err := s.exec.Execute(ctx, line)
	if err != nil {
		s.presenter.Error(err)
		return false
	}

	s.presenter.Result(result)
	if result.Exit {
		return true
	}
	s.presenter.Modules(s.exec.FilteredModules())
	return false
}
