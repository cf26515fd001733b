// Package logic wires parsing, command execution and persistence together.
package logic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/interface/cli/parser"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// MessageSaveFailed is returned when a command's changes could not be stored.
// The changes are rolled back.
const MessageSaveFailed = "Could not save data to storage: %s"

// Parser turns a line of input into a command.
type Parser interface {
	Parse(line string) (command.Command, error)
}

// Manager executes user input against the model and saves every change.
type Manager struct {
	model  model.Model
	parser Parser
	repo   buddy.Repository
	logger *logger.Logger
	newID  func() string
}

// NewManager creates a Manager. A nil repo disables saving.
func NewManager(m model.Model, repo buddy.Repository, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		model:  m,
		parser: parser.New(),
		repo:   repo,
		logger: log.With(logger.Component("logic")),
		newID:  uuid.NewString,
	}
}

// Execute parses and runs one line of input. Parse errors are returned as
// *parser.Error and execution errors as *command.Error.
func (l *Manager) Execute(ctx context.Context, line string) (command.Result, error) {
	start := time.Now()
	log := l.logger.WithCorrelationID(l.newID())
	ctx = logger.WithContext(ctx, log)

	log.Debug("executing input", logger.String("input", line))

	cmd, err := l.parser.Parse(line)
	if err != nil {
		log.Debug("input rejected by parser", logger.Err(err))
		return command.Result{}, err
	}

	before := buddy.NewFrom(l.model.Buddy())
	filter := l.model.Filter()
	result, err := cmd.Execute(ctx, l.model)
	if err != nil {
		log.Info("command failed", logger.Err(err), logger.Latency(time.Since(start)))
		return command.Result{}, err
	}

	if l.repo != nil && !before.Equal(l.model.Buddy()) {
		if err := l.repo.Save(ctx, l.model.Buddy()); err != nil {
			log.Error("failed to save data, changes rolled back", logger.Err(err))
			l.model.SetBuddy(before)
			l.model.UpdateFilteredModules(filter)
			return command.Result{}, command.Errorf(MessageSaveFailed, err)
		}
		log.Debug("data saved")
	}

	log.Info("command executed",
		logger.String("feedback", result.Feedback),
		logger.Latency(time.Since(start)),
	)
	return result, nil
}

// Buddy returns the current aggregate.
func (l *Manager) Buddy() *buddy.Buddy {
	return l.model.Buddy()
}

// FilteredModules returns the modules currently shown to the user.
func (l *Manager) FilteredModules() []*module.Module {
	return l.model.FilteredModules()
}

// LoadInitial reads the saved aggregate. When nothing was saved yet it returns
// sample data; when the saved data cannot be read it starts empty.
func LoadInitial(ctx context.Context, repo buddy.Repository, log *logger.Logger) *buddy.Buddy {
	if log == nil {
		log = logger.Nop()
	}
	b, err := repo.Load(ctx)
	switch {
	case err == nil:
		return b
	case errors.Is(err, buddy.ErrNoData):
		log.Info("no saved data found, starting with sample data")
		return buddy.SampleData()
	default:
		log.Warn("saved data could not be loaded, starting with an empty TAB", logger.Err(err))
		return buddy.New()
	}
}
