// Package command contains the write operations a user can run against the model.
//
// Every command checks all of its preconditions before touching the model and
// applies its change through a single model call, so a failed command leaves
// the model exactly as it found it.
package command

import (
	"context"
	"fmt"

	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// Messages shared by several commands.
const (
	MessageInvalidModuleIndex    = "The module index provided is invalid"
	MessageModulesListedOverview = "%d modules listed!"
	MessageModuleNotFound        = "Module %s does not exist"
	MessageStudentNotFound       = "Student %s does not exist in %s"
	MessageTaskNotFound          = "Task %s does not exist in %s"
	MessageDuplicateModule       = "This module already exists in TAB"
)

// Command is a parsed user instruction.
type Command interface {
	// Execute applies the command to m. On error m is unchanged.
	Execute(ctx context.Context, m model.Model) (Result, error)
}

// ══════════════════════════════════════════════════════════════════════════════
// RESULT
// ══════════════════════════════════════════════════════════════════════════════

// Result is the outcome of a successful command.
type Result struct {
	// Feedback is shown to the user.
	Feedback string

	// ShowHelp asks the front end to display the help text.
	ShowHelp bool

	// Exit asks the front end to terminate.
	Exit bool
}

// NewResult returns a Result carrying only feedback.
func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

// ══════════════════════════════════════════════════════════════════════════════
// ERROR
// ══════════════════════════════════════════════════════════════════════════════

// Error is returned when a command cannot be applied to the model.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// ══════════════════════════════════════════════════════════════════════════════
// INDEX
// ══════════════════════════════════════════════════════════════════════════════

// Index points into the filtered module list. The zero value is the first element.
type Index struct {
	zeroBased int
}

// IndexFromZeroBased wraps a zero-based position.
func IndexFromZeroBased(i int) Index { return Index{zeroBased: i} }

// IndexFromOneBased wraps a position as shown to the user.
func IndexFromOneBased(i int) Index { return Index{zeroBased: i - 1} }

// ZeroBased returns the position for slice access.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position as shown to the user.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// ══════════════════════════════════════════════════════════════════════════════
// LOOKUP HELPERS
// ══════════════════════════════════════════════════════════════════════════════

func moduleAt(m model.Model, idx Index) (*module.Module, error) {
	filtered := m.FilteredModules()
	if idx.ZeroBased() < 0 || idx.ZeroBased() >= len(filtered) {
		return nil, &Error{Message: MessageInvalidModuleIndex}
	}
	return filtered[idx.ZeroBased()], nil
}

func findModule(m model.Model, name module.Name) (*module.Module, error) {
	mod, ok := m.FindModule(name)
	if !ok {
		return nil, Errorf(MessageModuleNotFound, name)
	}
	return mod, nil
}

func findStudent(mod *module.Module, id student.ID) (*student.Student, error) {
	s, ok := mod.FindStudent(id)
	if !ok {
		return nil, Errorf(MessageStudentNotFound, id, mod.Name)
	}
	return s, nil
}

func findTask(mod *module.Module, id task.ID) (*task.Task, error) {
	t, ok := mod.FindTask(id)
	if !ok {
		return nil, Errorf(MessageTaskNotFound, id, mod.Name)
	}
	return t, nil
}

// logChange records an applied change on the logger carried by ctx.
func logChange(ctx context.Context, op string, fields ...logger.Field) {
	logger.FromContext(ctx).Debug("model changed", append([]logger.Field{logger.Operation(op)}, fields...)...)
}

// replaceModule swaps target for edited. Callers have already ruled out every
// domain error, so a failure here means the model changed underneath the command.
func replaceModule(m model.Model, target, edited *module.Module) error {
	if err := m.SetModule(target, edited); err != nil {
		return Errorf("%s", err)
	}
	return nil
}
