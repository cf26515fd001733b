package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// Parse errors.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
)

// Error is returned when user input cannot be turned into a command.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalidFormat(usage string) *Error {
	return &Error{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// fieldError converts a field constructor error into a parse error carrying the constraint text.
func fieldError(err error) *Error {
	return &Error{Message: shared.MessageOf(err)}
}

// ParseIndex parses a one-based index. Leading and trailing whitespace is ignored.
func ParseIndex(s string) (command.Index, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-") {
		return command.Index{}, &Error{Message: MessageInvalidIndex}
	}
	n, err := strconv.ParseUint(trimmed, 10, 31)
	if err != nil || n == 0 {
		return command.Index{}, &Error{Message: MessageInvalidIndex}
	}
	return command.IndexFromOneBased(int(n)), nil
}

// ParseModuleName parses a module name.
func ParseModuleName(s string) (module.Name, error) {
	name, err := module.NewName(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return name, nil
}

// ParseName parses a student name.
func ParseName(s string) (student.Name, error) {
	name, err := student.NewName(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return name, nil
}

// ParseStudentID parses a student ID.
func ParseStudentID(s string) (student.ID, error) {
	id, err := student.NewID(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return id, nil
}

// ParseEmail parses an email.
func ParseEmail(s string) (student.Email, error) {
	email, err := student.NewEmail(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return email, nil
}

// ParseTeleHandle parses a Telegram handle.
func ParseTeleHandle(s string) (student.TeleHandle, error) {
	handle, err := student.NewTeleHandle(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return handle, nil
}

// ParseTaskID parses a task ID.
func ParseTaskID(s string) (task.ID, error) {
	id, err := task.NewID(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return id, nil
}

// ParseTaskName parses a task name.
func ParseTaskName(s string) (task.Name, error) {
	name, err := task.NewName(strings.TrimSpace(s))
	if err != nil {
		return "", fieldError(err)
	}
	return name, nil
}

// ParseDeadline parses a YYYY-MM-DD deadline.
func ParseDeadline(s string) (task.Deadline, error) {
	d, err := task.NewDeadline(strings.TrimSpace(s))
	if err != nil {
		return task.Deadline{}, fieldError(err)
	}
	return d, nil
}
