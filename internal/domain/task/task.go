// Package task contains the task value objects and entity.
// A task belongs to a module; completion is recorded per student.
package task

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID identifies a task within its module, e.g. "T1".
type ID string

// MessageConstraintsID is shown when a task ID fails validation.
const MessageConstraintsID = "Task IDs should start with the letter T followed by a number, e.g. T1"

var idRegex = regexp.MustCompile(`^T[0-9]+$`)

// IsValidID reports whether s is a valid task ID (case-insensitive).
func IsValidID(s string) bool {
	return idRegex.MatchString(strings.ToUpper(s))
}

// NewID validates s and returns it upper-cased.
func NewID(s string) (ID, error) {
	if !IsValidID(s) {
		return "", shared.ValidationError("task", "NewID", MessageConstraintsID)
	}
	return ID(strings.ToUpper(s)), nil
}

func (id ID) String() string { return string(id) }

// Name is the human-readable title of a task.
type Name string

// MessageConstraintsName is shown when a task name fails validation.
const MessageConstraintsName = "Task names should only contain alphanumeric characters and spaces, and it should not be blank"

var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// IsValidName reports whether s is a valid task name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// NewName validates s.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return "", shared.ValidationError("task", "NewName", MessageConstraintsName)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Deadline is the calendar day a task is due.
type Deadline struct {
	date time.Time
}

// MessageConstraintsDeadline is shown when a deadline fails to parse.
const MessageConstraintsDeadline = "Deadlines should be valid dates in the format YYYY-MM-DD"

// IsValidDeadline reports whether s parses as a deadline.
func IsValidDeadline(s string) bool {
	_, err := timeutil.ParseDate(s)
	return err == nil
}

// NewDeadline parses s as YYYY-MM-DD.
func NewDeadline(s string) (Deadline, error) {
	d, err := timeutil.ParseDate(s)
	if err != nil {
		return Deadline{}, shared.ValidationError("task", "NewDeadline", MessageConstraintsDeadline)
	}
	return Deadline{date: d}, nil
}

// Time returns the deadline as midnight UTC.
func (d Deadline) Time() time.Time { return d.date }

// Equal compares two deadlines by calendar day.
func (d Deadline) Equal(other Deadline) bool { return d.date.Equal(other.date) }

func (d Deadline) String() string { return timeutil.FormatDate(d.date) }

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Task is a piece of work set for every student of a module.
type Task struct {
	ID       ID
	Name     Name
	Deadline Deadline
}

// New creates a task from validated fields.
func New(id ID, name Name, deadline Deadline) *Task {
	return &Task{ID: id, Name: name, Deadline: deadline}
}

// IsSame reports whether both tasks share an ID.
func (t *Task) IsSame(other *Task) bool {
	if t == other {
		return true
	}
	return other != nil && t != nil && t.ID == other.ID
}

// Equal compares all fields.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID && t.Name == other.Name && t.Deadline.Equal(other.Deadline)
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

func (t *Task) String() string {
	return fmt.Sprintf("%s: %s (due %s)", t.ID, t.Name, t.Deadline)
}
