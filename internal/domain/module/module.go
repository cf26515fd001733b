// Package module contains the module entity: a named class with its
// enrolled students and the tasks set for them.
package module

import (
	"regexp"
	"slices"
	"strings"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// Name is a module code such as "CS2103T".
type Name string

// MessageConstraintsName is shown when a module name fails validation.
const MessageConstraintsName = "Module names should only contain alphanumeric characters, and it should not be blank"

var nameRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsValidName reports whether s is a valid module name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// NewName validates s.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return "", shared.ValidationError("module", "NewName", MessageConstraintsName)
	}
	return Name(s), nil
}

// Matches reports whether both names identify the same module (case-insensitive).
func (n Name) Matches(other Name) bool {
	return strings.EqualFold(string(n), string(other))
}

func (n Name) String() string { return string(n) }

// Module domain errors.
var (
	ErrDuplicateStudent = shared.NewDomainError("module", "AddStudent", shared.ErrAlreadyExists, "student already exists in module")
	ErrStudentNotFound  = shared.NewDomainError("module", "FindStudent", shared.ErrNotFound, "student not found in module")
	ErrDuplicateTask    = shared.NewDomainError("module", "AddTask", shared.ErrAlreadyExists, "task already exists in module")
	ErrTaskNotFound     = shared.NewDomainError("module", "FindTask", shared.ErrNotFound, "task not found in module")
)

// Module owns an ordered list of unique students and an ordered list of unique tasks.
// Modules held by the aggregate are treated as values: edits happen on a Clone
// that then replaces the original.
type Module struct {
	Name     Name
	Students []*student.Student
	Tasks    []*task.Task
}

// New creates an empty module.
func New(name Name) *Module {
	return &Module{Name: name}
}

// IsSame reports whether both modules share a name (case-insensitive).
func (m *Module) IsSame(other *Module) bool {
	if m == other {
		return true
	}
	return m != nil && other != nil && m.Name.Matches(other.Name)
}

// Equal compares the name and every student and task in order.
func (m *Module) Equal(other *Module) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Name == other.Name &&
		slices.EqualFunc(m.Students, other.Students, (*student.Student).Equal) &&
		slices.EqualFunc(m.Tasks, other.Tasks, (*task.Task).Equal)
}

// Clone returns a deep copy.
func (m *Module) Clone() *Module {
	c := &Module{Name: m.Name}
	if m.Students != nil {
		c.Students = make([]*student.Student, len(m.Students))
		for i, s := range m.Students {
			c.Students[i] = s.Clone()
		}
	}
	if m.Tasks != nil {
		c.Tasks = make([]*task.Task, len(m.Tasks))
		for i, t := range m.Tasks {
			c.Tasks[i] = t.Clone()
		}
	}
	return c
}

func (m *Module) String() string {
	return string(m.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

// FindStudent returns the student with the given ID.
func (m *Module) FindStudent(id student.ID) (*student.Student, bool) {
	i := m.studentIndex(id)
	if i < 0 {
		return nil, false
	}
	return m.Students[i], true
}

// HasStudent reports whether a student with the same identity exists.
func (m *Module) HasStudent(s *student.Student) bool {
	return m.studentIndex(s.ID) >= 0
}

// AddStudent appends s. The student must not already exist.
func (m *Module) AddStudent(s *student.Student) error {
	if m.HasStudent(s) {
		return ErrDuplicateStudent
	}
	m.Students = append(m.Students, s)
	return nil
}

// SetStudent replaces the student identified by target with edited.
// edited may carry a different ID as long as it does not clash with another student.
func (m *Module) SetStudent(target student.ID, edited *student.Student) error {
	i := m.studentIndex(target)
	if i < 0 {
		return ErrStudentNotFound
	}
	if edited.ID != target && m.studentIndex(edited.ID) >= 0 {
		return ErrDuplicateStudent
	}
	m.Students[i] = edited
	return nil
}

// RemoveStudent deletes the student with the given ID.
func (m *Module) RemoveStudent(id student.ID) error {
	i := m.studentIndex(id)
	if i < 0 {
		return ErrStudentNotFound
	}
	m.Students = slices.Delete(m.Students, i, i+1)
	return nil
}

func (m *Module) studentIndex(id student.ID) int {
	return slices.IndexFunc(m.Students, func(s *student.Student) bool { return s.ID == id })
}

// ─────────────────────────────────────────────────────────────────────────────
// Tasks
// ─────────────────────────────────────────────────────────────────────────────

// FindTask returns the task with the given ID.
func (m *Module) FindTask(id task.ID) (*task.Task, bool) {
	i := m.taskIndex(id)
	if i < 0 {
		return nil, false
	}
	return m.Tasks[i], true
}

// HasTask reports whether a task with the same ID exists.
func (m *Module) HasTask(t *task.Task) bool {
	return m.taskIndex(t.ID) >= 0
}

// AddTask appends t. The task must not already exist.
func (m *Module) AddTask(t *task.Task) error {
	if m.HasTask(t) {
		return ErrDuplicateTask
	}
	m.Tasks = append(m.Tasks, t)
	return nil
}

// RemoveTask deletes the task and clears it from every student's completed set.
func (m *Module) RemoveTask(id task.ID) error {
	i := m.taskIndex(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	m.Tasks = slices.Delete(m.Tasks, i, i+1)
	for j, s := range m.Students {
		if s.HasCompleted(id) {
			m.Students[j] = s.WithoutCompleted(id)
		}
	}
	return nil
}

// CompletionCount returns how many students have completed the task.
func (m *Module) CompletionCount(id task.ID) int {
	n := 0
	for _, s := range m.Students {
		if s.HasCompleted(id) {
			n++
		}
	}
	return n
}

func (m *Module) taskIndex(id task.ID) int {
	return slices.IndexFunc(m.Tasks, func(t *task.Task) bool { return t.ID == id })
}
