// Package dto contains the serialized form of the aggregate shared by every
// storage backend, and its validating conversion back to domain objects.
package dto

import (
	"fmt"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// Conversion errors.
const (
	MessageMissingField      = "%s's %s field is missing!"
	MessageDuplicateModule   = "Modules list contains duplicate module(s)."
	MessageDuplicateStudent  = "Module %s contains duplicate student(s)."
	MessageDuplicateTask     = "Module %s contains duplicate task(s)."
	MessageUnknownCompletion = "Student %s in module %s completed unknown task %s."
)

// Buddy is the serialized aggregate.
type Buddy struct {
	Modules []Module `json:"modules"`
}

// Module is a serialized module.
type Module struct {
	Name     string    `json:"name"`
	Students []Student `json:"students"`
	Tasks    []Task    `json:"tasks"`
}

// Student is a serialized student.
type Student struct {
	Name           string   `json:"name"`
	StudentID      string   `json:"studentId"`
	Email          string   `json:"email"`
	TeleHandle     string   `json:"teleHandle"`
	CompletedTasks []string `json:"completedTasks"`
}

// Task is a serialized task.
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Deadline string `json:"deadline"`
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN → DTO
// ══════════════════════════════════════════════════════════════════════════════

// FromDomain converts the aggregate for storage.
func FromDomain(b *buddy.Buddy) Buddy {
	out := Buddy{Modules: make([]Module, 0, len(b.Modules()))}
	for _, m := range b.Modules() {
		dm := Module{
			Name:     string(m.Name),
			Students: make([]Student, 0, len(m.Students)),
			Tasks:    make([]Task, 0, len(m.Tasks)),
		}
		for _, s := range m.Students {
			completed := make([]string, 0, len(s.CompletedTasks))
			for _, id := range s.CompletedTasks {
				completed = append(completed, string(id))
			}
			dm.Students = append(dm.Students, Student{
				Name:           string(s.Name),
				StudentID:      string(s.ID),
				Email:          string(s.Email),
				TeleHandle:     string(s.TeleHandle),
				CompletedTasks: completed,
			})
		}
		for _, t := range m.Tasks {
			dm.Tasks = append(dm.Tasks, Task{
				ID:       string(t.ID),
				Name:     string(t.Name),
				Deadline: t.Deadline.String(),
			})
		}
		out.Modules = append(out.Modules, dm)
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// DTO → DOMAIN
// ══════════════════════════════════════════════════════════════════════════════

// ToDomain validates every field and rebuilds the aggregate.
func (d Buddy) ToDomain() (*buddy.Buddy, error) {
	b := buddy.New()
	for _, dm := range d.Modules {
		m, err := dm.ToDomain()
		if err != nil {
			return nil, err
		}
		if err := b.AddModule(m); err != nil {
			return nil, invalid(MessageDuplicateModule)
		}
	}
	return b, nil
}

// ToDomain validates the module and everything it holds.
func (d Module) ToDomain() (*module.Module, error) {
	if d.Name == "" {
		return nil, missing("Module", "name")
	}
	name, err := module.NewName(d.Name)
	if err != nil {
		return nil, err
	}
	m := module.New(name)

	for _, dt := range d.Tasks {
		t, err := dt.ToDomain()
		if err != nil {
			return nil, err
		}
		if err := m.AddTask(t); err != nil {
			return nil, invalid(fmt.Sprintf(MessageDuplicateTask, name))
		}
	}
	for _, ds := range d.Students {
		s, err := ds.ToDomain()
		if err != nil {
			return nil, err
		}
		for _, id := range s.CompletedTasks {
			if _, ok := m.FindTask(id); !ok {
				return nil, invalid(fmt.Sprintf(MessageUnknownCompletion, s.ID, name, id))
			}
		}
		if err := m.AddStudent(s); err != nil {
			return nil, invalid(fmt.Sprintf(MessageDuplicateStudent, name))
		}
	}
	return m, nil
}

// ToDomain validates the student.
func (d Student) ToDomain() (*student.Student, error) {
	if d.Name == "" {
		return nil, missing("Student", "name")
	}
	name, err := student.NewName(d.Name)
	if err != nil {
		return nil, err
	}
	if d.StudentID == "" {
		return nil, missing("Student", "studentId")
	}
	id, err := student.NewID(d.StudentID)
	if err != nil {
		return nil, err
	}
	if d.Email == "" {
		return nil, missing("Student", "email")
	}
	email, err := student.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	if d.TeleHandle == "" {
		return nil, missing("Student", "teleHandle")
	}
	handle, err := student.NewTeleHandle(d.TeleHandle)
	if err != nil {
		return nil, err
	}

	s := student.New(name, id, email, handle)
	for _, raw := range d.CompletedTasks {
		tid, err := task.NewID(raw)
		if err != nil {
			return nil, err
		}
		s = s.WithCompleted(tid)
	}
	return s, nil
}

// ToDomain validates the task.
func (d Task) ToDomain() (*task.Task, error) {
	if d.ID == "" {
		return nil, missing("Task", "id")
	}
	id, err := task.NewID(d.ID)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		return nil, missing("Task", "name")
	}
	name, err := task.NewName(d.Name)
	if err != nil {
		return nil, err
	}
	if d.Deadline == "" {
		return nil, missing("Task", "deadline")
	}
	deadline, err := task.NewDeadline(d.Deadline)
	if err != nil {
		return nil, err
	}
	return task.New(id, name, deadline), nil
}

func missing(typ, field string) error {
	return invalid(fmt.Sprintf(MessageMissingField, typ, field))
}

func invalid(message string) error {
	return shared.ValidationError("storage", "ToDomain", message)
}
