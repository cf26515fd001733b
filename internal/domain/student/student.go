// Package student contains the student entity and its field value objects.
//
// Students are owned by a module. A student is identified by its ID within
// that module; the same person enrolled in two modules is two records.
package student

import (
	"fmt"
	"slices"

	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// Student is a person enrolled in a module.
type Student struct {
	Name       Name
	ID         ID
	Email      Email
	TeleHandle TeleHandle

	// CompletedTasks is kept sorted and free of duplicates.
	CompletedTasks []task.ID
}

// New creates a student with no completed tasks.
func New(name Name, id ID, email Email, handle TeleHandle) *Student {
	return &Student{
		Name:       name,
		ID:         id,
		Email:      email,
		TeleHandle: handle,
	}
}

// IsSame reports whether both records describe the same student.
func (s *Student) IsSame(other *Student) bool {
	if s == other {
		return true
	}
	return s != nil && other != nil && s.ID == other.ID
}

// Equal compares all fields, including task completion.
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name &&
		s.ID == other.ID &&
		s.Email == other.Email &&
		s.TeleHandle == other.TeleHandle &&
		slices.Equal(s.CompletedTasks, other.CompletedTasks)
}

// Clone returns a deep copy.
func (s *Student) Clone() *Student {
	c := *s
	c.CompletedTasks = slices.Clone(s.CompletedTasks)
	return &c
}

// HasCompleted reports whether the student has completed the task.
func (s *Student) HasCompleted(id task.ID) bool {
	_, found := slices.BinarySearch(s.CompletedTasks, id)
	return found
}

// WithCompleted returns a copy with the task marked as completed.
func (s *Student) WithCompleted(id task.ID) *Student {
	c := s.Clone()
	if i, found := slices.BinarySearch(c.CompletedTasks, id); !found {
		c.CompletedTasks = slices.Insert(c.CompletedTasks, i, id)
	}
	return c
}

// WithoutCompleted returns a copy with the task no longer marked as completed.
func (s *Student) WithoutCompleted(id task.ID) *Student {
	c := s.Clone()
	if i, found := slices.BinarySearch(c.CompletedTasks, id); found {
		c.CompletedTasks = slices.Delete(c.CompletedTasks, i, i+1)
	}
	if len(c.CompletedTasks) == 0 {
		c.CompletedTasks = nil
	}
	return c
}

func (s *Student) String() string {
	return fmt.Sprintf("%s; Student ID: %s; Email: %s; Telegram: %s", s.Name, s.ID, s.Email, s.TeleHandle)
}
