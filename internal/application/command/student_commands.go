package command

import (
	"context"
	"fmt"

	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT
// ══════════════════════════════════════════════════════════════════════════════

const (
	AddStudentUsage = WordAdd + " " + TargetStudent + ": Adds a student to a module. " +
		"Parameters: m/MODULE_NAME n/NAME s/STUDENT_ID e/EMAIL t/TELEGRAM_HANDLE\n" +
		"Example: " + WordAdd + " " + TargetStudent + " m/CS2103T n/John Doe s/A1234567X " +
		"e/johnd@example.com t/@johndoe"
	AddStudentSuccess       = "New student added to %s: %s"
	MessageDuplicateStudent = "This student already exists in %s"
)

// AddStudent enrols a student in an existing module.
type AddStudent struct {
	Module  module.Name
	Student *student.Student
}

// Execute implements Command.
func (c AddStudent) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := findModule(m, c.Module)
	if err != nil {
		return Result{}, err
	}
	if target.HasStudent(c.Student) {
		return Result{}, Errorf(MessageDuplicateStudent, target.Name)
	}

	edited := target.Clone()
	if err := edited.AddStudent(c.Student.Clone()); err != nil {
		return Result{}, Errorf(MessageDuplicateStudent, target.Name)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "add_student", logger.ModuleName(target.Name.String()), logger.StudentID(c.Student.ID.String()))
	return NewResult(fmt.Sprintf(AddStudentSuccess, target.Name, c.Student)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// EDIT STUDENT
// ══════════════════════════════════════════════════════════════════════════════

const (
	EditStudentUsage = WordEdit + " " + TargetStudent + ": Edits the details of the student identified " +
		"by the student ID in the given module. Existing values will be overwritten by the input values.\n" +
		"Parameters: m/MODULE_NAME s/STUDENT_ID [n/NAME] [e/EMAIL] [t/TELEGRAM_HANDLE]\n" +
		"Example: " + WordEdit + " " + TargetStudent + " m/CS2103T s/A1234567X e/johndoe@example.com"
	EditStudentSuccess = "Edited student: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
	MessageNoChanges   = "No changes were made to %s"
)

// EditStudentDescriptor holds the fields to overwrite. Nil fields are kept.
type EditStudentDescriptor struct {
	Name       *student.Name
	Email      *student.Email
	TeleHandle *student.TeleHandle
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditStudentDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Email != nil || d.TeleHandle != nil
}

// Apply returns a copy of s with the descriptor's fields applied.
func (d EditStudentDescriptor) Apply(s *student.Student) *student.Student {
	edited := s.Clone()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.TeleHandle != nil {
		edited.TeleHandle = *d.TeleHandle
	}
	return edited
}

// EditStudent overwrites fields of a student. Completed tasks are kept.
type EditStudent struct {
	Module     module.Name
	ID         student.ID
	Descriptor EditStudentDescriptor
}

// Execute implements Command.
func (c EditStudent) Execute(ctx context.Context, m model.Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, &Error{Message: MessageNotEdited}
	}
	target, err := findModule(m, c.Module)
	if err != nil {
		return Result{}, err
	}
	current, err := findStudent(target, c.ID)
	if err != nil {
		return Result{}, err
	}

	updated := c.Descriptor.Apply(current)
	if updated.Equal(current) {
		return Result{}, Errorf(MessageNoChanges, current.ID)
	}

	edited := target.Clone()
	if err := edited.SetStudent(current.ID, updated); err != nil {
		return Result{}, Errorf("%s", err)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "edit_student", logger.ModuleName(target.Name.String()), logger.StudentID(updated.ID.String()))
	return NewResult(fmt.Sprintf(EditStudentSuccess, updated)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE STUDENT
// ══════════════════════════════════════════════════════════════════════════════

const (
	DeleteStudentUsage = WordDelete + " " + TargetStudent + ": Removes the student identified by the " +
		"student ID from the given module.\n" +
		"Parameters: m/MODULE_NAME s/STUDENT_ID\n" +
		"Example: " + WordDelete + " " + TargetStudent + " m/CS2103T s/A1234567X"
	DeleteStudentSuccess = "Deleted student: %s"
)

// DeleteStudent removes a student from a module.
type DeleteStudent struct {
	Module module.Name
	ID     student.ID
}

// Execute implements Command.
func (c DeleteStudent) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := findModule(m, c.Module)
	if err != nil {
		return Result{}, err
	}
	removed, err := findStudent(target, c.ID)
	if err != nil {
		return Result{}, err
	}

	edited := target.Clone()
	if err := edited.RemoveStudent(removed.ID); err != nil {
		return Result{}, Errorf("%s", err)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "delete_student", logger.ModuleName(target.Name.String()), logger.StudentID(removed.ID.String()))
	return NewResult(fmt.Sprintf(DeleteStudentSuccess, removed)), nil
}
