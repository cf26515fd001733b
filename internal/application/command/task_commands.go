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

// Task command words.
const (
	WordMark   = "mark"
	WordUnmark = "unmark"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD TASK
// ══════════════════════════════════════════════════════════════════════════════

const (
	AddTaskUsage = WordAdd + " " + TargetTask + ": Adds a task to a module. " +
		"Parameters: m/MODULE_NAME ti/TASK_ID a/TASK_NAME d/DEADLINE\n" +
		"Example: " + WordAdd + " " + TargetTask + " m/CS2103T ti/T1 a/Assignment 1 d/2021-10-20"
	AddTaskSuccess       = "New task added to %s: %s"
	MessageDuplicateTask = "This task already exists in %s"
)

// AddTask adds a task to an existing module.
type AddTask struct {
	Module module.Name
	Task   *task.Task
}

// Execute implements Command.
func (c AddTask) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := findModule(m, c.Module)
	if err != nil {
		return Result{}, err
	}
	if target.HasTask(c.Task) {
		return Result{}, Errorf(MessageDuplicateTask, target.Name)
	}

	edited := target.Clone()
	if err := edited.AddTask(c.Task.Clone()); err != nil {
		return Result{}, Errorf(MessageDuplicateTask, target.Name)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "add_task", logger.ModuleName(target.Name.String()), logger.TaskID(c.Task.ID.String()))
	return NewResult(fmt.Sprintf(AddTaskSuccess, target.Name, c.Task)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE TASK
// ══════════════════════════════════════════════════════════════════════════════

const (
	DeleteTaskUsage = WordDelete + " " + TargetTask + ": Deletes the task identified by the task ID " +
		"from the given module and clears it from every student.\n" +
		"Parameters: m/MODULE_NAME ti/TASK_ID\n" +
		"Example: " + WordDelete + " " + TargetTask + " m/CS2103T ti/T1"
	DeleteTaskSuccess = "Deleted task: %s"
)

// DeleteTask removes a task and every completion record of it.
type DeleteTask struct {
	Module module.Name
	ID     task.ID
}

// Execute implements Command.
func (c DeleteTask) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := findModule(m, c.Module)
	if err != nil {
		return Result{}, err
	}
	removed, err := findTask(target, c.ID)
	if err != nil {
		return Result{}, err
	}

	edited := target.Clone()
	if err := edited.RemoveTask(removed.ID); err != nil {
		return Result{}, Errorf("%s", err)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "delete_task", logger.ModuleName(target.Name.String()), logger.TaskID(removed.ID.String()))
	return NewResult(fmt.Sprintf(DeleteTaskSuccess, removed)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MARK / UNMARK
// ══════════════════════════════════════════════════════════════════════════════

const (
	MarkUsage = WordMark + ": Marks a task as done for a student.\n" +
		"Parameters: m/MODULE_NAME ti/TASK_ID s/STUDENT_ID\n" +
		"Example: " + WordMark + " m/CS2103T ti/T1 s/A1234567X"
	MarkSuccess          = "Marked task %s as done for %s"
	MessageAlreadyMarked = "Task %s is already marked as done for %s"
)

const (
	UnmarkUsage = WordUnmark + ": Marks a task as not done for a student.\n" +
		"Parameters: m/MODULE_NAME ti/TASK_ID s/STUDENT_ID\n" +
		"Example: " + WordUnmark + " m/CS2103T ti/T1 s/A1234567X"
	UnmarkSuccess       = "Marked task %s as not done for %s"
	MessageNotYetMarked = "Task %s is not yet done for %s"
)

// Mark records that a student completed a task.
type Mark struct {
	Module  module.Name
	TaskID  task.ID
	Student student.ID
}

// Execute implements Command.
func (c Mark) Execute(ctx context.Context, m model.Model) (Result, error) {
	return setCompletion(ctx, m, c.Module, c.TaskID, c.Student, true)
}

// Unmark clears a student's completion of a task.
type Unmark struct {
	Module  module.Name
	TaskID  task.ID
	Student student.ID
}

// Execute implements Command.
func (c Unmark) Execute(ctx context.Context, m model.Model) (Result, error) {
	return setCompletion(ctx, m, c.Module, c.TaskID, c.Student, false)
}

func setCompletion(ctx context.Context, m model.Model, name module.Name, taskID task.ID, studentID student.ID, done bool) (Result, error) {
	target, err := findModule(m, name)
	if err != nil {
		return Result{}, err
	}
	t, err := findTask(target, taskID)
	if err != nil {
		return Result{}, err
	}
	s, err := findStudent(target, studentID)
	if err != nil {
		return Result{}, err
	}

	var updated *student.Student
	var feedback, op string
	switch {
	case done && s.HasCompleted(t.ID):
		return Result{}, Errorf(MessageAlreadyMarked, t.ID, s.ID)
	case !done && !s.HasCompleted(t.ID):
		return Result{}, Errorf(MessageNotYetMarked, t.ID, s.ID)
	case done:
		updated = s.WithCompleted(t.ID)
		feedback = fmt.Sprintf(MarkSuccess, t.ID, s.ID)
		op = "mark"
	default:
		updated = s.WithoutCompleted(t.ID)
		feedback = fmt.Sprintf(UnmarkSuccess, t.ID, s.ID)
		op = "unmark"
	}

	edited := target.Clone()
	if err := edited.SetStudent(s.ID, updated); err != nil {
		return Result{}, Errorf("%s", err)
	}
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, op,
		logger.ModuleName(target.Name.String()),
		logger.TaskID(t.ID.String()),
		logger.StudentID(s.ID.String()),
	)
	return NewResult(feedback), nil
}
