package command

import (
	"context"
	"fmt"

	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// Command words.
const (
	WordAdd    = "add"
	WordEdit   = "edit"
	WordDelete = "delete"

	TargetModule  = "module"
	TargetStudent = "student"
	TargetTask    = "task"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD MODULE
// ══════════════════════════════════════════════════════════════════════════════

const (
	AddModuleUsage = WordAdd + " " + TargetModule + ": Adds a module to TAB. " +
		"Parameters: m/MODULE_NAME\n" +
		"Example: " + WordAdd + " " + TargetModule + " m/CS2103T"
	AddModuleSuccess = "New module added: %s"
)

// AddModule adds a new empty module and shows all modules.
type AddModule struct {
	Module *module.Module
}

// Execute implements Command.
func (c AddModule) Execute(ctx context.Context, m model.Model) (Result, error) {
	if m.HasModule(c.Module) {
		return Result{}, &Error{Message: MessageDuplicateModule}
	}
	if err := m.AddModule(c.Module.Clone()); err != nil {
		return Result{}, Errorf("%s", err)
	}
	logChange(ctx, "add_module", logger.ModuleName(c.Module.Name.String()))
	return NewResult(fmt.Sprintf(AddModuleSuccess, c.Module)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// EDIT MODULE
// ══════════════════════════════════════════════════════════════════════════════

const (
	EditModuleUsage = WordEdit + " " + TargetModule + ": Renames the module identified by the index " +
		"number used in the displayed module list.\n" +
		"Parameters: INDEX (must be a positive integer) m/MODULE_NAME\n" +
		"Example: " + WordEdit + " " + TargetModule + " 1 m/CS2101"
	EditModuleSuccess = "Edited module: %s"
)

// EditModule renames the module at Index in the filtered list.
type EditModule struct {
	Index Index
	Name  module.Name
}

// Execute implements Command.
func (c EditModule) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := moduleAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if existing, ok := m.FindModule(c.Name); ok && existing != target {
		return Result{}, &Error{Message: MessageDuplicateModule}
	}

	edited := target.Clone()
	edited.Name = c.Name
	if err := replaceModule(m, target, edited); err != nil {
		return Result{}, err
	}
	logChange(ctx, "edit_module", logger.ModuleName(edited.Name.String()), logger.String("previous_name", target.Name.String()))
	return NewResult(fmt.Sprintf(EditModuleSuccess, edited)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE MODULE
// ══════════════════════════════════════════════════════════════════════════════

const (
	DeleteModuleUsage = WordDelete + " " + TargetModule + ": Deletes the module identified by the index " +
		"number used in the displayed module list, together with its students and tasks.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " " + TargetModule + " 1"
	DeleteModuleSuccess = "Deleted module: %s"
)

// DeleteModule removes the module at Index in the filtered list.
type DeleteModule struct {
	Index Index
}

// Execute implements Command.
func (c DeleteModule) Execute(ctx context.Context, m model.Model) (Result, error) {
	target, err := moduleAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteModule(target); err != nil {
		return Result{}, Errorf("%s", err)
	}
	logChange(ctx, "delete_module", logger.ModuleName(target.Name.String()))
	return NewResult(fmt.Sprintf(DeleteModuleSuccess, target)), nil
}
