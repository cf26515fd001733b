package command

import (
	"context"
	"fmt"

	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// Single-word commands.
const (
	WordFind  = "find"
	WordList  = "list"
	WordClear = "clear"
	WordHelp  = "help"
	WordExit  = "exit"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND
// ══════════════════════════════════════════════════════════════════════════════

const FindUsage = WordFind + ": Finds all modules whose names contain any of the specified keywords " +
	"(case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + WordFind + " CS2103T CS2101"

// Find narrows the module list to names matching any keyword.
type Find struct {
	Predicate module.NameContainsKeywords
}

// Execute implements Command.
func (c Find) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredModules(c.Predicate.Test)
	return NewResult(fmt.Sprintf(MessageModulesListedOverview, len(m.FilteredModules()))), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LIST
// ══════════════════════════════════════════════════════════════════════════════

const ListSuccess = "Listed all modules"

// List shows every module.
type List struct{}

// Execute implements Command.
func (List) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredModules(model.PredicateShowAll)
	return NewResult(ListSuccess), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CLEAR
// ══════════════════════════════════════════════════════════════════════════════

const ClearSuccess = "TAB has been cleared!"

// Clear removes every module.
type Clear struct{}

// Execute implements Command.
func (Clear) Execute(ctx context.Context, m model.Model) (Result, error) {
	removed := len(m.Buddy().Modules())
	m.SetBuddy(buddy.New())
	logChange(ctx, "clear", logger.Int("modules_removed", removed))
	return NewResult(ClearSuccess), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELP / EXIT
// ══════════════════════════════════════════════════════════════════════════════

const (
	HelpUsage = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp
	HelpSuccess = "Showing help."
)

// Help asks the front end to show usage instructions.
type Help struct{}

// Execute implements Command.
func (Help) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: HelpSuccess, ShowHelp: true}, nil
}

const ExitSuccess = "Exiting TAB as requested ..."

// Exit asks the front end to terminate.
type Exit struct{}

// Execute implements Command.
func (Exit) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: ExitSuccess, Exit: true}, nil
}
