package cli

import (
	"strings"

	"github.com/tabuddy/tabuddy/internal/application/command"
)

// Usages lists the usage text of every command in the order help shows them.
var Usages = []string{
	command.AddModuleUsage,
	command.EditModuleUsage,
	command.DeleteModuleUsage,
	command.AddStudentUsage,
	command.EditStudentUsage,
	command.DeleteStudentUsage,
	command.AddTaskUsage,
	command.DeleteTaskUsage,
	command.MarkUsage,
	command.UnmarkUsage,
	command.FindUsage,
	command.WordList + ": Lists all modules.",
	command.WordClear + ": Deletes every module.",
	command.HelpUsage,
	command.WordExit + ": Exits the program.",
}

// HelpText returns the full usage listing.
func HelpText() string {
	return strings.Join(Usages, "\n\n")
}
