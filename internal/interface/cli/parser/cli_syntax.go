// Package parser turns a line of user input into a command.
package parser

// Prefix marks the start of an argument value, e.g. "n/" in "n/Amy Bee".
type Prefix string

// Argument prefixes.
const (
	PrefixModuleName Prefix = "m/"
	PrefixName       Prefix = "n/"
	PrefixStudentID  Prefix = "s/"
	PrefixEmail      Prefix = "e/"
	PrefixTeleHandle Prefix = "t/"
	PrefixTaskID     Prefix = "ti/"
	PrefixTaskName   Prefix = "a/"
	PrefixDeadline   Prefix = "d/"
)

func (p Prefix) String() string { return string(p) }
