package parser

import (
	"strings"

	"github.com/tabuddy/tabuddy/internal/application/command"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROUTING
// ══════════════════════════════════════════════════════════════════════════════

// parseFunc builds a command from the text after the command word(s).
type parseFunc func(args string) (command.Command, error)

// BuddyParser routes a line to the parser registered for its command word.
// add, edit and delete take a second word naming what they act on.
type BuddyParser struct {
	single  map[string]parseFunc
	targets map[string]map[string]parseFunc
}

// New returns a parser with every command registered.
func New() *BuddyParser {
	return &BuddyParser{
		single: map[string]parseFunc{
			command.WordMark:   parseMark,
			command.WordUnmark: parseUnmark,
			command.WordFind:   parseFind,
			command.WordList:   constant(command.List{}),
			command.WordClear:  constant(command.Clear{}),
			command.WordHelp:   constant(command.Help{}),
			command.WordExit:   constant(command.Exit{}),
		},
		targets: map[string]map[string]parseFunc{
			command.WordAdd: {
				command.TargetModule:  parseAddModule,
				command.TargetStudent: parseAddStudent,
				command.TargetTask:    parseAddTask,
			},
			command.WordEdit: {
				command.TargetModule:  parseEditModule,
				command.TargetStudent: parseEditStudent,
			},
			command.WordDelete: {
				command.TargetModule:  parseDeleteModule,
				command.TargetStudent: parseDeleteStudent,
				command.TargetTask:    parseDeleteTask,
			},
		},
	}
}

// Parse converts one line of user input into a command.
func (p *BuddyParser) Parse(line string) (command.Command, error) {
	word, rest := splitWord(line)
	if word == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	if fn, ok := p.single[word]; ok {
		return fn(rest)
	}

	byTarget, ok := p.targets[word]
	if !ok {
		return nil, &Error{Message: MessageUnknownCommand}
	}
	target, args := splitWord(rest)
	fn, ok := byTarget[target]
	if !ok {
		return nil, invalidFormat(usageFor(word))
	}
	return fn(args)
}

// splitWord returns the first whitespace-delimited word of s and the remainder,
// which keeps its leading whitespace so the first prefix is still recognised.
func splitWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t\r\n")
	i := strings.IndexAny(s, " \t\r\n")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func usageFor(word string) string {
	switch word {
	case command.WordAdd:
		return strings.Join([]string{command.AddModuleUsage, command.AddStudentUsage, command.AddTaskUsage}, "\n")
	case command.WordEdit:
		return strings.Join([]string{command.EditModuleUsage, command.EditStudentUsage}, "\n")
	default:
		return strings.Join([]string{command.DeleteModuleUsage, command.DeleteStudentUsage, command.DeleteTaskUsage}, "\n")
	}
}

func constant(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}
