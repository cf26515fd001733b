package parser

import (
	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

func parseAddTask(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName, PrefixTaskID, PrefixTaskName, PrefixDeadline)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixTaskID, PrefixTaskName, PrefixDeadline) ||
		am.Preamble() != "" {
		return nil, invalidFormat(command.AddTaskUsage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return nil, err
	}
	id, err := ParseTaskID(value(am, PrefixTaskID))
	if err != nil {
		return nil, err
	}
	name, err := ParseTaskName(value(am, PrefixTaskName))
	if err != nil {
		return nil, err
	}
	deadline, err := ParseDeadline(value(am, PrefixDeadline))
	if err != nil {
		return nil, err
	}
	return command.AddTask{Module: moduleName, Task: task.New(id, name, deadline)}, nil
}

func parseDeleteTask(args string) (command.Command, error) {
	am := Tokenize(args, PrefixModuleName, PrefixTaskID)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixTaskID) || am.Preamble() != "" {
		return nil, invalidFormat(command.DeleteTaskUsage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return nil, err
	}
	id, err := ParseTaskID(value(am, PrefixTaskID))
	if err != nil {
		return nil, err
	}
	return command.DeleteTask{Module: moduleName, ID: id}, nil
}

func parseMark(args string) (command.Command, error) {
	c, err := parseCompletion(args, command.MarkUsage)
	if err != nil {
		return nil, err
	}
	return command.Mark(c), nil
}

func parseUnmark(args string) (command.Command, error) {
	c, err := parseCompletion(args, command.UnmarkUsage)
	if err != nil {
		return nil, err
	}
	return command.Unmark(c), nil
}

// parseCompletion parses the arguments shared by mark and unmark.
func parseCompletion(args, usage string) (command.Mark, error) {
	am := Tokenize(args, PrefixModuleName, PrefixTaskID, PrefixStudentID)
	if !am.ArePrefixesPresent(PrefixModuleName, PrefixTaskID, PrefixStudentID) || am.Preamble() != "" {
		return command.Mark{}, invalidFormat(usage)
	}

	moduleName, err := ParseModuleName(value(am, PrefixModuleName))
	if err != nil {
		return command.Mark{}, err
	}
	taskID, err := ParseTaskID(value(am, PrefixTaskID))
	if err != nil {
		return command.Mark{}, err
	}
	studentID, err := ParseStudentID(value(am, PrefixStudentID))
	if err != nil {
		return command.Mark{}, err
	}
	return command.Mark{Module: moduleName, TaskID: taskID, Student: studentID}, nil
}
