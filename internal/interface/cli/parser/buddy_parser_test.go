package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/application/command"
	ct "github.com/tabuddy/tabuddy/internal/application/command/commandtest"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
	"github.com/tabuddy/tabuddy/internal/interface/cli/parser"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

func assertParseSuccess(t *testing.T, input string, want command.Command) {
	t.Helper()
	got, err := parser.New().Parse(input)
	require.NoError(t, err, input)
	assert.Equal(t, want, got, input)
}

func assertParseFailure(t *testing.T, input, wantMessage string) {
	t.Helper()
	_, err := parser.New().Parse(input)
	var perr *parser.Error
	require.True(t, errors.As(err, &perr), "expected *parser.Error for %q, got %v", input, err)
	assert.Equal(t, wantMessage, perr.Message, input)
}

func invalidFormat(usage string) string {
	return fmt.Sprintf(parser.MessageInvalidCommandFormat, usage)
}

func TestParse_Routing(t *testing.T) {
	assertParseSuccess(t, "list", command.List{})
	assertParseSuccess(t, "list 3", command.List{})
	assertParseSuccess(t, "clear", command.Clear{})
	assertParseSuccess(t, "help", command.Help{})
	assertParseSuccess(t, "  exit  ", command.Exit{})

	assertParseFailure(t, "", invalidFormat(command.HelpUsage))
	assertParseFailure(t, "   ", invalidFormat(command.HelpUsage))
	assertParseFailure(t, "unknownCommand", parser.MessageUnknownCommand)
	assertParseFailure(t, "LIST", parser.MessageUnknownCommand)
	assertParseFailure(t, "add", invalidFormat(command.AddModuleUsage+"\n"+command.AddStudentUsage+"\n"+command.AddTaskUsage))
	assertParseFailure(t, "edit task 1", invalidFormat(command.EditModuleUsage+"\n"+command.EditStudentUsage))
}

func TestParse_AddModule(t *testing.T) {
	assertParseSuccess(t, "add module"+ct.ModuleNameDesc0, command.AddModule{Module: module.New(testutil.ModuleName0)})
	assertParseSuccess(t, "add module"+ct.PreambleWhitespace+ct.ModuleNameDesc1, command.AddModule{Module: module.New(testutil.ModuleName1)})
	assertParseSuccess(t, "add module"+ct.ModuleNameDesc0+ct.ModuleNameDesc1, command.AddModule{Module: module.New(testutil.ModuleName1)})

	assertParseFailure(t, "add module", invalidFormat(command.AddModuleUsage))
	assertParseFailure(t, "add module "+ct.PreambleNonEmpty+ct.ModuleNameDesc0, invalidFormat(command.AddModuleUsage))
	assertParseFailure(t, "add module"+ct.InvalidModuleNameDesc, module.MessageConstraintsName)
}

func TestParse_EditAndDeleteModule(t *testing.T) {
	assertParseSuccess(t, "edit module 1"+ct.ModuleNameDesc1,
		command.EditModule{Index: command.IndexFromOneBased(1), Name: testutil.ModuleName1})
	assertParseFailure(t, "edit module"+ct.ModuleNameDesc1, invalidFormat(command.EditModuleUsage))
	assertParseFailure(t, "edit module 0"+ct.ModuleNameDesc1, invalidFormat(command.EditModuleUsage))
	assertParseFailure(t, "edit module -5"+ct.ModuleNameDesc1, invalidFormat(command.EditModuleUsage))
	assertParseFailure(t, "edit module 1", invalidFormat(command.EditModuleUsage))
	assertParseFailure(t, "edit module 1"+ct.InvalidModuleNameDesc, module.MessageConstraintsName)

	assertParseSuccess(t, "delete module 2", command.DeleteModule{Index: command.IndexFromOneBased(2)})
	assertParseFailure(t, "delete module a", invalidFormat(command.DeleteModuleUsage))
	assertParseFailure(t, "delete module", invalidFormat(command.DeleteModuleUsage))
}

func TestParseIndex(t *testing.T) {
	idx, err := parser.ParseIndex("  1  ")
	require.NoError(t, err)
	assert.Equal(t, command.IndexFromOneBased(1), idx)

	for _, in := range []string{"", "0", "-1", "+1", "10 a", "99999999999"} {
		_, err := parser.ParseIndex(in)
		assert.EqualError(t, err, parser.MessageInvalidIndex, in)
	}
}

func TestParse_AddStudent(t *testing.T) {
	amy := testutil.Amy()
	want := command.AddStudent{Module: testutil.ModuleName0, Student: amy}
	all := ct.ModuleNameDesc0 + ct.NameDescAmy + ct.StudentIDDescAmy + ct.EmailDescAmy + ct.TeleHandleDescAmy

	assertParseSuccess(t, "add student"+ct.PreambleWhitespace+all, want)
	// any order, last value of a repeated prefix wins
	assertParseSuccess(t, "add student"+ct.TeleHandleDescAmy+ct.EmailDescAmy+ct.NameDescBob+ct.NameDescAmy+
		ct.StudentIDDescAmy+ct.ModuleNameDesc0, want)
	// student ID is upper-cased
	assertParseSuccess(t, "add student"+ct.ModuleNameDesc0+ct.NameDescAmy+" s/a1111111a"+ct.EmailDescAmy+ct.TeleHandleDescAmy, want)

	usage := invalidFormat(command.AddStudentUsage)
	assertParseFailure(t, "add student"+ct.NameDescAmy+ct.StudentIDDescAmy+ct.EmailDescAmy+ct.TeleHandleDescAmy, usage)
	assertParseFailure(t, "add student"+ct.ModuleNameDesc0+ct.StudentIDDescAmy+ct.EmailDescAmy+ct.TeleHandleDescAmy, usage)
	assertParseFailure(t, "add student "+ct.PreambleNonEmpty+all, usage)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"module", ct.InvalidModuleNameDesc + ct.NameDescAmy + ct.StudentIDDescAmy + ct.EmailDescAmy + ct.TeleHandleDescAmy, module.MessageConstraintsName},
		{"name", ct.ModuleNameDesc0 + ct.InvalidNameDesc + ct.StudentIDDescAmy + ct.EmailDescAmy + ct.TeleHandleDescAmy, student.MessageConstraintsName},
		{"student id", ct.ModuleNameDesc0 + ct.NameDescAmy + ct.InvalidStudentIDDesc + ct.EmailDescAmy + ct.TeleHandleDescAmy, student.MessageConstraintsID},
		{"email", ct.ModuleNameDesc0 + ct.NameDescAmy + ct.StudentIDDescAmy + ct.InvalidEmailDesc + ct.TeleHandleDescAmy, student.MessageConstraintsEmail},
		{"tele handle", ct.ModuleNameDesc0 + ct.NameDescAmy + ct.StudentIDDescAmy + ct.EmailDescAmy + ct.InvalidTeleHandleDesc, student.MessageConstraintsTeleHandle},
		{"first invalid reported", ct.ModuleNameDesc0 + ct.InvalidNameDesc + ct.StudentIDDescAmy + ct.InvalidEmailDesc + ct.TeleHandleDescAmy, student.MessageConstraintsName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParseFailure(t, "add student"+tt.input, tt.want)
		})
	}
}

func TestParse_EditStudent(t *testing.T) {
	name := student.Name(testutil.ValidNameBob)
	handle := student.TeleHandle(testutil.ValidTeleHandleBob)

	assertParseSuccess(t, "edit student"+ct.ModuleNameDesc0+ct.StudentIDDescAmy+ct.NameDescBob+ct.TeleHandleDescBob,
		command.EditStudent{
			Module:     testutil.ModuleName0,
			ID:         testutil.ValidStudentIDAmy,
			Descriptor: command.EditStudentDescriptor{Name: &name, TeleHandle: &handle},
		})

	assertParseFailure(t, "edit student"+ct.ModuleNameDesc0+ct.StudentIDDescAmy, command.MessageNotEdited)
	assertParseFailure(t, "edit student"+ct.ModuleNameDesc0+ct.NameDescBob, invalidFormat(command.EditStudentUsage))
	assertParseFailure(t, "edit student"+ct.ModuleNameDesc0+ct.StudentIDDescAmy+ct.InvalidEmailDesc, student.MessageConstraintsEmail)
	assertParseFailure(t, "edit student"+ct.ModuleNameDesc0+ct.StudentIDDescAmy+ct.InvalidNameDesc+ct.EmailDescBob, student.MessageConstraintsName)
}

func TestParse_DeleteStudent(t *testing.T) {
	assertParseSuccess(t, "delete student"+ct.ModuleNameDesc1+ct.StudentIDDescBob,
		command.DeleteStudent{Module: testutil.ModuleName1, ID: testutil.ValidStudentIDBob})
	assertParseFailure(t, "delete student"+ct.ModuleNameDesc1, invalidFormat(command.DeleteStudentUsage))
	assertParseFailure(t, "delete student"+ct.ModuleNameDesc1+ct.InvalidStudentIDDesc, student.MessageConstraintsID)
}

func TestParse_Tasks(t *testing.T) {
	d, err := task.NewDeadline(testutil.ValidDeadline)
	require.NoError(t, err)
	all := ct.ModuleNameDesc0 + ct.TaskIDDesc + ct.TaskNameDesc + ct.DeadlineDesc

	assertParseSuccess(t, "add task"+all, command.AddTask{
		Module: testutil.ModuleName0,
		Task:   task.New(testutil.ValidTaskID, testutil.ValidTaskName, d),
	})
	assertParseFailure(t, "add task"+ct.ModuleNameDesc0+ct.TaskIDDesc+ct.TaskNameDesc, invalidFormat(command.AddTaskUsage))
	assertParseFailure(t, "add task"+ct.ModuleNameDesc0+ct.InvalidTaskIDDesc+ct.TaskNameDesc+ct.DeadlineDesc, task.MessageConstraintsID)
	assertParseFailure(t, "add task"+ct.ModuleNameDesc0+ct.TaskIDDesc+ct.TaskNameDesc+ct.InvalidDeadlineDesc, task.MessageConstraintsDeadline)

	assertParseSuccess(t, "delete task"+ct.ModuleNameDesc0+" ti/t3", command.DeleteTask{Module: testutil.ModuleName0, ID: "T3"})
	assertParseFailure(t, "delete task"+ct.TaskIDDesc, invalidFormat(command.DeleteTaskUsage))

	assertParseSuccess(t, "mark"+ct.ModuleNameDesc0+ct.TaskIDDesc+ct.StudentIDDescAmy,
		command.Mark{Module: testutil.ModuleName0, TaskID: testutil.ValidTaskID, Student: testutil.ValidStudentIDAmy})
	assertParseSuccess(t, "unmark"+ct.ModuleNameDesc0+ct.TaskIDDesc+ct.StudentIDDescAmy,
		command.Unmark{Module: testutil.ModuleName0, TaskID: testutil.ValidTaskID, Student: testutil.ValidStudentIDAmy})
	assertParseFailure(t, "mark"+ct.ModuleNameDesc0+ct.TaskIDDesc, invalidFormat(command.MarkUsage))
	assertParseFailure(t, "unmark"+ct.ModuleNameDesc0+ct.StudentIDDescAmy, invalidFormat(command.UnmarkUsage))
}

func TestParse_Find(t *testing.T) {
	assertParseSuccess(t, "find \n CS2103T \t CS2101  ",
		command.Find{Predicate: module.NameContainsKeywords{Keywords: []string{"CS2103T", "CS2101"}}})
	assertParseFailure(t, "find   ", invalidFormat(command.FindUsage))
}
