// Package commandtest holds assertions and argument fixtures for command and parser tests.
package commandtest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/interface/cli/parser"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

// Argument descriptors, each with the leading space a user would type.
const (
	NameDescAmy       = " " + string(parser.PrefixName) + testutil.ValidNameAmy
	NameDescBob       = " " + string(parser.PrefixName) + testutil.ValidNameBob
	StudentIDDescAmy  = " " + string(parser.PrefixStudentID) + testutil.ValidStudentIDAmy
	StudentIDDescBob  = " " + string(parser.PrefixStudentID) + testutil.ValidStudentIDBob
	EmailDescAmy      = " " + string(parser.PrefixEmail) + testutil.ValidEmailAmy
	EmailDescBob      = " " + string(parser.PrefixEmail) + testutil.ValidEmailBob
	TeleHandleDescAmy = " " + string(parser.PrefixTeleHandle) + testutil.ValidTeleHandleAmy
	TeleHandleDescBob = " " + string(parser.PrefixTeleHandle) + testutil.ValidTeleHandleBob
	ModuleNameDesc0   = " " + string(parser.PrefixModuleName) + testutil.ModuleName0
	ModuleNameDesc1   = " " + string(parser.PrefixModuleName) + testutil.ModuleName1
	TaskIDDesc        = " " + string(parser.PrefixTaskID) + testutil.ValidTaskID
	TaskNameDesc      = " " + string(parser.PrefixTaskName) + testutil.ValidTaskName
	DeadlineDesc      = " " + string(parser.PrefixDeadline) + testutil.ValidDeadline

	// '&' not allowed in names
	InvalidNameDesc = " " + string(parser.PrefixName) + "James&"
	// missing the letters around the digits
	InvalidStudentIDDesc = " " + string(parser.PrefixStudentID) + "1234567"
	// missing '@' symbol
	InvalidEmailDesc = " " + string(parser.PrefixEmail) + "bob!yahoo"
	// missing leading '@'
	InvalidTeleHandleDesc = " " + string(parser.PrefixTeleHandle) + "teleHandle"
	// '@' not allowed in module names
	InvalidModuleNameDesc = " " + string(parser.PrefixModuleName) + "modulE@"
	InvalidTaskIDDesc     = " " + string(parser.PrefixTaskID) + "1"
	InvalidDeadlineDesc   = " " + string(parser.PrefixDeadline) + "20/10/2021"

	PreambleWhitespace = "\t  \r  \n"
	PreambleNonEmpty   = "NonEmptyPreamble"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSERTIONS
// ══════════════════════════════════════════════════════════════════════════════

// AssertCommandSuccess executes cmd and checks that it returns expected and leaves
// actual equal to expectedModel, including the filtered list.
func AssertCommandSuccess(t testing.TB, cmd command.Command, actual model.Model, expected command.Result, expectedModel model.Model) {
	t.Helper()

	result, err := cmd.Execute(context.Background(), actual)
	require.NoError(t, err, "execution of command should not fail")
	assert.Equal(t, expected, result)
	assertSameState(t, expectedModel.Buddy(), expectedModel.FilteredModules(), actual)
}

// AssertCommandSuccessMessage is AssertCommandSuccess with a feedback-only result.
func AssertCommandSuccessMessage(t testing.TB, cmd command.Command, actual model.Model, expectedMessage string, expectedModel model.Model) {
	t.Helper()
	AssertCommandSuccess(t, cmd, actual, command.NewResult(expectedMessage), expectedModel)
}

// AssertCommandFailure executes cmd and checks that it fails with a *command.Error
// carrying expectedMessage while leaving the aggregate and filtered list untouched.
func AssertCommandFailure(t testing.TB, cmd command.Command, actual model.Model, expectedMessage string) {
	t.Helper()

	// Deep copies: commands must not mutate the originals even through shared pointers.
	wantBuddy := buddy.NewFrom(actual.Buddy())
	wantFiltered := cloneModules(actual.FilteredModules())

	_, err := cmd.Execute(context.Background(), actual)
	var cmdErr *command.Error
	require.True(t, errors.As(err, &cmdErr), "expected *command.Error, got %v", err)
	assert.Equal(t, expectedMessage, cmdErr.Message)
	assertSameState(t, wantBuddy, wantFiltered, actual)
}

func assertSameState(t testing.TB, wantBuddy *buddy.Buddy, wantFiltered []*module.Module, actual model.Model) {
	t.Helper()
	if diff := cmp.Diff(wantBuddy, actual.Buddy()); diff != "" {
		t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantFiltered, actual.FilteredModules()); diff != "" {
		t.Errorf("filtered modules mismatch (-want +got):\n%s", diff)
	}
}

func cloneModules(ms []*module.Module) []*module.Module {
	if ms == nil {
		return nil
	}
	out := make([]*module.Module, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
