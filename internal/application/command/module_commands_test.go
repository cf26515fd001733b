package command_test

import (
	"fmt"
	"testing"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/application/command/commandtest"
	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

func typicalModel() *model.Manager {
	return model.NewManager(testutil.TypicalBuddy())
}

func showOnly(m model.Model, name string) {
	m.UpdateFilteredModules(module.NameContainsKeywords{Keywords: []string{name}}.Test)
}

func TestAddModule(t *testing.T) {
	t.Run("success resets filter", func(t *testing.T) {
		actual := typicalModel()
		showOnly(actual, testutil.ModuleName1)

		added := module.New(testutil.ValidModuleName)
		expected := typicalModel()
		_ = expected.AddModule(added.Clone())

		commandtest.AssertCommandSuccessMessage(t, command.AddModule{Module: added}, actual,
			fmt.Sprintf(command.AddModuleSuccess, testutil.ValidModuleName), expected)
	})

	t.Run("duplicate ignores case", func(t *testing.T) {
		commandtest.AssertCommandFailure(t, command.AddModule{Module: module.New("cs2103t")}, typicalModel(),
			command.MessageDuplicateModule)
	})
}

func TestEditModule(t *testing.T) {
	t.Run("rename first module", func(t *testing.T) {
		actual := typicalModel()
		expected := typicalModel()
		target := expected.FilteredModules()[0]
		renamed := testutil.ModuleBuilderFrom(target).WithName("CS2103").Build()
		_ = expected.SetModule(target, renamed)

		cmd := command.EditModule{Index: command.IndexFromOneBased(1), Name: "CS2103"}
		commandtest.AssertCommandSuccessMessage(t, cmd, actual, fmt.Sprintf(command.EditModuleSuccess, "CS2103"), expected)
	})

	t.Run("index into filtered list", func(t *testing.T) {
		actual := typicalModel()
		showOnly(actual, testutil.ModuleName1)
		expected := typicalModel()
		target, _ := expected.FindModule(testutil.ModuleName1)
		_ = expected.SetModule(target, testutil.ModuleBuilderFrom(target).WithName("CS2101X").Build())
		showOnly(expected, testutil.ModuleName1)

		cmd := command.EditModule{Index: command.IndexFromOneBased(1), Name: "CS2101X"}
		commandtest.AssertCommandSuccessMessage(t, cmd, actual, fmt.Sprintf(command.EditModuleSuccess, "CS2101X"), expected)
	})

	t.Run("duplicate name", func(t *testing.T) {
		cmd := command.EditModule{Index: command.IndexFromOneBased(1), Name: testutil.ModuleName1}
		commandtest.AssertCommandFailure(t, cmd, typicalModel(), command.MessageDuplicateModule)
	})

	t.Run("index outside filtered list", func(t *testing.T) {
		actual := typicalModel()
		showOnly(actual, testutil.ModuleName1)
		cmd := command.EditModule{Index: command.IndexFromOneBased(2), Name: "CS9999"}
		commandtest.AssertCommandFailure(t, cmd, actual, command.MessageInvalidModuleIndex)
	})
}

func TestDeleteModule(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actual := typicalModel()
		expected := typicalModel()
		target := expected.FilteredModules()[1]
		_ = expected.DeleteModule(target)

		cmd := command.DeleteModule{Index: command.IndexFromOneBased(2)}
		commandtest.AssertCommandSuccessMessage(t, cmd, actual, fmt.Sprintf(command.DeleteModuleSuccess, testutil.ModuleName1), expected)
	})

	t.Run("invalid index", func(t *testing.T) {
		cmd := command.DeleteModule{Index: command.IndexFromOneBased(3)}
		commandtest.AssertCommandFailure(t, cmd, typicalModel(), command.MessageInvalidModuleIndex)
	})
}

func TestIndex(t *testing.T) {
	idx := command.IndexFromOneBased(3)
	if idx.ZeroBased() != 2 || idx.OneBased() != 3 {
		t.Fatalf("unexpected index %+v", idx)
	}
	if command.IndexFromZeroBased(2) != idx {
		t.Fatal("zero- and one-based constructors disagree")
	}
}
