package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

func newStudent(id student.ID) *student.Student {
	return student.New("Amy Bee", id, "amy@example.com", "@AmyBee")
}

func newTask(t *testing.T, id task.ID) *task.Task {
	t.Helper()
	d, err := task.NewDeadline("2021-10-20")
	require.NoError(t, err)
	return task.New(id, "Assignment", d)
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("CS2103T"))
	assert.True(t, IsValidName("cs2101"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("CS 2103"))
	assert.False(t, IsValidName("modulE@"))

	_, err := NewName("modulE@")
	require.Error(t, err)
	assert.Equal(t, MessageConstraintsName, shared.MessageOf(err))
}

func TestModule_IsSame_CaseInsensitive(t *testing.T) {
	a := New("CS2103T")
	b := New("cs2103t")

	assert.True(t, a.IsSame(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.IsSame(New("CS2101")))
}

func TestModule_Students(t *testing.T) {
	m := New("CS2103T")
	require.NoError(t, m.AddStudent(newStudent("A1111111A")))
	require.NoError(t, m.AddStudent(newStudent("A2222222A")))

	err := m.AddStudent(newStudent("A1111111A"))
	assert.ErrorIs(t, err, ErrDuplicateStudent)
	assert.True(t, shared.IsAlreadyExists(err))

	edited := newStudent("A3333333A")
	require.NoError(t, m.SetStudent("A1111111A", edited))
	_, ok := m.FindStudent("A1111111A")
	assert.False(t, ok)
	got, ok := m.FindStudent("A3333333A")
	require.True(t, ok)
	assert.Same(t, edited, got)
	assert.Equal(t, student.ID("A3333333A"), m.Students[0].ID, "order is preserved")

	assert.ErrorIs(t, m.SetStudent("A3333333A", newStudent("A2222222A")), ErrDuplicateStudent)
	assert.ErrorIs(t, m.SetStudent("A9999999Z", edited), ErrStudentNotFound)

	require.NoError(t, m.RemoveStudent("A2222222A"))
	assert.Len(t, m.Students, 1)
	assert.True(t, shared.IsNotFound(m.RemoveStudent("A2222222A")))
}

func TestModule_RemoveTaskClearsCompletions(t *testing.T) {
	m := New("CS2103T")
	require.NoError(t, m.AddTask(newTask(t, "T1")))
	require.NoError(t, m.AddTask(newTask(t, "T2")))
	assert.ErrorIs(t, m.AddTask(newTask(t, "T1")), ErrDuplicateTask)

	require.NoError(t, m.AddStudent(newStudent("A1111111A").WithCompleted("T1").WithCompleted("T2")))
	require.NoError(t, m.AddStudent(newStudent("A2222222A").WithCompleted("T1")))
	assert.Equal(t, 2, m.CompletionCount("T1"))

	require.NoError(t, m.RemoveTask("T1"))
	assert.Equal(t, 0, m.CompletionCount("T1"))
	assert.Equal(t, []task.ID{"T2"}, m.Students[0].CompletedTasks)
	assert.Nil(t, m.Students[1].CompletedTasks)

	_, ok := m.FindTask("T1")
	assert.False(t, ok)
	assert.ErrorIs(t, m.RemoveTask("T1"), ErrTaskNotFound)
}

func TestModule_CloneIsDeep(t *testing.T) {
	m := New("CS2103T")
	require.NoError(t, m.AddStudent(newStudent("A1111111A")))
	require.NoError(t, m.AddTask(newTask(t, "T1")))

	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Students[0].Name = "Changed"
	c.Tasks[0].Name = "Changed"
	assert.Equal(t, student.Name("Amy Bee"), m.Students[0].Name)
	assert.Equal(t, task.Name("Assignment"), m.Tasks[0].Name)
	assert.False(t, m.Equal(c))
}

func TestNameContainsKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		module   Name
		want     bool
	}{
		{"exact", []string{"CS2103T"}, "CS2103T", true},
		{"partial", []string{"2103"}, "CS2103T", true},
		{"mixed case", []string{"cs2103t"}, "CS2103T", true},
		{"one of many", []string{"MA1521", "CS"}, "CS2101", true},
		{"no match", []string{"MA1521"}, "CS2101", false},
		{"no keywords", nil, "CS2101", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NameContainsKeywords{Keywords: tt.keywords}
			assert.Equal(t, tt.want, p.Test(New(tt.module)))
		})
	}
	assert.True(t, ShowAll(New("X")))
}
