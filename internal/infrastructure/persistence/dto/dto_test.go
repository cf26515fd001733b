package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	original := testutil.TypicalBuddy()

	got, err := FromDomain(original).ToDomain()
	require.NoError(t, err)
	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(FromDomain(testutil.TypicalBuddy()))
	require.NoError(t, err)

	for _, key := range []string{`"modules"`, `"students"`, `"tasks"`, `"studentId"`, `"teleHandle"`, `"completedTasks"`, `"deadline"`} {
		assert.Contains(t, string(data), key)
	}
}

func validStudent() Student {
	return Student{Name: "Amy Bee", StudentID: "A1111111A", Email: "amy@example.com", TeleHandle: "@AmyBee"}
}

func TestStudentToDomain_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Student)
		want   string
	}{
		{"missing name", func(s *Student) { s.Name = "" }, "Student's name field is missing!"},
		{"missing id", func(s *Student) { s.StudentID = "" }, "Student's studentId field is missing!"},
		{"missing email", func(s *Student) { s.Email = "" }, "Student's email field is missing!"},
		{"missing handle", func(s *Student) { s.TeleHandle = "" }, "Student's teleHandle field is missing!"},
		{"invalid name", func(s *Student) { s.Name = "James&" }, student.MessageConstraintsName},
		{"invalid id", func(s *Student) { s.StudentID = "1234567" }, student.MessageConstraintsID},
		{"invalid email", func(s *Student) { s.Email = "bob!yahoo" }, student.MessageConstraintsEmail},
		{"invalid handle", func(s *Student) { s.TeleHandle = "teleHandle" }, student.MessageConstraintsTeleHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			tt.mutate(&s)
			_, err := s.ToDomain()
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, tt.want, shared.MessageOf(err))
		})
	}
}

func TestModuleToDomain_Errors(t *testing.T) {
	_, err := Module{}.ToDomain()
	assert.Equal(t, "Module's name field is missing!", shared.MessageOf(err))

	dup := Module{Name: "CS2103T", Students: []Student{validStudent(), validStudent()}}
	_, err = dup.ToDomain()
	assert.Equal(t, "Module CS2103T contains duplicate student(s).", shared.MessageOf(err))

	stray := validStudent()
	stray.CompletedTasks = []string{"T5"}
	_, err = Module{Name: "CS2103T", Students: []Student{stray}}.ToDomain()
	assert.Equal(t, "Student A1111111A in module CS2103T completed unknown task T5.", shared.MessageOf(err))

	_, err = Module{Name: "CS2103T", Tasks: []Task{{ID: "T1", Name: "Quiz"}}}.ToDomain()
	assert.Equal(t, "Task's deadline field is missing!", shared.MessageOf(err))
}

func TestBuddyToDomain_DuplicateModules(t *testing.T) {
	_, err := Buddy{Modules: []Module{{Name: "CS2103T"}, {Name: "cs2103t"}}}.ToDomain()
	assert.Equal(t, MessageDuplicateModule, shared.MessageOf(err))
}

func TestRows_FlattenAndAssemble(t *testing.T) {
	doc := FromDomain(testutil.TypicalBuddy())
	rows := doc.Flatten()

	assert.Len(t, rows.Modules, 2)
	assert.Len(t, rows.Students, 3)
	assert.Len(t, rows.Tasks, 2)
	assert.Equal(t, []CompletionRow{{Module: testutil.ModuleName0, StudentID: "A0000001B", TaskID: "T1"}}, rows.Completions)

	got, err := rows.Assemble().ToDomain()
	require.NoError(t, err)
	assert.True(t, testutil.TypicalBuddy().Equal(got))
}

func TestRows_AssembleDropsOrphans(t *testing.T) {
	rows := Rows{
		Modules:     []ModuleRow{{Position: 0, Name: "CS2103T"}},
		Students:    []StudentRow{{Module: "CS9999", StudentID: "A1111111A"}},
		Completions: []CompletionRow{{Module: "CS2103T", StudentID: "A1111111A", TaskID: "T1"}},
	}
	doc := rows.Assemble()
	require.Len(t, doc.Modules, 1)
	assert.Empty(t, doc.Modules[0].Students)
}
