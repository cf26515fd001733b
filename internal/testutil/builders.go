// Package testutil provides builders and fixtures shared by tests across packages.
package testutil

import (
	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// Valid field values used by command and parser tests.
const (
	ValidNameAmy       = "Amy Bee"
	ValidNameBob       = "Bob Choo"
	ValidStudentIDAmy  = "A1111111A"
	ValidStudentIDBob  = "A2222222A"
	ValidEmailAmy      = "amy@example.com"
	ValidEmailBob      = "bob@example.com"
	ValidTeleHandleAmy = "@AmyBee"
	ValidTeleHandleBob = "@bobchoo"

	ValidModuleName = "MA1521"
	ValidTaskID     = "T9"
	ValidTaskName   = "Lab Report"
	ValidDeadline   = "2021-11-15"
)

// Names of the modules in TypicalBuddy.
const (
	ModuleName0 = "CS2103T"
	ModuleName1 = "CS2101"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// StudentBuilder builds students with sensible defaults.
type StudentBuilder struct {
	s student.Student
}

// NewStudentBuilder starts from a default student.
func NewStudentBuilder() *StudentBuilder {
	return &StudentBuilder{s: student.Student{
		Name:       "Default Student",
		ID:         "A0000000Z",
		Email:      "default@example.com",
		TeleHandle: "@default",
	}}
}

// StudentBuilderFrom starts from a copy of s.
func StudentBuilderFrom(s *student.Student) *StudentBuilder {
	return &StudentBuilder{s: *s.Clone()}
}

func (b *StudentBuilder) WithName(v string) *StudentBuilder {
	b.s.Name = student.Name(v)
	return b
}

func (b *StudentBuilder) WithID(v string) *StudentBuilder {
	b.s.ID = student.ID(v)
	return b
}

func (b *StudentBuilder) WithEmail(v string) *StudentBuilder {
	b.s.Email = student.Email(v)
	return b
}

func (b *StudentBuilder) WithTeleHandle(v string) *StudentBuilder {
	b.s.TeleHandle = student.TeleHandle(v)
	return b
}

// WithCompleted marks the given tasks as done.
func (b *StudentBuilder) WithCompleted(ids ...string) *StudentBuilder {
	s := &b.s
	for _, id := range ids {
		s = s.WithCompleted(task.ID(id))
	}
	b.s = *s
	return b
}

// Build returns a fresh copy of the built student.
func (b *StudentBuilder) Build() *student.Student {
	return b.s.Clone()
}

// ══════════════════════════════════════════════════════════════════════════════
// TASK BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// TaskBuilder builds tasks with sensible defaults.
type TaskBuilder struct {
	t task.Task
}

// NewTaskBuilder starts from a default task.
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{t: task.Task{
		ID:       "T1",
		Name:     "Default Task",
		Deadline: deadline("2021-10-20"),
	}}
}

func (b *TaskBuilder) WithID(v string) *TaskBuilder {
	b.t.ID = task.ID(v)
	return b
}

func (b *TaskBuilder) WithName(v string) *TaskBuilder {
	b.t.Name = task.Name(v)
	return b
}

func (b *TaskBuilder) WithDeadline(v string) *TaskBuilder {
	b.t.Deadline = deadline(v)
	return b
}

// Build returns a fresh copy of the built task.
func (b *TaskBuilder) Build() *task.Task {
	return b.t.Clone()
}

// ══════════════════════════════════════════════════════════════════════════════
// MODULE BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// ModuleBuilder builds modules.
type ModuleBuilder struct {
	m *module.Module
}

// NewModuleBuilder starts from an empty module with the given name.
func NewModuleBuilder(name string) *ModuleBuilder {
	return &ModuleBuilder{m: module.New(module.Name(name))}
}

// ModuleBuilderFrom starts from a copy of m.
func ModuleBuilderFrom(m *module.Module) *ModuleBuilder {
	return &ModuleBuilder{m: m.Clone()}
}

func (b *ModuleBuilder) WithName(v string) *ModuleBuilder {
	b.m.Name = module.Name(v)
	return b
}

func (b *ModuleBuilder) WithStudents(students ...*student.Student) *ModuleBuilder {
	for _, s := range students {
		b.m.Students = append(b.m.Students, s.Clone())
	}
	return b
}

func (b *ModuleBuilder) WithTasks(tasks ...*task.Task) *ModuleBuilder {
	for _, t := range tasks {
		b.m.Tasks = append(b.m.Tasks, t.Clone())
	}
	return b
}

// Build returns a fresh copy of the built module.
func (b *ModuleBuilder) Build() *module.Module {
	return b.m.Clone()
}

// ══════════════════════════════════════════════════════════════════════════════
// TYPICAL DATA
// ══════════════════════════════════════════════════════════════════════════════

// Typical students.
func Alice() *student.Student {
	return NewStudentBuilder().WithName("Alice Pauline").WithID("A0000001B").
		WithEmail("alice@example.com").WithTeleHandle("@alice_p").WithCompleted("T1").Build()
}

func Benson() *student.Student {
	return NewStudentBuilder().WithName("Benson Meier").WithID("A0000002C").
		WithEmail("johnd@example.com").WithTeleHandle("@benson_m").Build()
}

func Carl() *student.Student {
	return NewStudentBuilder().WithName("Carl Kurz").WithID("A0000003D").
		WithEmail("heinz@example.com").WithTeleHandle("@carlkurz").Build()
}

// Amy and Bob are built from the Valid* constants and are not in TypicalBuddy.
func Amy() *student.Student {
	return NewStudentBuilder().WithName(ValidNameAmy).WithID(ValidStudentIDAmy).
		WithEmail(ValidEmailAmy).WithTeleHandle(ValidTeleHandleAmy).Build()
}

func Bob() *student.Student {
	return NewStudentBuilder().WithName(ValidNameBob).WithID(ValidStudentIDBob).
		WithEmail(ValidEmailBob).WithTeleHandle(ValidTeleHandleBob).Build()
}

// Typical tasks.
func Task1() *task.Task {
	return NewTaskBuilder().WithID("T1").WithName("Individual Project").WithDeadline("2021-10-01").Build()
}

func Task2() *task.Task {
	return NewTaskBuilder().WithID("T2").WithName("Team Project").WithDeadline("2021-11-08").Build()
}

// TypicalModules returns CS2103T with Alice, Benson and two tasks, then CS2101 with Carl.
func TypicalModules() []*module.Module {
	return []*module.Module{
		NewModuleBuilder(ModuleName0).WithStudents(Alice(), Benson()).WithTasks(Task1(), Task2()).Build(),
		NewModuleBuilder(ModuleName1).WithStudents(Carl()).Build(),
	}
}

// TypicalBuddy returns an aggregate holding TypicalModules.
func TypicalBuddy() *buddy.Buddy {
	b := buddy.New()
	for _, m := range TypicalModules() {
		if err := b.AddModule(m); err != nil {
			panic(err)
		}
	}
	return b
}

func deadline(s string) task.Deadline {
	d, err := task.NewDeadline(s)
	if err != nil {
		panic(err)
	}
	return d
}
