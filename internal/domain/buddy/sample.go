package buddy

import (
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/student"
	"github.com/tabuddy/tabuddy/internal/domain/task"
)

// SampleData returns the aggregate shown on first start, before anything was saved.
func SampleData() *Buddy {
	b := New()
	for _, m := range sampleModules() {
		_ = b.AddModule(m)
	}
	return b
}

func sampleModules() []*module.Module {
	cs2103t := module.New("CS2103T")
	cs2103t.Tasks = []*task.Task{
		task.New("T1", "Individual Project", mustDeadline("2021-10-01")),
		task.New("T2", "Team Project v1", mustDeadline("2021-10-25")),
	}
	cs2103t.Students = []*student.Student{
		student.New("Alex Yeoh", "A0123456B", "alexyeoh@example.com", "@alexyeoh").WithCompleted("T1"),
		student.New("Bernice Yu", "A0234567C", "berniceyu@example.com", "@berniceyu"),
		student.New("Charlotte Oliveiro", "A0345678D", "charlotte@example.com", "@charlotte_o").
			WithCompleted("T1").WithCompleted("T2"),
	}

	cs2101 := module.New("CS2101")
	cs2101.Tasks = []*task.Task{
		task.New("T1", "Oral Presentation", mustDeadline("2021-11-03")),
	}
	cs2101.Students = []*student.Student{
		student.New("David Li", "A0456789E", "lidavid@example.com", "@davidli"),
		student.New("Irfan Ibrahim", "A0567890F", "irfan@example.com", "@irfan_ib"),
	}

	return []*module.Module{cs2103t, cs2101}
}

func mustDeadline(s string) task.Deadline {
	d, err := task.NewDeadline(s)
	if err != nil {
		panic(err)
	}
	return d
}
