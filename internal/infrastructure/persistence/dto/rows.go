package dto

// Rows is the aggregate flattened into relational tables. Positions keep list order.
type Rows struct {
	Modules     []ModuleRow
	Students    []StudentRow
	Tasks       []TaskRow
	Completions []CompletionRow
}

// ModuleRow is one row of the modules table.
type ModuleRow struct {
	Position int
	Name     string
}

// StudentRow is one row of the students table.
type StudentRow struct {
	Module     string
	Position   int
	StudentID  string
	Name       string
	Email      string
	TeleHandle string
}

// TaskRow is one row of the tasks table.
type TaskRow struct {
	Module   string
	Position int
	TaskID   string
	Name     string
	Deadline string
}

// CompletionRow records that a student finished a task.
type CompletionRow struct {
	Module    string
	StudentID string
	TaskID    string
}

// Flatten splits the document into rows.
func (d Buddy) Flatten() Rows {
	var r Rows
	for i, m := range d.Modules {
		r.Modules = append(r.Modules, ModuleRow{Position: i, Name: m.Name})
		for j, s := range m.Students {
			r.Students = append(r.Students, StudentRow{
				Module:     m.Name,
				Position:   j,
				StudentID:  s.StudentID,
				Name:       s.Name,
				Email:      s.Email,
				TeleHandle: s.TeleHandle,
			})
			for _, tid := range s.CompletedTasks {
				r.Completions = append(r.Completions, CompletionRow{Module: m.Name, StudentID: s.StudentID, TaskID: tid})
			}
		}
		for j, t := range m.Tasks {
			r.Tasks = append(r.Tasks, TaskRow{
				Module:   m.Name,
				Position: j,
				TaskID:   t.ID,
				Name:     t.Name,
				Deadline: t.Deadline,
			})
		}
	}
	return r
}

// Assemble rebuilds the document. Rows must already be ordered by position;
// rows referring to unknown modules or students are dropped.
func (r Rows) Assemble() Buddy {
	d := Buddy{Modules: make([]Module, 0, len(r.Modules))}
	moduleIdx := make(map[string]int, len(r.Modules))
	for _, m := range r.Modules {
		moduleIdx[m.Name] = len(d.Modules)
		d.Modules = append(d.Modules, Module{Name: m.Name})
	}

	type studentKey struct{ module, id string }
	studentIdx := make(map[studentKey]int)
	for _, s := range r.Students {
		mi, ok := moduleIdx[s.Module]
		if !ok {
			continue
		}
		studentIdx[studentKey{s.Module, s.StudentID}] = len(d.Modules[mi].Students)
		d.Modules[mi].Students = append(d.Modules[mi].Students, Student{
			Name:       s.Name,
			StudentID:  s.StudentID,
			Email:      s.Email,
			TeleHandle: s.TeleHandle,
		})
	}
	for _, t := range r.Tasks {
		mi, ok := moduleIdx[t.Module]
		if !ok {
			continue
		}
		d.Modules[mi].Tasks = append(d.Modules[mi].Tasks, Task{ID: t.TaskID, Name: t.Name, Deadline: t.Deadline})
	}
	for _, c := range r.Completions {
		mi, ok := moduleIdx[c.Module]
		if !ok {
			continue
		}
		si, ok := studentIdx[studentKey{c.Module, c.StudentID}]
		if !ok {
			continue
		}
		s := &d.Modules[mi].Students[si]
		s.CompletedTasks = append(s.CompletedTasks, c.TaskID)
	}
	return d
}
