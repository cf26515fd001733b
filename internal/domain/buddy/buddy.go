// Package buddy contains the root aggregate: the ordered collection of every
// module the teaching assistant tracks.
package buddy

import (
	"slices"
	"strings"

	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/shared"
)

// Aggregate errors.
var (
	ErrDuplicateModule = shared.NewDomainError("buddy", "AddModule", shared.ErrAlreadyExists, "module already exists")
	ErrModuleNotFound  = shared.NewDomainError("buddy", "FindModule", shared.ErrNotFound, "module not found")
)

// Buddy holds an ordered list of modules with unique names.
type Buddy struct {
	modules []*module.Module
}

// New returns an empty aggregate.
func New() *Buddy {
	return &Buddy{}
}

// NewFrom returns a deep copy of other.
func NewFrom(other *Buddy) *Buddy {
	b := New()
	if other != nil {
		b.ResetData(other)
	}
	return b
}

// Modules returns the modules in insertion order. Callers must not modify the slice.
func (b *Buddy) Modules() []*module.Module {
	return b.modules
}

// HasModule reports whether a module with the same name exists.
func (b *Buddy) HasModule(m *module.Module) bool {
	return b.index(m.Name) >= 0
}

// FindModule returns the module with the given name (case-insensitive).
func (b *Buddy) FindModule(name module.Name) (*module.Module, bool) {
	i := b.index(name)
	if i < 0 {
		return nil, false
	}
	return b.modules[i], true
}

// AddModule appends m. The module must not already exist.
func (b *Buddy) AddModule(m *module.Module) error {
	if b.HasModule(m) {
		return ErrDuplicateModule
	}
	b.modules = append(b.modules, m)
	return nil
}

// SetModule replaces target with edited. The edited module may be renamed
// as long as the new name is not taken by another module.
func (b *Buddy) SetModule(target, edited *module.Module) error {
	i := slices.Index(b.modules, target)
	if i < 0 {
		i = b.index(target.Name)
	}
	if i < 0 {
		return ErrModuleNotFound
	}
	if j := b.index(edited.Name); j >= 0 && j != i {
		return ErrDuplicateModule
	}
	b.modules[i] = edited
	return nil
}

// RemoveModule deletes the module with the same name as m.
func (b *Buddy) RemoveModule(m *module.Module) error {
	i := b.index(m.Name)
	if i < 0 {
		return ErrModuleNotFound
	}
	b.modules = slices.Delete(b.modules, i, i+1)
	return nil
}

// ResetData replaces all modules with deep copies of other's.
func (b *Buddy) ResetData(other *Buddy) {
	modules := make([]*module.Module, 0, len(other.modules))
	for _, m := range other.modules {
		modules = append(modules, m.Clone())
	}
	b.modules = modules
}

// Equal compares both aggregates module by module.
func (b *Buddy) Equal(other *Buddy) bool {
	if b == nil || other == nil {
		return b == other
	}
	return slices.EqualFunc(b.modules, other.modules, (*module.Module).Equal)
}

func (b *Buddy) String() string {
	names := make([]string, len(b.modules))
	for i, m := range b.modules {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func (b *Buddy) index(name module.Name) int {
	return slices.IndexFunc(b.modules, func(m *module.Module) bool { return m.Name.Matches(name) })
}
