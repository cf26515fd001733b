// Package model holds the in-memory state commands operate on: the aggregate
// and the filtered view of its modules.
package model

import (
	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/domain/module"
)

// PredicateShowAll is the filter that shows every module.
var PredicateShowAll module.Predicate = module.ShowAll

// Model is the state API available to commands.
type Model interface {
	// Buddy returns the aggregate. Callers must not mutate it directly.
	Buddy() *buddy.Buddy

	// SetBuddy replaces the aggregate contents with a copy of b.
	SetBuddy(b *buddy.Buddy)

	HasModule(m *module.Module) bool
	FindModule(name module.Name) (*module.Module, bool)

	// AddModule appends m and resets the filter to show all modules.
	AddModule(m *module.Module) error
	DeleteModule(m *module.Module) error
	SetModule(target, edited *module.Module) error

	// FilteredModules returns the modules matching the current filter, in order.
	FilteredModules() []*module.Module

	// UpdateFilteredModules replaces the current filter.
	UpdateFilteredModules(p module.Predicate)

	// Filter returns the current filter.
	Filter() module.Predicate
}

// Manager is the default Model.
type Manager struct {
	buddy  *buddy.Buddy
	filter module.Predicate
}

// NewManager returns a manager over a copy of b.
func NewManager(b *buddy.Buddy) *Manager {
	return &Manager{
		buddy:  buddy.NewFrom(b),
		filter: PredicateShowAll,
	}
}

// Buddy implements Model.
func (m *Manager) Buddy() *buddy.Buddy { return m.buddy }

// SetBuddy implements Model.
func (m *Manager) SetBuddy(b *buddy.Buddy) {
	m.buddy.ResetData(b)
}

// HasModule implements Model.
func (m *Manager) HasModule(mod *module.Module) bool {
	return m.buddy.HasModule(mod)
}

// FindModule implements Model.
func (m *Manager) FindModule(name module.Name) (*module.Module, bool) {
	return m.buddy.FindModule(name)
}

// AddModule implements Model.
func (m *Manager) AddModule(mod *module.Module) error {
	if err := m.buddy.AddModule(mod); err != nil {
		return err
	}
	m.UpdateFilteredModules(PredicateShowAll)
	return nil
}

// DeleteModule implements Model.
func (m *Manager) DeleteModule(mod *module.Module) error {
	return m.buddy.RemoveModule(mod)
}

// SetModule implements Model.
func (m *Manager) SetModule(target, edited *module.Module) error {
	return m.buddy.SetModule(target, edited)
}

// FilteredModules implements Model.
func (m *Manager) FilteredModules() []*module.Module {
	var out []*module.Module
	for _, mod := range m.buddy.Modules() {
		if m.filter(mod) {
			out = append(out, mod)
		}
	}
	return out
}

// UpdateFilteredModules implements Model.
func (m *Manager) UpdateFilteredModules(p module.Predicate) {
	if p == nil {
		p = PredicateShowAll
	}
	m.filter = p
}

// Filter implements Model.
func (m *Manager) Filter() module.Predicate { return m.filter }

// Equal reports whether both managers hold equal aggregates and show the same modules.
func (m *Manager) Equal(other *Manager) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.buddy.Equal(other.buddy) && equalModules(m.FilteredModules(), other.FilteredModules())
}

func equalModules(a, b []*module.Module) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
