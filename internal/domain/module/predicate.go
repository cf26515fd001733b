package module

import "strings"

// Predicate selects modules for the filtered view.
type Predicate func(*Module) bool

// ShowAll matches every module.
func ShowAll(*Module) bool { return true }

// NameContainsKeywords matches modules whose name contains any of the keywords, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

// Test applies the predicate to m.
func (p NameContainsKeywords) Test(m *Module) bool {
	name := strings.ToLower(string(m.Name))
	for _, kw := range p.Keywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
