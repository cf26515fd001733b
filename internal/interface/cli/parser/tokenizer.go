package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArgumentMultimap maps each prefix to the values given for it, in input order.
// Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return a.values[p]
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// ArePrefixesPresent reports whether every prefix has at least one value.
func (a ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it starts
// the string or follows whitespace, so "t/" inside "a/Part/t/2" is kept as text.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	result := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	result.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		result.values[pos.prefix] = append(result.values[pos.prefix], value)
	}
	return result
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if precededBySpace(args, at) {
				positions = append(positions, prefixPosition{prefix: p, start: at})
			}
			from = at + len(p)
		}
	}
	return positions
}

func precededBySpace(s string, at int) bool {
	if at == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:at])
	return unicode.IsSpace(r)
}
