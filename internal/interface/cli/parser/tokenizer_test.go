package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("no prefixes", func(t *testing.T) {
		am := Tokenize("  some random string /t tag with leading and trailing spaces ", PrefixName)
		assert.Equal(t, "some random string /t tag with leading and trailing spaces", am.Preamble())
		assert.False(t, am.ArePrefixesPresent(PrefixName))
	})

	t.Run("single prefix", func(t *testing.T) {
		am := Tokenize(" Some preamble string n/ Argument value ", PrefixName)
		assert.Equal(t, "Some preamble string", am.Preamble())
		v, ok := am.Value(PrefixName)
		assert.True(t, ok)
		assert.Equal(t, "Argument value", v)
	})

	t.Run("repeated prefix keeps all, last wins", func(t *testing.T) {
		am := Tokenize(" m/CS2103T n/Amy n/Bob", PrefixModuleName, PrefixName)
		assert.Equal(t, []string{"Amy", "Bob"}, am.AllValues(PrefixName))
		v, _ := am.Value(PrefixName)
		assert.Equal(t, "Bob", v)
		assert.Empty(t, am.Preamble())
	})

	t.Run("prefix must follow whitespace", func(t *testing.T) {
		am := Tokenize(" a/Part/t/2 t/@handle", PrefixTaskName, PrefixTeleHandle)
		v, _ := am.Value(PrefixTaskName)
		assert.Equal(t, "Part/t/2", v)
		v, _ = am.Value(PrefixTeleHandle)
		assert.Equal(t, "@handle", v)
	})

	t.Run("similar prefixes stay apart", func(t *testing.T) {
		am := Tokenize(" ti/T1 t/@handle", PrefixTaskID, PrefixTeleHandle)
		v, _ := am.Value(PrefixTaskID)
		assert.Equal(t, "T1", v)
		v, _ = am.Value(PrefixTeleHandle)
		assert.Equal(t, "@handle", v)
	})

	t.Run("empty value", func(t *testing.T) {
		am := Tokenize(" n/ m/CS2101", PrefixName, PrefixModuleName)
		v, ok := am.Value(PrefixName)
		assert.True(t, ok)
		assert.Empty(t, v)
	})
}
