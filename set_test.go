package cssprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassSet_Diff(t *testing.T) {
	defined := NewClassSet("btn", "card", "unused-box")
	used := NewClassSet("btn", "card", "not-even-defined")

	unused := defined.Diff(used)
	assert.Equal(t, []string{"unused-box"}, unused.Sorted())
}

func TestClassSet_SortedIsDeterministic(t *testing.T) {
	s := NewClassSet("c", "a", "b", "a")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	assert.Equal(t, 3, s.Len())
}
