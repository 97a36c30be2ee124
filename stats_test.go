package cssprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	content := `
.btn { color: red; background: blue; }
.card:hover { color: green; }
@media (min-width: 600px) {
  .wide { display: block; }
}
div .inner { margin: 0; }
`

	stats := Stats(content)

	// The @media wrapper block is not a rule; the .wide rule inside it is
	assert.Equal(t, 4, stats.Rules)
	assert.Equal(t, 5, stats.Declarations)
	// Unlike the extraction regexes, the lexer sees .inner in descendant
	// position too
	assert.Equal(t, 4, stats.ClassSelectors)
}

func TestStats_CommentsDoNotCount(t *testing.T) {
	stats := Stats(`/* .ghost { display: none; } */`)
	assert.Equal(t, 0, stats.Rules)
	assert.Equal(t, 0, stats.ClassSelectors)
}

func TestStats_Empty(t *testing.T) {
	assert.Equal(t, StylesheetStats{}, Stats(""))
}

func TestStats_DuplicateSelectorsCollapse(t *testing.T) {
	stats := Stats(".btn { color: red; }\n.btn { color: blue; }")
	assert.Equal(t, 2, stats.Rules)
	assert.Equal(t, 1, stats.ClassSelectors)
}
