package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDOT(t *testing.T) {
	g := Build(testCatalog())
	dot := g.ToDOT()

	assert.True(t, strings.HasPrefix(dot, "digraph infragraph {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"cable:atl1"`)
	assert.Contains(t, dot, `"cable:atl1" -> "country:US"`)

	assert.Equal(t, dot, g.ToDOT(), "DOT output must be stable across calls")
}
