// Test Type: Unit Test
// Description: Borderless column layout for listings

package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTable(
		[]string{"CATEGORY", "TARGET"},
		[][]string{
			{"config/", "config/"},
			{"controllers/", "app/Http/Controllers/"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"CATEGORY", "TARGET"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"config/", "config/"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"controllers/", "app/Http/Controllers/"}, strings.Fields(lines[2]))

	// second column starts at the same offset on every line
	col := strings.Index(lines[0], "TARGET")
	assert.Equal(t, col, strings.Index(lines[2], "app/Http/Controllers/"))
	assert.Equal(t, col, strings.LastIndex(lines[1], "config/"))
}

func TestRenderTable_NoRows(t *testing.T) {
	assert.Empty(t, RenderTable([]string{"CATEGORY"}, nil))
}
