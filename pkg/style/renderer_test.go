// Test Type: Unit Test
// Description: Result rendering in plain, styled and structured formats

package style

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func installResult() *types.Result {
	return &types.Result{
		Command: types.CommandInstall,
		Copied: []string{
			"/app/app/Models/Order.php",
			"/app/app/Models/Invoice.php",
			"/app/config/shop.php",
		},
		Skipped: []string{"/app/config/other.php"},
		Removed: []string{},
		Env: []types.EnvFileResult{
			{Path: "/app/.env", Keys: []string{"A", "B"}, Ambiguous: []int{3}},
			{Path: "/app/.env.example", Keys: []string{}, Missing: true},
		},
		Routes: &types.RouteResult{Path: "/app/routes/api.php", Present: true, Inserted: true},
	}
}

func TestPlainRenderer_Install(t *testing.T) {
	got := NewPlainRenderer("/app").RenderResult(installResult())

	expected := "Copying files:\n" +
		"  Copied 2 file(s) to app/Models/\n" +
		"  Copied 1 file(s) to config/\n" +
		"  Skipped 1 existing file(s), run update to overwrite\n" +
		"\n" +
		"Environment:\n" +
		"  .env: added 2 key(s): A, B\n" +
		"  warning: .env line 3 could not be parsed and was left untouched\n" +
		"  .env.example not found, skipped\n" +
		"\n" +
		"Routes:\n" +
		"  routes/api.php: route block added\n"
	assert.Equal(t, expected, got)
}

func TestPlainRenderer_Uninstall(t *testing.T) {
	result := &types.Result{
		Command: types.CommandUninstall,
		Removed: []string{"/app/app/Models/Order.php"},
		Env:     []types.EnvFileResult{{Path: "/app/.env", Keys: []string{}}},
		Routes:  &types.RouteResult{Path: "/app/routes/api.php", Removed: true},
	}

	got := NewPlainRenderer("/app").RenderResult(result)

	expected := "Removing files:\n" +
		"  Removed 1 file(s) from app/Models/\n" +
		"\n" +
		"Environment:\n" +
		"  .env already up to date\n" +
		"\n" +
		"Routes:\n" +
		"  routes/api.php: route block removed\n"
	assert.Equal(t, expected, got)
}

func TestPlainRenderer_NothingToDo(t *testing.T) {
	result := &types.Result{Command: types.CommandUpdate}

	got := NewPlainRenderer("/app").RenderResult(result)
	assert.Equal(t, "Copying files:\n  No files to copy\n", got)
}

func TestTerminalRenderer(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	got := NewTerminalRenderer("/app").RenderResult(installResult())

	assert.Contains(t, got, "Copying files")
	assert.Contains(t, got, "✓ Copied 2 file(s) to app/Models/")
	assert.Contains(t, got, "! .env line 3 could not be parsed")
	assert.Contains(t, got, "○ .env.example not found, skipped")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "cannot write /app/.env").
		WithDetail("path", "/app/.env")

	plain := NewPlainRenderer("/app").RenderError(err)
	assert.Equal(t, "Error: [FILE_WRITE] cannot write /app/.env\n  path=/app/.env\n", plain)

	assert.Equal(t, "Error: boom\n", NewPlainRenderer("/app").RenderError(fmt.Errorf("boom")))
	assert.Empty(t, NewTerminalRenderer("/app").RenderError(nil))
}

func TestRenderStructured(t *testing.T) {
	result := installResult()

	t.Run("json", func(t *testing.T) {
		out, err := RenderStructured(result, FormatJSON)
		require.NoError(t, err)

		var decoded types.Result
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, *result, decoded)
		assert.Contains(t, out, `"command": "install"`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := RenderStructured(result, FormatYAML)
		require.NoError(t, err)

		var decoded types.Result
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, *result, decoded)
		assert.Contains(t, out, "command: install")
	})

	t.Run("text_is_rejected", func(t *testing.T) {
		_, err := RenderStructured(result, FormatText)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"TEXT", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			if tt.input != "" {
				assert.NotEqual(t, "unknown", got.String())
			}
		})
	}
}
