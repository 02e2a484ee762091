package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	a, err := Open(path)
	require.NoError(t, err)

	a.Log("download requested: report.pdf from 10.0.0.7")
	a.Log("redirect to: http://evil.example from 10.0.0.7")
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	line := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z (.*)$`)
	m := line.FindStringSubmatch(lines[0])
	require.NotNil(t, m, lines[0])
	assert.Equal(t, "download requested: report.pdf from 10.0.0.7", m[1])
	assert.Regexp(t, line, lines[1])
}

func TestLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	require.NoError(t, os.WriteFile(path, []byte("2024-01-01T00:00:00.000Z earlier\n"), 0o644))

	a, err := Open(path)
	require.NoError(t, err)
	a.Log("later")
	require.NoError(t, a.Close())

	lines, err := Tail(path, 200)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " later"))
	assert.Equal(t, "2024-01-01T00:00:00.000Z earlier", lines[1])
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	t.Run("missing file", func(t *testing.T) {
		_, err := Tail(path, 200)
		assert.Error(t, err)
	})

	t.Run("window counts the trailing empty element", func(t *testing.T) {
		var b strings.Builder
		for i := 1; i <= 250; i++ {
			fmt.Fprintf(&b, "line %d\n", i)
		}
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

		lines, err := Tail(path, 200)
		require.NoError(t, err)
		assert.Len(t, lines, 199)
		assert.Equal(t, "line 250", lines[0])
		assert.Equal(t, "line 52", lines[198])
	})
}
