package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("db", "", "")
	c.Flags().String("curriculum", "", "")
	return c
}

func TestResolveDBPathFlagWins(t *testing.T) {
	t.Setenv("PYTUTOR_DB", "/should/not/be/used.db")

	c := testCommand()
	want := filepath.Join(t.TempDir(), "nested", "flag.db")
	require.NoError(t, c.Flags().Set("db", want))

	got, err := resolveDBPath(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The parent directory is created eagerly.
	_, err = os.Stat(filepath.Dir(want))
	assert.NoError(t, err)
}

func TestResolveDBPathEnvFallback(t *testing.T) {
	want := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("PYTUTOR_DB", want)

	got, err := resolveDBPath(testCommand())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCatalogDefault(t *testing.T) {
	c, err := loadCatalog(testCommand())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Size(), 3)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	doc := `{"lessons": [{"id": "x", "title": "X", "content": "c",
		"question": {"prompt": "p", "mode": "freetext", "answer": "a"}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("curriculum", path))

	c, err := loadCatalog(cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, "x", c.First().ID)
}

func TestLoadCatalogRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"lessons": []}`), 0o644))

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("curriculum", path))

	_, err := loadCatalog(cmd)
	assert.Error(t, err)
}
