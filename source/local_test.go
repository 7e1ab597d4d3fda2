package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLocalListAndRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "line1\nline2")
	writeFile(t, dir, "a.csv", "only")
	writeFile(t, dir, "notes.txt", "ignored")

	src, err := NewLocal(dir, "*.csv")
	require.NoError(t, err)

	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, names)

	lines, err := src.Read(context.Background(), "b.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, lines)
}

func TestLocalCRLF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "win.csv", "'Time Stamp\r\n2024-01-05\r\n")

	src, err := NewLocal(dir, "*.csv")
	require.NoError(t, err)

	lines, err := src.Read(context.Background(), "win.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"'Time Stamp", "2024-01-05", ""}, lines)
}

func TestLocalEmptyMatch(t *testing.T) {
	src, err := NewLocal(t.TempDir(), "*.csv")
	require.NoError(t, err)

	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalMissingFile(t *testing.T) {
	src, err := NewLocal(t.TempDir(), "*.csv")
	require.NoError(t, err)

	_, err = src.Read(context.Background(), "gone.csv")
	assert.Error(t, err)
}

func TestLocalBadDirectory(t *testing.T) {
	_, err := NewLocal("/does/not/exist", "*.csv")
	assert.Error(t, err)
}

func TestLocalExactName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run1.csv", "x")
	writeFile(t, dir, "run2.csv", "x")

	src, err := NewLocal(dir, "run2.csv")
	require.NoError(t, err)

	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"run2.csv"}, names)
}
