package tree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treegen/treegen/tree"
)

func TestScan(t *testing.T) {
	tempDir := t.TempDir()

	// Directories b and a, files z.txt and y.txt. The host listing is name
	// sorted, so the scan must yield a, b, y.txt, z.txt with the
	// directories first.
	assert.NoError(t, os.Mkdir(filepath.Join(tempDir, "b"), 0755))
	assert.NoError(t, os.Mkdir(filepath.Join(tempDir, "a"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(tempDir, "z.txt"), []byte("z"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(tempDir, "y.txt"), []byte("y"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(tempDir, "b", "nested.txt"), nil, 0644))

	root, err := tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, false))

	assert.Len(t, root.Children, 4)
	assert.Equal(t, "a", root.Children[0].Name)
	assert.Equal(t, tree.Directory, root.Children[0].Kind)
	assert.Equal(t, "b", root.Children[1].Name)
	assert.Equal(t, tree.Directory, root.Children[1].Kind)
	assert.Equal(t, "y.txt", root.Children[2].Name)
	assert.Equal(t, tree.File, root.Children[2].Kind)
	assert.Equal(t, "z.txt", root.Children[3].Name)
	assert.Equal(t, tree.File, root.Children[3].Kind)

	// Sub-directories are populated recursively.
	nested, found := root.Children[1].Search("nested.txt")
	assert.True(t, found)
	assert.Equal(t, tree.File, nested.Kind)
}

func TestScanHidden(t *testing.T) {
	tempDir := t.TempDir()

	assert.NoError(t, os.WriteFile(filepath.Join(tempDir, ".secret"), nil, 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(tempDir, "visible.txt"), nil, 0644))

	root, err := tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, false))

	assert.Len(t, root.Children, 1)
	assert.Equal(t, "visible.txt", root.Children[0].Name)

	root, err = tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, true))

	assert.Len(t, root.Children, 2)
	assert.Equal(t, ".secret", root.Children[0].Name)
	assert.Equal(t, "visible.txt", root.Children[1].Name)
}

func TestScanHiddenPropagates(t *testing.T) {
	tempDir := t.TempDir()

	subDir := filepath.Join(tempDir, "sub")
	assert.NoError(t, os.Mkdir(subDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(subDir, ".inner"), nil, 0644))

	root, err := tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, true))

	sub, found := root.Search("sub")
	assert.True(t, found)
	inner, found := sub.Search(".inner")
	assert.True(t, found)
	assert.Equal(t, tree.File, inner.Kind)

	root, err = tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, false))

	sub, found = root.Search("sub")
	assert.True(t, found)
	assert.Empty(t, sub.Children)
}

func TestScanNotADirectory(t *testing.T) {
	tempDir := t.TempDir()

	root, err := tree.NewDirNode("root")
	assert.NoError(t, err)

	err = root.Scan(filepath.Join(tempDir, "missing"), false)
	assert.ErrorIs(t, err, tree.ErrNotADirectory)

	filePath := filepath.Join(tempDir, "file.txt")
	assert.NoError(t, os.WriteFile(filePath, nil, 0644))

	err = root.Scan(filePath, false)
	assert.ErrorIs(t, err, tree.ErrNotADirectory)
}

func TestScanTargetValidation(t *testing.T) {
	tempDir := t.TempDir()

	file, err := tree.NewFileNode("file.txt")
	assert.NoError(t, err)
	assert.ErrorIs(t, file.Scan(tempDir, false), tree.ErrInvalidArgument)

	child, err := tree.NewFileNode("child.txt")
	assert.NoError(t, err)
	populated, err := tree.NewDirNode("root", child)
	assert.NoError(t, err)
	assert.ErrorIs(t, populated.Scan(tempDir, false), tree.ErrInvalidArgument)
}

func TestScanFollowsSymlinks(t *testing.T) {
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "target.txt")
	assert.NoError(t, os.WriteFile(filePath, []byte("content"), 0644))
	assert.NoError(t, os.Symlink(filePath, filepath.Join(tempDir, "link.txt")))
	assert.NoError(t, os.Symlink(filepath.Join(tempDir, "gone"), filepath.Join(tempDir, "dangling")))

	root, err := tree.NewDirNode("root")
	assert.NoError(t, err)
	assert.NoError(t, root.Scan(tempDir, false))

	// The link resolves to a regular file, the dangling one is dropped.
	assert.Len(t, root.Children, 2)
	link, found := root.Search("link.txt")
	assert.True(t, found)
	assert.Equal(t, tree.File, link.Kind)
	_, found = root.Search("dangling")
	assert.False(t, found)
}
