package diff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/object/memory"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

func buildTree(t *testing.T, store *memory.Storage, entries []object.TreeEntry) *object.Tree {
	t.Helper()
	return object.NewTree(entries)
}

func TestTreeToTreeSimpleModification(t *testing.T) {
	store := memory.NewStorage("")
	h1 := store.PutBlob([]byte("hello\n"))
	h2 := store.PutBlob([]byte("hello world\n"))

	old := buildTree(t, store, []object.TreeEntry{{Name: "a.txt", Mode: filemode.Regular, Hash: h1}})
	newTree := buildTree(t, store, []object.TreeEntry{{Name: "a.txt", Mode: filemode.Regular, Hash: h2}})

	list, err := TreeToTree(store, DefaultOptions(), old, newTree)
	require.NoError(t, err)
	require.Len(t, list.Deltas, 1)
	require.Equal(t, Modified, list.Deltas[0].Status)
	require.Equal(t, "a.txt", list.Deltas[0].NewPath)
}

// TestTreeToTreeBlobToDirectory is spec.md's literal scenario 2: path
// "x" is a blob in old and a directory containing "x/y" in new. The
// synth must emit Deleted("x") and Added("x/y"), never a single
// modified "x".
func TestTreeToTreeBlobToDirectory(t *testing.T) {
	store := memory.NewStorage("")
	hBlob := store.PutBlob([]byte("old content"))
	hSub := store.PutBlob([]byte("new content"))

	subTree := object.NewTree([]object.TreeEntry{{Name: "y", Mode: filemode.Regular, Hash: hSub}})
	subHash := store.PutBlob([]byte("subtree-marker"))
	store.PutTree(subHash, subTree)

	old := buildTree(t, store, []object.TreeEntry{{Name: "x", Mode: filemode.Regular, Hash: hBlob}})
	newTree := buildTree(t, store, []object.TreeEntry{{Name: "x", Mode: filemode.Dir, Hash: subHash}})

	list, err := TreeToTree(store, DefaultOptions(), old, newTree)
	require.NoError(t, err)
	require.Len(t, list.Deltas, 2)

	require.Equal(t, Deleted, list.Deltas[0].Status)
	require.Equal(t, "x", list.Deltas[0].OldPath)

	require.Equal(t, Added, list.Deltas[1].Status)
	require.Equal(t, "x/y", list.Deltas[1].NewPath)
}

func TestTreeToTreeRecursesMatchingDirectories(t *testing.T) {
	store := memory.NewStorage("")
	h1 := store.PutBlob([]byte("v1"))
	h2 := store.PutBlob([]byte("v2"))

	oldSub := object.NewTree([]object.TreeEntry{{Name: "f", Mode: filemode.Regular, Hash: h1}})
	newSub := object.NewTree([]object.TreeEntry{{Name: "f", Mode: filemode.Regular, Hash: h2}})
	oldSubHash := store.PutBlob([]byte("old-sub"))
	newSubHash := store.PutBlob([]byte("new-sub"))
	store.PutTree(oldSubHash, oldSub)
	store.PutTree(newSubHash, newSub)

	old := buildTree(t, store, []object.TreeEntry{{Name: "dir", Mode: filemode.Dir, Hash: oldSubHash}})
	newTree := buildTree(t, store, []object.TreeEntry{{Name: "dir", Mode: filemode.Dir, Hash: newSubHash}})

	list, err := TreeToTree(store, DefaultOptions(), old, newTree)
	require.NoError(t, err)
	require.Len(t, list.Deltas, 1)
	require.Equal(t, "dir/f", list.Deltas[0].NewPath)
}

func TestTreeToTreeOneSidedDirectoryWalksPostOrder(t *testing.T) {
	store := memory.NewStorage("")
	h1 := store.PutBlob([]byte("v1"))
	h2 := store.PutBlob([]byte("v2"))

	sub := object.NewTree([]object.TreeEntry{
		{Name: "one", Mode: filemode.Regular, Hash: h1},
		{Name: "two", Mode: filemode.Regular, Hash: h2},
	})
	subHash := store.PutBlob([]byte("sub-marker"))
	store.PutTree(subHash, sub)

	old := buildTree(t, store, nil)
	newTree := buildTree(t, store, []object.TreeEntry{{Name: "dir", Mode: filemode.Dir, Hash: subHash}})

	list, err := TreeToTree(store, DefaultOptions(), old, newTree)
	require.NoError(t, err)
	require.Len(t, list.Deltas, 2)
	require.Equal(t, "dir/one", list.Deltas[0].NewPath)
	require.Equal(t, "dir/two", list.Deltas[1].NewPath)
	require.Equal(t, Added, list.Deltas[0].Status)
}

func TestTreeToTreeReverseSwapsAddedAndDeleted(t *testing.T) {
	store := memory.NewStorage("")
	h1 := store.PutBlob([]byte("content"))

	old := buildTree(t, store, nil)
	newTree := buildTree(t, store, []object.TreeEntry{{Name: "a.txt", Mode: filemode.Regular, Hash: h1}})

	opts := DefaultOptions()
	opts.Flags |= Reverse
	list, err := TreeToTree(store, opts, old, newTree)
	require.NoError(t, err)
	require.Len(t, list.Deltas, 1)
	require.Equal(t, Deleted, list.Deltas[0].Status)
	require.Equal(t, "b/", list.Options.SrcPrefix)
	require.Equal(t, "a/", list.Options.DstPrefix)
}
