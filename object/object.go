// Package object models the object-database collaborator from spec.md
// §6: tree and blob lookup, plus the single-level tree-entry comparison
// primitive the tree-to-tree synth drives. It is intentionally thin —
// the real object database (storage, packfiles, loose objects) is out
// of scope for a diff core and is treated here as an external,
// injectable Database.
package object

import (
	"errors"
	"sort"

	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// ErrNotFound is returned by a Database when an oid has no matching
// object, corresponding to spec.md §7's NotFound error kind.
var ErrNotFound = errors.New("object not found")

// TreeEntry is one named slot of a Tree: a mode and an object id.
type TreeEntry struct {
	Name string
	Mode filemode.FileMode
	Hash plumbing.Hash
}

// Tree is a directory-like object mapping names to (mode, oid). Entries
// are kept sorted by Name so tree-to-tree and tree-to-index merge walks
// see a stable order.
type Tree struct {
	Entries []TreeEntry
}

// NewTree builds a Tree with its entries sorted the way git sorts tree
// entries: a directory name compares as if it carried a trailing "/",
// so "a.txt" (0x2e) sorts before the contents of a directory "a"
// (0x2f) even though "a" alone would not. This is what lets a
// full-path merge walk against a lexicographically sorted index (see
// index.Index) agree with a tree's own per-level order.
func NewTree(entries []TreeEntry) *Tree {
	sort.Slice(entries, func(i, j int) bool {
		return sortKey(entries[i]) < sortKey(entries[j])
	})
	return &Tree{Entries: entries}
}

func sortKey(e TreeEntry) string {
	if e.Mode == filemode.Dir {
		return e.Name + "/"
	}
	return e.Name
}

// Entry looks up a single child by name.
func (t *Tree) Entry(name string) (TreeEntry, bool) {
	if t == nil {
		return TreeEntry{}, false
	}
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return TreeEntry{}, false
}

// Blob is a byte-content object.
type Blob struct {
	Hash    plumbing.Hash
	Content []byte
}

// Database is the object database collaborator: tree/blob lookup and
// content hashing, consumed (never implemented) by the diff core per
// spec.md §6.
type Database interface {
	Tree(oid plumbing.Hash) (*Tree, error)
	Blob(oid plumbing.Hash) (*Blob, error)
	// HashFile hashes path's current on-disk content as a blob would be
	// hashed, used by the workdir synthesizer's rehash-on-suspicion path.
	HashFile(path string) (plumbing.Hash, error)
	// HashSymlinkTarget hashes a symlink's target string as its content.
	HashSymlinkTarget(path string) (plumbing.Hash, error)
}
