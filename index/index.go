// Package index models the staged-index collaborator from spec.md §6:
// a sorted array of entries carrying enough stat state to decide, cheaply,
// whether a workdir file might have changed. Grounded on go-git's
// plumbing/format/index package, trimmed to the fields the diff core
// reads.
package index

import (
	"sort"
	"time"

	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// Entry is one staged path, positionally accessible per spec.md §6.
type Entry struct {
	Path string
	Mode filemode.FileMode
	Hash plumbing.Hash
	Size uint32

	CreatedAt  time.Time
	ModifiedAt time.Time
	Dev, Inode uint32
	UID, GID   uint32
}

// Index is the sorted staged snapshot between workdir and tree.
type Index struct {
	Entries []Entry
}

// NewIndex sorts entries by Path and returns an Index over them, the
// invariant both IndexTreeDiffSynth and WorkdirIndexDiffSynth rely on
// (spec.md §4.3, §4.4: "the index is pre-sorted lexicographically").
func NewIndex(entries []Entry) *Index {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return &Index{Entries: entries}
}

// Len and At give the merge-walk synths positional, cursor-style
// access without exposing the backing slice.
func (idx *Index) Len() int { return len(idx.Entries) }

func (idx *Index) At(i int) Entry { return idx.Entries[i] }
