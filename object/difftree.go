package object

import (
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// EntryStatus classifies one entry-level comparison performed by
// DiffEntries. It is a subset of diff.Status restricted to what a
// single tree level can determine on its own.
type EntryStatus int

const (
	EntryAdded EntryStatus = iota
	EntryDeleted
	EntryModified
)

// EntryDiff is the record shape spec.md §4.2 says the object database's
// tree_diff primitive emits: "(path, old_mode, new_mode, old_oid,
// new_oid, status)". DiffEntries compares exactly one tree level (it
// does not recurse); the caller (diff.TreeToTree) is responsible for
// loading subtrees and calling DiffEntries again on them.
type EntryDiff struct {
	Name    string
	OldMode filemode.FileMode
	NewMode filemode.FileMode
	OldHash plumbing.Hash
	NewHash plumbing.Hash
	Status  EntryStatus
}

// DiffEntries compares the immediate children of old and new, matching
// by name. A name present on only one side yields a single Added or
// Deleted record. A name present on both sides with equal mode-class
// (dir vs dir, file vs file) and equal hash is skipped; with differing
// hash or mode it yields a Modified record. A name that is a tree on
// one side and a blob on the other (a type change) is pre-split here
// into a Deleted record (old side) and an Added record (new side), so
// that nothing downstream ever has to special-case mixed records — this
// is the pre-split guarantee spec.md §4.2 requires of the primitive.
func DiffEntries(old, new *Tree) []EntryDiff {
	var oldEntries, newEntries []TreeEntry
	if old != nil {
		oldEntries = old.Entries
	}
	if new != nil {
		newEntries = new.Entries
	}

	var out []EntryDiff
	i, j := 0, 0
	for i < len(oldEntries) && j < len(newEntries) {
		oe, ne := oldEntries[i], newEntries[j]
		keyOld, keyNew := sortKey(oe), sortKey(ne)
		switch {
		case keyOld < keyNew:
			out = append(out, EntryDiff{Name: oe.Name, OldMode: oe.Mode, OldHash: oe.Hash, Status: EntryDeleted})
			i++
		case keyOld > keyNew:
			out = append(out, EntryDiff{Name: ne.Name, NewMode: ne.Mode, NewHash: ne.Hash, Status: EntryAdded})
			j++
		default:
			out = append(out, sameNameDiff(oe, ne)...)
			i++
			j++
		}
	}
	for ; i < len(oldEntries); i++ {
		oe := oldEntries[i]
		out = append(out, EntryDiff{Name: oe.Name, OldMode: oe.Mode, OldHash: oe.Hash, Status: EntryDeleted})
	}
	for ; j < len(newEntries); j++ {
		ne := newEntries[j]
		out = append(out, EntryDiff{Name: ne.Name, NewMode: ne.Mode, NewHash: ne.Hash, Status: EntryAdded})
	}
	return out
}

func sameNameDiff(oe, ne TreeEntry) []EntryDiff {
	if oe.Mode == filemode.Dir && ne.Mode == filemode.Dir {
		if oe.Hash == ne.Hash {
			return nil
		}
		return []EntryDiff{{
			Name: oe.Name, OldMode: oe.Mode, NewMode: ne.Mode,
			OldHash: oe.Hash, NewHash: ne.Hash, Status: EntryModified,
		}}
	}

	if oe.Mode != filemode.Dir && ne.Mode != filemode.Dir {
		if oe.Hash == ne.Hash && equivalentMode(oe.Mode, ne.Mode) {
			return nil
		}
		return []EntryDiff{{
			Name: oe.Name, OldMode: oe.Mode, NewMode: ne.Mode,
			OldHash: oe.Hash, NewHash: ne.Hash, Status: EntryModified,
		}}
	}

	// Tree-to-non-tree transition: pre-split into Deleted(old) + Added(new).
	return []EntryDiff{
		{Name: oe.Name, OldMode: oe.Mode, OldHash: oe.Hash, Status: EntryDeleted},
		{Name: ne.Name, NewMode: ne.Mode, NewHash: ne.Hash, Status: EntryAdded},
	}
}

// equivalentMode treats Regular and Deprecated as the same file kind,
// the way go-git's hashEqual does for legacy tree entries.
func equivalentMode(a, b filemode.FileMode) bool {
	if isFilish(a) && isFilish(b) {
		return true
	}
	return a == b
}

func isFilish(m filemode.FileMode) bool {
	return m == filemode.Regular || m == filemode.Deprecated
}
