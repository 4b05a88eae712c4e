// Package diff is the diff core: delta synthesis from tree, index and
// workdir sources, binary detection, and the two output drivers
// (compact name-status and unified patch). See spec.md for the full
// component design; this file holds the data model (spec.md §3).
package diff

import (
	"fmt"

	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// Status is one of the seven path-transition kinds a Delta can record.
// Added, Deleted and Modified are produced by every synth in this
// package; Ignored and Untracked only by the workdir synth's
// untracked/ignored classification. Renamed/Copied are never produced;
// they exist for the Similarity field they attach to.
type Status int

const (
	Added Status = iota
	Deleted
	Modified
	Renamed
	Copied
	Ignored
	Untracked
)

func (s Status) String() string {
	switch s {
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	case Modified:
		return "Modified"
	case Renamed:
		return "Renamed"
	case Copied:
		return "Copied"
	case Ignored:
		return "Ignored"
	case Untracked:
		return "Untracked"
	default:
		return "Unknown"
	}
}

// code is the single-letter status code the compact driver prints.
func (s Status) code() byte {
	switch s {
	case Added:
		return 'A'
	case Deleted:
		return 'D'
	case Modified:
		return 'M'
	case Renamed:
		return 'R'
	case Copied:
		return 'C'
	case Ignored:
		return 'I'
	case Untracked:
		return '?'
	default:
		return 0
	}
}

// Binary is the tri-state BinaryPolicy resolves a Delta into: unknown
// until the policy runs, then definitely text or definitely binary.
type Binary int

const (
	BinaryUnknown Binary = iota
	BinaryText
	BinaryYes
)

// Delta is an immutable record of one path's change (spec.md §3). It is
// never mutated after synthesis except for the binary flag, set by
// BinaryPolicy. The blob contents PatchEngine loads for one iteration
// are locals of Apply and are never stored on the struct.
type Delta struct {
	Status   Status
	OldMode  filemode.FileMode
	NewMode  filemode.FileMode
	OldOid   plumbing.Hash
	NewOid   plumbing.Hash
	OldPath  string
	NewPath  string
	Binary   Binary
	Similarity int // reserved for rename detection, 0..100; always 0 here
}

func (d *Delta) String() string {
	path := d.NewPath
	if path == "" {
		path = d.OldPath
	}
	return fmt.Sprintf("<%s %s>", d.Status, path)
}

// newSingleSided builds an Added or Deleted Delta for a single present
// side, honoring Reverse (Added<->Deleted) per spec.md §4.1.
func newSingleSided(status Status, mode filemode.FileMode, oid plumbing.Hash, path string, reverse bool) *Delta {
	d := &Delta{Status: status, OldPath: path, NewPath: path}
	if reverse {
		if status == Added {
			d.Status = Deleted
		} else if status == Deleted {
			d.Status = Added
		}
	}
	if d.Status == Added {
		d.NewMode, d.NewOid = mode, oid
	} else {
		d.OldMode, d.OldOid = mode, oid
	}
	return d
}

// newTwoSided builds a Modified (or type-change-derived two-sided)
// Delta from an entry-level record, swapping old/new when Reverse is
// set, per spec.md §4.1.
func newTwoSided(path string, oldMode, newMode filemode.FileMode, oldOid, newOid plumbing.Hash, reverse bool) *Delta {
	d := &Delta{Status: Modified, OldPath: path, NewPath: path}
	if reverse {
		oldMode, newMode = newMode, oldMode
		oldOid, newOid = newOid, oldOid
	}
	d.OldMode, d.NewMode, d.OldOid, d.NewOid = oldMode, newMode, oldOid, newOid
	return d
}

// DeltaList is an ordered collection of Deltas plus the resolved
// Options and the object database they were synthesized against
// (spec.md §3: "owns... a repository handle (borrowed, not owned)").
// Order is lexicographic by OldPath (equivalently NewPath, since no
// synth in this package ever produces a rename).
type DeltaList struct {
	DB      object.Database
	Options Options
	Deltas  []*Delta
}

func (l *DeltaList) add(d *Delta) {
	l.Deltas = append(l.Deltas, d)
}

// Len, Swap and Less make DeltaList sortable by OldPath.
func (l *DeltaList) Len() int      { return len(l.Deltas) }
func (l *DeltaList) Swap(i, j int) { l.Deltas[i], l.Deltas[j] = l.Deltas[j], l.Deltas[i] }
func (l *DeltaList) Less(i, j int) bool {
	return pathOf(l.Deltas[i]) < pathOf(l.Deltas[j])
}

func pathOf(d *Delta) string {
	if d.OldPath != "" {
		return d.OldPath
	}
	return d.NewPath
}
