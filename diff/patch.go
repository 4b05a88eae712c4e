package diff

import (
	"errors"

	"github.com/heilaoda/libgit2/attr"
	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing/filemode"
	"github.com/heilaoda/libgit2/textdiff"
)

// ErrAbort is a sentinel a callback may return to stop Apply. Apply
// itself never produces it: it returns whatever error a callback
// returned, unwrapped, so a callback that returns ErrAbort makes Apply
// return ErrAbort.
var ErrAbort = errors.New("diff: callback aborted")

// FileCallback is invoked once per Delta before its hunks, with a
// running fraction (0..1) of deltas processed so far — spec.md §4.6's
// "progress" parameter. Returning a non-nil error aborts the whole
// Apply call; that error is returned to the Apply caller unchanged.
type FileCallback func(d *Delta, progress float32) error

// HunkCallback is invoked once per Hunk of a non-binary Delta.
type HunkCallback func(d *Delta, h textdiff.Hunk) error

// LineCallback is invoked once per Line of a Hunk, including the
// AddEofNl/DelEofNl markers.
type LineCallback func(d *Delta, h textdiff.Hunk, l textdiff.Line) error

// Callbacks groups the three PatchEngine callback stages. Any of them
// may be nil.
type Callbacks struct {
	File FileCallback
	Hunk HunkCallback
	Line LineCallback
}

// Apply is the PatchEngine of spec.md §4.6: walks list, resolves each
// Delta's binary status, and for text deltas loads old/new blob content
// and drives the file/hunk/line callback sequence. Deltas already
// classified binary, and Modified deltas whose old and new content are
// both empty, are reported via the file callback only (no hunks).
func Apply(list *DeltaList, attrEngine attr.Engine, cb Callbacks) error {
	if attrEngine == nil {
		attrEngine = attr.None{}
	}
	forceText := list.Options.has(ForceText)

	n := len(list.Deltas)
	for i, d := range list.Deltas {
		path := d.NewPath
		if path == "" {
			path = d.OldPath
		}
		resolveBinary(d, path, attrEngine, forceText)

		if cb.File != nil {
			progress := float32(i) / float32(n)
			if err := cb.File(d, progress); err != nil {
				return err
			}
		}

		if d.Binary == BinaryYes {
			continue
		}
		if d.Status != Modified && d.Status != Added && d.Status != Deleted {
			continue
		}

		oldContent, newContent, err := loadSides(list.DB, d)
		if err != nil {
			return err
		}
		if len(oldContent) == 0 && len(newContent) == 0 {
			continue
		}

		if err := emitHunks(d, oldContent, newContent, list.Options, cb); err != nil {
			return err
		}
	}
	return nil
}

// loadSides fetches each present side's blob content. A side with a
// zero oid and Empty/Dir mode (the single-sided Added/Deleted case)
// contributes no content.
func loadSides(db object.Database, d *Delta) (old, new []byte, err error) {
	if d.OldMode != filemode.Empty && d.OldMode != filemode.Dir && !d.OldOid.IsZero() {
		b, err := db.Blob(d.OldOid)
		if err != nil {
			return nil, nil, err
		}
		old = b.Content
	}
	if d.NewMode != filemode.Empty && d.NewMode != filemode.Dir && !d.NewOid.IsZero() {
		b, err := db.Blob(d.NewOid)
		if err != nil {
			return nil, nil, err
		}
		new = b.Content
	}
	return old, new, nil
}

func emitHunks(d *Delta, oldContent, newContent []byte, opts Options, cb Callbacks) error {
	cfg := textdiff.Config{
		ContextLines:   opts.ContextLines,
		InterhunkLines: opts.InterhunkLines,
		IgnoreAll:      opts.has(IgnoreWhitespace),
		IgnoreChange:   opts.has(IgnoreWhitespaceChange),
		IgnoreEol:      opts.has(IgnoreWhitespaceEol),
	}

	hunks := textdiff.Hunks(oldContent, newContent, cfg)
	for _, h := range hunks {
		if cb.Hunk != nil {
			if err := cb.Hunk(d, h); err != nil {
				return err
			}
		}
		if cb.Line == nil {
			continue
		}
		for _, l := range h.Lines {
			if err := cb.Line(d, h, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// DiffBlobs is the BlobDiff of spec.md §4.8: diffs two in-memory byte
// buffers directly, with no object database or file paths involved. It
// synthesizes a throwaway Modified Delta (mode 0100644 on both sides,
// no paths) purely to give the Hunk/Line callbacks a consistent first
// argument, and drives only those two stages — there is no file
// callback and no OutputDriver for a blob-to-blob diff.
func DiffBlobs(oldContent, newContent []byte, opts Options, cb Callbacks) error {
	opts = opts.normalize()
	if opts.has(Reverse) {
		oldContent, newContent = newContent, oldContent
	}

	d := &Delta{
		Status:  Modified,
		OldMode: filemode.Regular,
		NewMode: filemode.Regular,
	}
	return emitHunks(d, oldContent, newContent, opts, cb)
}
