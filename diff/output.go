package diff

import (
	"fmt"
	"io"

	"github.com/heilaoda/libgit2/attr"
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
	"github.com/heilaoda/libgit2/textdiff"
)

// WriteCompact is the compact OutputDriver of spec.md §4.7: one line per
// Delta, "<code>\t<path>[suffix]" with a rename/copy arrow and a
// trailing mode-change annotation when applicable. A Status this
// package never produces (there is none left unrecognized currently,
// but a future addition is handled defensively) is skipped rather than
// printed with a blank code.
func WriteCompact(w io.Writer, list *DeltaList) error {
	for _, d := range list.Deltas {
		code := d.Status.code()
		if code == 0 {
			continue
		}

		path := d.NewPath
		if path == "" {
			path = d.OldPath
		}
		line := fmt.Sprintf("%c\t%s%s", code, path, suffixFor(d))

		if (d.Status == Renamed || d.Status == Copied) && d.OldPath != "" && d.OldPath != d.NewPath {
			line = fmt.Sprintf("%c\t%s -> %s%s", code, d.OldPath, d.NewPath, suffixFor(d))
		}

		if d.OldMode != d.NewMode && d.OldMode != filemode.Empty && d.NewMode != filemode.Empty {
			line += fmt.Sprintf("  (%s -> %s)", d.OldMode, d.NewMode)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// suffixFor appends the name-status suffix git uses for directories
// (emitted by the workdir synth for an untracked or ignored directory)
// and executables.
func suffixFor(d *Delta) string {
	mode := d.NewMode
	if mode == filemode.Empty {
		mode = d.OldMode
	}
	switch mode {
	case filemode.Dir:
		return "/"
	case filemode.Executable:
		return "*"
	default:
		return ""
	}
}

// WritePatch is the unified-patch OutputDriver of spec.md §4.7: renders
// a DeltaList as a sequence of "diff --git" sections, each followed by
// an index line, ---/+++ headers and the hunk/line stream, matching
// the textual shape `git diff` produces. attrEngine resolves binary
// status via Apply; a nil attrEngine treats everything as text.
func WritePatch(w io.Writer, list *DeltaList, attrEngine attr.Engine) error {
	cb := Callbacks{
		File: func(d *Delta, _ float32) error {
			return writeFileHeader(w, d, list.Options.SrcPrefix, list.Options.DstPrefix)
		},
		Hunk: func(d *Delta, h textdiff.Hunk) error {
			_, err := fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
			return err
		},
		Line: func(d *Delta, h textdiff.Hunk, l textdiff.Line) error {
			return writeLine(w, l)
		},
	}
	return Apply(list, attrEngine, cb)
}

func writeFileHeader(w io.Writer, d *Delta, srcPrefix, dstPrefix string) error {
	oldPath, newPath := d.OldPath, d.NewPath
	if oldPath == "" {
		oldPath = newPath
	}
	if newPath == "" {
		newPath = oldPath
	}

	fmt.Fprintf(w, "diff --git %s%s %s%s\n", srcPrefix, oldPath, dstPrefix, newPath)

	switch {
	case d.Status == Added:
		fmt.Fprintf(w, "new file mode %s\n", mode6(d.NewMode))
		fmt.Fprintf(w, "index %s..%s\n", zeroOr(d.OldOid, 7), d.NewOid.Short(7))
	case d.Status == Deleted:
		fmt.Fprintf(w, "deleted file mode %s\n", mode6(d.OldMode))
		fmt.Fprintf(w, "index %s..%s\n", d.OldOid.Short(7), zeroOr(d.NewOid, 7))
	case d.OldMode != d.NewMode:
		fmt.Fprintf(w, "old mode %s\n", mode6(d.OldMode))
		fmt.Fprintf(w, "new mode %s\n", mode6(d.NewMode))
		fmt.Fprintf(w, "index %s..%s\n", d.OldOid.Short(7), d.NewOid.Short(7))
	default:
		fmt.Fprintf(w, "index %s..%s %s\n", d.OldOid.Short(7), d.NewOid.Short(7), mode6(d.NewMode))
	}

	if d.Binary == BinaryYes {
		_, err := fmt.Fprintf(w, "Binary files %s and %s differ\n", devNullOr(srcPrefix+oldPath, d.Status == Added), devNullOr(dstPrefix+newPath, d.Status == Deleted))
		return err
	}

	fmt.Fprintf(w, "--- %s\n", devNullOr(srcPrefix+oldPath, d.Status == Added))
	_, err := fmt.Fprintf(w, "+++ %s\n", devNullOr(dstPrefix+newPath, d.Status == Deleted))
	return err
}

// mode6 renders a FileMode as the 6-digit octal form git's on-the-wire
// patch format uses ("100644"), unlike FileMode.String()'s 7-digit
// "%07o" rendering ("0100644") meant for human-readable annotations.
func mode6(m filemode.FileMode) string {
	return fmt.Sprintf("%06o", uint32(m))
}

func devNullOr(path string, absent bool) string {
	if absent {
		return "/dev/null"
	}
	return path
}

func zeroOr(h plumbing.Hash, n int) string {
	if h.IsZero() {
		return plumbing.ZeroHash.Short(n)
	}
	return h.Short(n)
}

func writeLine(w io.Writer, l textdiff.Line) error {
	switch l.Origin {
	case textdiff.Context:
		_, err := fmt.Fprintf(w, " %s\n", l.Content)
		return err
	case textdiff.Addition:
		_, err := fmt.Fprintf(w, "+%s\n", l.Content)
		return err
	case textdiff.Deletion:
		_, err := fmt.Fprintf(w, "-%s\n", l.Content)
		return err
	case textdiff.AddEofNl, textdiff.DelEofNl:
		_, err := fmt.Fprintln(w, "\\ No newline at end of file")
		return err
	}
	return nil
}
