package main

import (
	"fmt"
	"io"

	"github.com/heilaoda/libgit2/attr"
	"github.com/heilaoda/libgit2/diff"
)

// render prints list per the caller's outputFlags: --stat wins over
// --patch, --patch wins over the default compact name-status listing.
func render(w io.Writer, list *diff.DeltaList, opts outputFlags) error {
	switch {
	case opts.Stat:
		stats, err := list.Stats(attr.None{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, stats)
		return err
	case opts.Patch:
		return diff.WritePatch(w, list, attr.None{})
	default:
		return diff.WriteCompact(w, list)
	}
}
