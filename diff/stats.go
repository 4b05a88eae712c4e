package diff

import (
	"fmt"
	"strings"

	"github.com/heilaoda/libgit2/attr"
	"github.com/heilaoda/libgit2/textdiff"
)

// FileStat is one Delta's line-count contribution to a Stats summary.
type FileStat struct {
	Path      string
	Additions int
	Deletions int
	Binary    bool
}

// Stats is the aggregate per-file and total line-count summary, the
// supplemented feature SPEC_FULL.md adds alongside OutputDrivers
// (mirroring what go-git's Commit.Stats/Patch.Stats exposes on top of
// a raw diff).
type Stats struct {
	Files          []FileStat
	TotalAdditions int
	TotalDeletions int
}

// String renders Stats the way `git diff --stat` summarizes a patch:
// one line per file plus a final "N file(s) changed, M insertion(s)(+),
// K deletion(s)(-)" line.
func (s Stats) String() string {
	var b strings.Builder
	for _, f := range s.Files {
		if f.Binary {
			fmt.Fprintf(&b, " %s | Bin\n", f.Path)
			continue
		}
		fmt.Fprintf(&b, " %s | %d %s\n", f.Path, f.Additions+f.Deletions, bars(f.Additions, f.Deletions))
	}
	fmt.Fprintf(&b, " %d file(s) changed, %d insertion(s)(+), %d deletion(s)(-)\n",
		len(s.Files), s.TotalAdditions, s.TotalDeletions)
	return b.String()
}

func bars(add, del int) string {
	return strings.Repeat("+", add) + strings.Repeat("-", del)
}

// Stats computes a Stats summary for l by running it through Apply and
// counting Addition/Deletion lines per Delta. A Delta resolved binary
// contributes a Bin marker with no line counts. Renamed deltas display
// as "old => new", matching git's --stat rename display.
func (l *DeltaList) Stats(attrEngine attr.Engine) (Stats, error) {
	var stats Stats
	var current *FileStat

	cb := Callbacks{
		File: func(d *Delta, _ float32) error {
			path := displayPath(d)
			stats.Files = append(stats.Files, FileStat{Path: path, Binary: d.Binary == BinaryYes})
			current = &stats.Files[len(stats.Files)-1]
			return nil
		},
		Line: func(d *Delta, h textdiff.Hunk, l textdiff.Line) error {
			switch l.Origin {
			case textdiff.Addition:
				current.Additions++
				stats.TotalAdditions++
			case textdiff.Deletion:
				current.Deletions++
				stats.TotalDeletions++
			}
			return nil
		},
	}
	if err := Apply(l, attrEngine, cb); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func displayPath(d *Delta) string {
	if d.Status == Renamed && d.OldPath != d.NewPath && d.OldPath != "" && d.NewPath != "" {
		return d.OldPath + " => " + d.NewPath
	}
	if d.NewPath != "" {
		return d.NewPath
	}
	return d.OldPath
}
