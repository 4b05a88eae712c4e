package diff

import "sort"

// sortDeltaList restores the lexicographic-by-path order spec.md §3
// requires after a synth appends deltas out of merge-walk order (the
// workdir synthesizer can, since ignored/untracked directories are
// emitted as single entries interleaved with recursed subdirectories).
func sortDeltaList(l *DeltaList) {
	sort.Stable(l)
}
