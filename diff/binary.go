package diff

import "github.com/heilaoda/libgit2/attr"

// resolveBinary implements BinaryPolicy (spec.md §4.5): resolve the
// "diff" attribute for d's path and decide binary-vs-text. ForceText
// overrides to always text. An unspecified attribute currently
// defaults to text — the NUL-byte content heuristic spec.md §9(c)
// describes as the intended behavior is not implemented, matching
// spec.md's documented limitation verbatim.
func resolveBinary(d *Delta, path string, engine attr.Engine, forceText bool) {
	if forceText {
		d.Binary = BinaryText
		return
	}

	v, _ := engine.Get(path, "diff")
	switch v {
	case attr.True:
		d.Binary = BinaryText
	case attr.False:
		d.Binary = BinaryYes
	default: // Unspecified or StringValue (§9(d): recognized but unused)
		d.Binary = BinaryText
	}
}
