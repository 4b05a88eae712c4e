// Package ignore models the ignore-rule-engine collaborator from
// spec.md §6: per-directory contexts answering "is this path ignored".
// The real rule engine (gitignore pattern parsing, precedence across
// nested .gitignore files) is out of scope for the diff core; this
// package ships one concrete glob matcher so the
// workdir synthesizer is exercisable end to end.
package ignore

import "path/filepath"

// Context is the collaborator interface spec.md §6 names: "load for a
// path, ask whether a path is ignored".
type Context interface {
	IsIgnored(path string) bool
}

// Patterns is a Context backed by a flat list of filepath.Match globs,
// each tried against a path's base name and against the path as given;
// it keeps no directory of its own. It does not implement
// directory-precedence or negation; those are gitignore-engine concerns
// explicitly out of spec.md's scope.
type Patterns struct {
	globs []string
}

// Load builds a Context from glob patterns, mirroring
// IgnoreContext.load_for_path(repo, dir) from spec.md §6. An empty
// pattern set ignores nothing.
func Load(patterns []string) *Patterns {
	return &Patterns{globs: patterns}
}

func (p *Patterns) IsIgnored(path string) bool {
	base := filepath.Base(path)
	for _, g := range p.globs {
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
		if ok, _ := filepath.Match(g, path); ok {
			return true
		}
	}
	return false
}

// None ignores nothing; useful as a default Context.
type None struct{}

func (None) IsIgnored(string) bool { return false }
