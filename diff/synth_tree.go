package diff

import (
	"fmt"

	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// TreeToTree is the TreeDiffSynth of spec.md §4.2: produces a DeltaList
// from two tree objects via recursive tree comparison, driven by the
// object database's entry-level tree_diff primitive
// (object.DiffEntries), which pre-splits tree-to-non-tree transitions
// into an Added+Deleted pair.
func TreeToTree(db object.Database, opts Options, oldTree, newTree *object.Tree) (*DeltaList, error) {
	opts = opts.normalize()
	reverse := opts.has(Reverse)

	list := &DeltaList{DB: db, Options: opts}
	if err := diffTreeLevel(db, oldTree, newTree, "", reverse, list); err != nil {
		return nil, err
	}

	sortDeltaList(list)
	return list, nil
}

// diffTreeLevel compares one tree level and handles each record per
// spec.md §4.2: both-dirs recurse, one-dir walks it post-order as a
// single-sided subtree, blob-vs-blob emits a two-sided Delta directly.
func diffTreeLevel(db object.Database, oldTree, newTree *object.Tree, prefix string, reverse bool, list *DeltaList) error {
	for _, rec := range object.DiffEntries(oldTree, newTree) {
		path := joinPath(prefix, rec.Name)

		switch {
		case rec.OldMode == filemode.Dir && rec.NewMode == filemode.Dir:
			oldSub, err := db.Tree(rec.OldHash)
			if err != nil {
				return fmt.Errorf("loading old subtree %s: %w", path, err)
			}
			newSub, err := db.Tree(rec.NewHash)
			if err != nil {
				return fmt.Errorf("loading new subtree %s: %w", path, err)
			}
			if err := diffTreeLevel(db, oldSub, newSub, path, reverse, list); err != nil {
				return err
			}

		case rec.Status == object.EntryDeleted && rec.OldMode == filemode.Dir:
			if err := walkSubtree(db, rec.OldHash, path, Deleted, reverse, list); err != nil {
				return err
			}

		case rec.Status == object.EntryAdded && rec.NewMode == filemode.Dir:
			if err := walkSubtree(db, rec.NewHash, path, Added, reverse, list); err != nil {
				return err
			}

		case rec.Status == object.EntryDeleted:
			list.add(newSingleSided(Deleted, rec.OldMode, rec.OldHash, path, reverse))

		case rec.Status == object.EntryAdded:
			list.add(newSingleSided(Added, rec.NewMode, rec.NewHash, path, reverse))

		default: // EntryModified, blob vs blob
			list.add(newTwoSided(path, rec.OldMode, rec.NewMode, rec.OldHash, rec.NewHash, reverse))
		}
	}
	return nil
}

// walkSubtree descends oid's tree post-order, emitting a single-sided
// Delta with the enclosing status for every blob entry found, and
// recursing into nested directories.
func walkSubtree(db object.Database, oid plumbing.Hash, prefix string, status Status, reverse bool, list *DeltaList) error {
	tree, err := db.Tree(oid)
	if err != nil {
		return fmt.Errorf("loading subtree %s: %w", prefix, err)
	}

	for _, e := range tree.Entries {
		path := joinPath(prefix, e.Name)
		if e.Mode == filemode.Dir {
			if err := walkSubtree(db, e.Hash, path, status, reverse, list); err != nil {
				return err
			}
			continue
		}
		list.add(newSingleSided(status, e.Mode, e.Hash, path, reverse))
	}
	return nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
