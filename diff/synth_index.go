package diff

import (
	"github.com/heilaoda/libgit2/index"
	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// IndexToTree is the IndexTreeDiffSynth of spec.md §4.3: produces a
// DeltaList from an index and a tree by merge-walking the index's
// sorted array against a post-order walk of the tree. The tree is the
// "old" side, the index the "new" side — the same orientation go-git's
// diffCommitWithStaging uses (tree as `from`, index as `to`).
func IndexToTree(db object.Database, opts Options, idx *index.Index, tree *object.Tree) (*DeltaList, error) {
	opts = opts.normalize()
	reverse := opts.has(Reverse)

	list := &DeltaList{DB: db, Options: opts}
	cursor := 0

	err := walkTreeBlobs(db, tree, "", func(path string, mode filemode.FileMode, oid plumbing.Hash) error {
		for cursor < idx.Len() && idx.At(cursor).Path < path {
			e := idx.At(cursor)
			list.add(newSingleSided(Added, e.Mode, e.Hash, e.Path, reverse))
			cursor++
		}

		if cursor >= idx.Len() || idx.At(cursor).Path > path {
			list.add(newSingleSided(Deleted, mode, oid, path, reverse))
			return nil
		}

		e := idx.At(cursor)
		cursor++
		if e.Hash != oid || e.Mode != mode {
			list.add(newTwoSided(path, mode, e.Mode, oid, e.Hash, reverse))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for ; cursor < idx.Len(); cursor++ {
		e := idx.At(cursor)
		list.add(newSingleSided(Added, e.Mode, e.Hash, e.Path, reverse))
	}

	sortDeltaList(list)
	return list, nil
}

// walkTreeBlobs visits tree's blob entries in post-order (directories
// recursed into, submodule/commit entries skipped per spec.md §4.3's
// documented limitation), calling visit with each blob's full path.
func walkTreeBlobs(db object.Database, tree *object.Tree, prefix string, visit func(path string, mode filemode.FileMode, oid plumbing.Hash) error) error {
	if tree == nil {
		return nil
	}
	for _, e := range tree.Entries {
		path := joinPath(prefix, e.Name)
		switch e.Mode {
		case filemode.Dir:
			sub, err := db.Tree(e.Hash)
			if err != nil {
				return err
			}
			if err := walkTreeBlobs(db, sub, path, visit); err != nil {
				return err
			}
		case filemode.Submodule:
			continue
		default:
			if err := visit(path, e.Mode, e.Hash); err != nil {
				return err
			}
		}
	}
	return nil
}
