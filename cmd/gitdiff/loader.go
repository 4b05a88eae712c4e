package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/heilaoda/libgit2/index"
	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/object/memory"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// loadTree walks dir on disk and builds an object.Tree (plus the
// memory.Storage backing it) the way a real object database would
// already have one on hand. There is no packfile or loose-object format
// here: this is the on-disk-directory stand-in the CLI uses in place of
// a real repository, since the object database is an external
// collaborator spec.md never requires this module to implement.
func loadTree(store *memory.Storage, dir string) (*object.Tree, error) {
	fis, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fis))
	for _, fi := range fis {
		if fi.Name() == ".git" {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)

	var entries []object.TreeEntry
	for _, name := range names {
		full := filepath.Join(dir, name)
		info, err := os.Lstat(full)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			sub, err := loadTree(store, full)
			if err != nil {
				return nil, err
			}
			h := computeTreeHash(store, sub)
			entries = append(entries, object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: h})
			continue
		}

		mode, err := filemode.NewFromOSFileMode(info.Mode())
		if err != nil {
			return nil, err
		}

		var content []byte
		if mode == filemode.Symlink {
			target, err := os.Readlink(full)
			if err != nil {
				return nil, err
			}
			content = []byte(target)
		} else {
			content, err = os.ReadFile(full)
			if err != nil {
				return nil, err
			}
		}
		h := store.PutBlob(content)
		entries = append(entries, object.TreeEntry{Name: name, Mode: mode, Hash: h})
	}

	return object.NewTree(entries), nil
}

// computeTreeHash assigns a stable id to a subtree by hashing its blob
// under a synthetic key and registering it in store, since Tree objects
// in this module carry no hash of their own (spec.md §3 only requires
// the object database to resolve a hash to a Tree, not that a Tree know
// its own id).
func computeTreeHash(store *memory.Storage, t *object.Tree) [20]byte {
	var buf []byte
	for _, e := range t.Entries {
		buf = append(buf, []byte(e.Name)...)
		buf = append(buf, e.Mode.Bytes()...)
		buf = append(buf, e.Hash[:]...)
	}
	h := store.PutBlob(buf)
	store.PutTree(h, t)
	return h
}

// loadIndex walks dir on disk and builds an index.Index snapshot: one
// Entry per regular file, symlink or executable, stat fields taken
// directly from the filesystem (this plays the role spec.md §6's index
// collaborator plays, "a sorted array of entries carrying enough stat
// state").
func loadIndex(store *memory.Storage, dir string) (*index.Index, error) {
	var entries []index.Entry
	err := filepath.Walk(dir, func(full string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" && full != dir {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, full)
		if err != nil {
			return err
		}

		mode, err := filemode.NewFromOSFileMode(info.Mode())
		if err != nil {
			return nil // skip untrackable types (sockets, devices, ...)
		}

		var content []byte
		if mode == filemode.Symlink {
			target, err := os.Readlink(full)
			if err != nil {
				return err
			}
			content = []byte(target)
		} else {
			content, err = os.ReadFile(full)
			if err != nil {
				return err
			}
		}

		entries = append(entries, index.Entry{
			Path:       filepath.ToSlash(rel),
			Mode:       mode,
			Hash:       store.PutBlob(content),
			Size:       uint32(len(content)),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index.NewIndex(entries), nil
}
