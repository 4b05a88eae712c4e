// Package memory is a minimal in-memory object.Database, the test
// double standing in for the real object database spec.md treats as an
// external collaborator. Grounded on go-git's storage/memory package,
// which plays the same role for the full library.
package memory

import (
	"os"
	"path/filepath"

	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing"
)

// Storage holds trees and blobs keyed by hash, plus an optional on-disk
// root used to satisfy Database.HashFile/HashSymlinkTarget for the
// workdir synthesizer's rehash path.
type Storage struct {
	Trees map[plumbing.Hash]*object.Tree
	Blobs map[plumbing.Hash]*object.Blob
	Root  string
}

// NewStorage returns an empty Storage rooted at dir (used only for
// rehashing on-disk content; pass "" if the store never backs a
// worktree).
func NewStorage(dir string) *Storage {
	return &Storage{
		Trees: make(map[plumbing.Hash]*object.Tree),
		Blobs: make(map[plumbing.Hash]*object.Blob),
		Root:  dir,
	}
}

// PutTree stores t under the caller-chosen hash h. Tests build trees
// bottom-up and call PutTree at each level.
func (s *Storage) PutTree(h plumbing.Hash, t *object.Tree) {
	s.Trees[h] = t
}

// PutBlob stores content, computing its hash with ComputeHash so the
// resulting oid matches what HashFile would compute for the same bytes.
func (s *Storage) PutBlob(content []byte) plumbing.Hash {
	h := plumbing.ComputeHash(content)
	s.Blobs[h] = &object.Blob{Hash: h, Content: content}
	return h
}

func (s *Storage) Tree(oid plumbing.Hash) (*object.Tree, error) {
	t, ok := s.Trees[oid]
	if !ok {
		return nil, object.ErrNotFound
	}
	return t, nil
}

func (s *Storage) Blob(oid plumbing.Hash) (*object.Blob, error) {
	b, ok := s.Blobs[oid]
	if !ok {
		return nil, object.ErrNotFound
	}
	return b, nil
}

func (s *Storage) HashFile(path string) (plumbing.Hash, error) {
	content, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return plumbing.ComputeHash(content), nil
}

func (s *Storage) HashSymlinkTarget(path string) (plumbing.Hash, error) {
	target, err := os.Readlink(s.resolve(path))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return plumbing.ComputeHash([]byte(target)), nil
}

func (s *Storage) resolve(path string) string {
	if s.Root == "" {
		return path
	}
	return filepath.Join(s.Root, path)
}
