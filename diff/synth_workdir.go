package diff

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/heilaoda/libgit2/ignore"
	"github.com/heilaoda/libgit2/index"
	"github.com/heilaoda/libgit2/object"
	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

// IgnoreLoader resolves the ignore engine collaborator for one
// directory, spec.md §6's "load_for_path(repo, dir) -> IgnoreContext".
type IgnoreLoader func(dir string) ignore.Context

// workdirEntry is the synthesis-local observation spec.md §3 defines:
// a stat snapshot, canonical mode, and (for directories) a trailing "/"
// on the path so sort order matches the tree/index convention.
type workdirEntry struct {
	path string
	mode filemode.FileMode
	info os.FileInfo
	isDir bool
}

// WorkdirToIndex is the WorkdirIndexDiffSynth of spec.md §4.4: produces
// a DeltaList from the filesystem and the index, merge-walking one
// directory of lstat'd entries at a time against the index cursor.
func WorkdirToIndex(db object.Database, opts Options, fs billy.Filesystem, idx *index.Index, loadIgnore IgnoreLoader) (*DeltaList, error) {
	opts = opts.normalize()
	reverse := opts.has(Reverse)
	if loadIgnore == nil {
		loadIgnore = func(string) ignore.Context { return ignore.None{} }
	}

	list := &DeltaList{DB: db, Options: opts}
	cursor := 0
	if err := walkWorkdirLevel(db, fs, "", idx, &cursor, loadIgnore, reverse, list); err != nil {
		return nil, err
	}

	for ; cursor < idx.Len(); cursor++ {
		e := idx.At(cursor)
		list.add(newSingleSided(Deleted, e.Mode, e.Hash, e.Path, reverse))
	}

	sortDeltaList(list)
	return list, nil
}

func walkWorkdirLevel(db object.Database, fs billy.Filesystem, dir string, idx *index.Index, cursor *int, loadIgnore IgnoreLoader, reverse bool, list *DeltaList) error {
	infos, err := fs.ReadDir(dirOrRoot(dir))
	if err != nil {
		return err
	}

	prefix := strings.TrimSuffix(dir, "/")
	entries := make([]workdirEntry, 0, len(infos))
	for _, fi := range infos {
		full := joinPath(prefix, fi.Name())
		mode, _ := filemode.NewFromOSFileMode(fi.Mode())
		isDir := fi.IsDir()
		if isDir {
			full += "/"
			mode = filemode.Dir
		}
		entries = append(entries, workdirEntry{path: full, mode: mode, info: fi, isDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

	ignoreCtx := loadIgnore(dirOrRoot(dir))

	for _, w := range entries {
		for *cursor < idx.Len() && idx.At(*cursor).Path < w.path {
			e := idx.At(*cursor)
			list.add(newSingleSided(Deleted, e.Mode, e.Hash, e.Path, reverse))
			*cursor++
		}

		matched := *cursor < idx.Len() && idx.At(*cursor).Path == w.path
		if !matched {
			if err := handleUnmatchedWorkdirEntry(db, fs, w, idx, cursor, ignoreCtx, reverse, list); err != nil {
				return err
			}
			continue
		}

		e := idx.At(*cursor)
		*cursor++
		if err := handleMatchedEntry(db, fs, w, e, reverse, list); err != nil {
			return err
		}
	}
	return nil
}

// handleUnmatchedWorkdirEntry covers spec.md §4.4's "index exhausted or
// index[cursor].path > W.path" branch: skip untrackable types, classify
// files as Untracked/Ignored, and for directories either skip a nested
// repository marker, recurse when the index still has entries under
// this prefix, or emit a single Untracked/Ignored delta for the whole
// directory (the documented divergence from mainline semantics,
// spec.md §9(a): this synth never recurses into an untracked directory
// once no index entries match it).
func handleUnmatchedWorkdirEntry(db object.Database, fs billy.Filesystem, w workdirEntry, idx *index.Index, cursor *int, ignoreCtx ignore.Context, reverse bool, list *DeltaList) error {
	if !w.isDir {
		if w.mode == filemode.Empty {
			return nil // untrackable type (socket, device, ...)
		}
		status := classify(ignoreCtx, strings.TrimSuffix(w.path, "/"))
		list.add(newWorkdirOnlyDelta(status, w.mode, w.path))
		return nil
	}

	if hasNestedRepo(fs, w.path) {
		return nil // submodule placeholder; TODO: recurse into the submodule's own index
	}

	if *cursor < idx.Len() && strings.HasPrefix(idx.At(*cursor).Path, w.path) {
		return walkWorkdirLevel(db, fs, w.path, idx, cursor, func(string) ignore.Context { return ignoreCtx }, reverse, list)
	}

	status := classify(ignoreCtx, strings.TrimSuffix(w.path, "/"))
	list.add(newWorkdirOnlyDelta(status, w.mode, strings.TrimSuffix(w.path, "/")))
	return nil
}

// handleMatchedEntry covers the paths-equal branch: a type change
// splits into Deleted+Added; otherwise a definite (mode/size) or
// suspected (stat-field) change is tested, rehashing the content only
// when suspected.
func handleMatchedEntry(db object.Database, fs billy.Filesystem, w workdirEntry, e index.Entry, reverse bool, list *DeltaList) error {
	path := strings.TrimSuffix(w.path, "/")

	if kindOf(w.mode) != kindOf(e.Mode) {
		list.add(newSingleSided(Deleted, e.Mode, e.Hash, path, reverse))
		list.add(newSingleSided(Added, w.mode, plumbing.ZeroHash, path, reverse))
		return nil
	}

	size, err := sizeOf(fs, path, w)
	if err != nil {
		return err
	}

	if w.mode != e.Mode || size != e.Size {
		list.add(newTwoSided(path, e.Mode, w.mode, e.Hash, plumbing.ZeroHash, reverse))
		return nil
	}

	if !suspectedChange(w.info, e) {
		return nil
	}

	newOid, err := rehash(db, fs, path, w.mode)
	if err != nil {
		return err
	}
	if newOid == e.Hash {
		return nil
	}
	list.add(newTwoSided(path, e.Mode, w.mode, e.Hash, newOid, reverse))
	return nil
}

// suspectedChange reports whether any stat field the index cached
// diverges from the live file. Dev/inode/uid/gid are not exposed by the
// portable os.FileInfo this package works with (that is platform
// syscall territory out of scope here, as fillSystemInfo is for
// go-git); mtime is, and is the field that actually flips in the common
// case (editors rewriting a file with unchanged content, e.g. after a
// branch switch).
func suspectedChange(fi os.FileInfo, e index.Entry) bool {
	return !fi.ModTime().Equal(e.ModifiedAt)
}

func rehash(db object.Database, fs billy.Filesystem, path string, mode filemode.FileMode) (plumbing.Hash, error) {
	if mode == filemode.Symlink {
		return db.HashSymlinkTarget(path)
	}
	return db.HashFile(path)
}

func sizeOf(fs billy.Filesystem, path string, w workdirEntry) (uint32, error) {
	if w.mode == filemode.Symlink {
		target, err := fs.Readlink(path)
		if err != nil {
			return 0, err
		}
		return uint32(len(target)), nil
	}
	return uint32(w.info.Size()), nil
}

func hasNestedRepo(fs billy.Filesystem, dirPath string) bool {
	_, err := fs.Stat(path.Join(strings.TrimSuffix(dirPath, "/"), ".git"))
	return err == nil
}

func classify(ctx ignore.Context, path string) Status {
	if ctx.IsIgnored(path) {
		return Ignored
	}
	return Untracked
}

// kindOf buckets a mode into the "type" spec.md §4.4's type-change test
// compares: a mode change within the same kind (e.g. the executable-bit
// flip of scenario 3) is a Modified, not a type change.
func kindOf(m filemode.FileMode) int {
	switch m {
	case filemode.Regular, filemode.Deprecated, filemode.Executable:
		return 0
	case filemode.Symlink:
		return 1
	case filemode.Submodule:
		return 2
	case filemode.Dir:
		return 3
	default:
		return -1
	}
}

func dirOrRoot(dir string) string {
	if dir == "" {
		return "."
	}
	return strings.TrimSuffix(dir, "/")
}

// newWorkdirOnlyDelta builds an Untracked or Ignored Delta: present
// only on the new (workdir) side, with no old counterpart.
func newWorkdirOnlyDelta(status Status, mode filemode.FileMode, path string) *Delta {
	return &Delta{
		Status:  status,
		NewMode: mode,
		NewOid:  plumbing.ZeroHash,
		OldPath: path,
		NewPath: path,
	}
}
