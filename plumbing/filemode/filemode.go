// Package filemode defines the small, closed set of POSIX-style mode
// bit patterns a tree entry, an index entry or a workdir stat can take,
// and the canonicalization used by the workdir synthesizer (spec §3,
// "WorkdirEntry... canonical mode").
package filemode

import (
	"fmt"
	"os"
	"strconv"
)

// FileMode is a subset of POSIX mode bits, restricted to the values a
// tree entry may carry.
type FileMode uint32

const (
	Empty      FileMode = 0
	Dir        FileMode = 0o040000
	Regular    FileMode = 0o100644
	Deprecated FileMode = 0o100664
	Executable FileMode = 0o100755
	Symlink    FileMode = 0o120000
	Submodule  FileMode = 0o160000
)

// New parses the textual mode representation used by packfile tree
// entries and by commands such as "git diff-tree" (leading zeros and
// short forms are both accepted).
func New(s string) (FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return Empty, fmt.Errorf("malformed mode %q: %w", s, err)
	}
	return FileMode(n), nil
}

// NewFromOSFileMode maps a Go os.FileMode onto the closest git mode, the
// way the workdir synthesizer classifies a lstat result (spec §4.4).
func NewFromOSFileMode(m os.FileMode) (FileMode, error) {
	switch {
	case m&os.ModeSymlink != 0:
		return Symlink, nil
	case m&os.ModeNamedPipe != 0,
		m&os.ModeSocket != 0,
		m&os.ModeDevice != 0,
		m&os.ModeCharDevice != 0,
		m&os.ModeTemporary != 0:
		return Empty, fmt.Errorf("no equivalent git mode for %s", m)
	case m.IsDir():
		return Dir, nil
	}

	if m&0o111 != 0 {
		return Executable, nil
	}
	return Regular, nil
}

// Bytes returns the little-endian uint32 encoding used when a mode is
// folded into hashed content (cmd/gitdiff's computeTreeHash does this).
func (m FileMode) Bytes() []byte {
	return []byte{
		byte(m),
		byte(m >> 8),
		byte(m >> 16),
		byte(m >> 24),
	}
}

// String renders m the way git's plumbing does: zero-padded octal,
// seven digits wide.
func (m FileMode) String() string {
	return fmt.Sprintf("%07o", uint32(m))
}

// IsMalformed reports whether m is not one of the named non-empty
// modes; Empty counts as malformed.
func (m FileMode) IsMalformed() bool {
	switch m {
	case Dir, Regular, Deprecated, Executable, Symlink, Submodule:
		return false
	default:
		return true
	}
}

// IsRegular reports whether m denotes a plain (non-executable) file.
func (m FileMode) IsRegular() bool {
	return m == Regular || m == Deprecated
}

// IsFile reports whether m denotes something diffable as file content:
// regular, executable or symlink.
func (m FileMode) IsFile() bool {
	switch m {
	case Regular, Deprecated, Executable, Symlink:
		return true
	default:
		return false
	}
}

// ToOSFileMode converts m back to an os.FileMode, for use when
// re-materializing a tree entry onto disk.
func (m FileMode) ToOSFileMode() (os.FileMode, error) {
	switch m {
	case Dir, Submodule:
		return os.ModePerm | os.ModeDir, nil
	case Regular, Deprecated:
		return 0o644, nil
	case Executable:
		return 0o755, nil
	case Symlink:
		return os.ModePerm | os.ModeSymlink, nil
	default:
		return 0, fmt.Errorf("malformed mode %s has no OS equivalent", m)
	}
}
