package filemode

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ModeSuite struct {
	suite.Suite
}

func TestModeSuite(t *testing.T) {
	suite.Run(t, new(ModeSuite))
}

func (s *ModeSuite) TestNew() {
	for _, test := range [...]struct {
		input    string
		expected FileMode
	}{
		{input: "40000", expected: Dir},
		{input: "100644", expected: Regular},
		{input: "100664", expected: Deprecated},
		{input: "100755", expected: Executable},
		{input: "120000", expected: Symlink},
		{input: "160000", expected: Submodule},
		{input: "000000", expected: Empty},
		{input: "040000", expected: Dir},
		{input: "0", expected: Empty},
		{input: "42", expected: FileMode(0o42)},
	} {
		comment := fmt.Sprintf("input = %q", test.input)
		obtained, err := New(test.input)
		s.Equal(test.expected, obtained, comment)
		s.NoError(err, comment)
	}
}

func (s *ModeSuite) TestNewErrors() {
	for _, input := range [...]string{"0x81a4", "-rw-r--r--", "", "-42", "mode"} {
		comment := fmt.Sprintf("input = %q", input)
		obtained, err := New(input)
		s.Equal(Empty, obtained, comment)
		s.Error(err, comment)
	}
}

type fixture struct {
	input    os.FileMode
	expected FileMode
	err      string
}

func (f fixture) test(s *ModeSuite) {
	obtained, err := NewFromOSFileMode(f.input)
	comment := fmt.Sprintf("input = %s (%07o)", f.input, uint32(f.input))
	s.Equal(f.expected, obtained, comment)
	if f.err != "" {
		s.ErrorContains(err, f.err, comment)
	} else {
		s.NoError(err, comment)
	}
}

func (s *ModeSuite) TestNewFromOsFileModeSimplePerms() {
	for _, f := range [...]fixture{
		{os.FileMode(0o755) | os.ModeDir, Dir, ""},
		{os.FileMode(0o644), Regular, ""},
		{os.FileMode(0o755), Executable, ""},
		{os.FileMode(0o777) | os.ModeSymlink, Symlink, ""},
	} {
		f.test(s)
	}
}

func (s *ModeSuite) TestNewFromOsFileModeUntrackable() {
	for _, f := range [...]fixture{
		{os.FileMode(0o644) | os.ModeTemporary, Empty, "no equivalent"},
		{os.FileMode(0o644) | os.ModeDevice, Empty, "no equivalent"},
		{os.FileMode(0o644) | os.ModeNamedPipe, Empty, "no equivalent"},
		{os.FileMode(0o644) | os.ModeSocket, Empty, "no equivalent"},
		{os.FileMode(0o644) | os.ModeCharDevice, Empty, "no equivalent"},
	} {
		f.test(s)
	}
}

func (s *ModeSuite) TestByte() {
	for _, test := range [...]struct {
		input    FileMode
		expected []byte
	}{
		{Empty, []byte{0x00, 0x00, 0x00, 0x00}},
		{Dir, []byte{0x00, 0x40, 0x00, 0x00}},
		{Regular, []byte{0xa4, 0x81, 0x00, 0x00}},
		{Deprecated, []byte{0xb4, 0x81, 0x00, 0x00}},
		{Executable, []byte{0xed, 0x81, 0x00, 0x00}},
		{Symlink, []byte{0x00, 0xa0, 0x00, 0x00}},
		{Submodule, []byte{0x00, 0xe0, 0x00, 0x00}},
	} {
		s.Equal(test.expected, test.input.Bytes(), fmt.Sprintf("input = %s", test.input))
	}
}

func (s *ModeSuite) TestIsMalformed() {
	for _, test := range [...]struct {
		mode     FileMode
		expected bool
	}{
		{Empty, true},
		{Dir, false},
		{Regular, false},
		{Deprecated, false},
		{Executable, false},
		{Symlink, false},
		{Submodule, false},
		{FileMode(0o1), true},
	} {
		s.Equal(test.expected, test.mode.IsMalformed())
	}
}

func (s *ModeSuite) TestString() {
	for _, test := range [...]struct {
		mode     FileMode
		expected string
	}{
		{Empty, "0000000"},
		{Dir, "0040000"},
		{Regular, "0100644"},
		{Executable, "0100755"},
		{Symlink, "0120000"},
	} {
		s.Equal(test.expected, test.mode.String())
	}
}

func (s *ModeSuite) TestIsRegular() {
	s.True(Regular.IsRegular())
	s.True(Deprecated.IsRegular())
	s.False(Executable.IsRegular())
	s.False(Dir.IsRegular())
}

func (s *ModeSuite) TestIsFile() {
	s.True(Regular.IsFile())
	s.True(Executable.IsFile())
	s.True(Symlink.IsFile())
	s.False(Dir.IsFile())
	s.False(Submodule.IsFile())
}

func (s *ModeSuite) TestToOSFileMode() {
	for _, test := range [...]struct {
		input     FileMode
		expected  os.FileMode
		errRegExp string
	}{
		{Empty, os.FileMode(0), "malformed"},
		{Dir, os.ModePerm | os.ModeDir, ""},
		{Regular, os.FileMode(0o644), ""},
		{Executable, os.FileMode(0o755), ""},
		{Symlink, os.ModePerm | os.ModeSymlink, ""},
	} {
		obtained, err := test.input.ToOSFileMode()
		comment := fmt.Sprintf("input = %s", test.input)
		if test.errRegExp != "" {
			s.ErrorContains(err, test.errRegExp, comment)
		} else {
			s.Equal(test.expected, obtained, comment)
			s.NoError(err, comment)
		}
	}
}
