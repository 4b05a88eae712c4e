package plumbing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHashAndString(t *testing.T) {
	h := NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", h.String())
	require.False(t, h.IsZero())
}

func TestZeroHashIsZero(t *testing.T) {
	require.True(t, ZeroHash.IsZero())
	require.True(t, NewHash("").IsZero())
}

func TestIsHash(t *testing.T) {
	require.True(t, IsHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	require.False(t, IsHash("short"))
	require.False(t, IsHash("zzzzaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestShort(t *testing.T) {
	h := NewHash("0123456789abcdef0123456789abcdef01234567")
	require.Equal(t, "0123456", h.Short(7))
	require.Equal(t, h.String(), h.Short(100))
}

func TestComputeHashMatchesGitBlobHashing(t *testing.T) {
	// "blob 0\0" with no content is the well-known empty-blob id.
	h := ComputeHash(nil)
	require.Equal(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391", h.String())
}
