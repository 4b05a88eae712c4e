package diff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heilaoda/libgit2/plumbing"
	"github.com/heilaoda/libgit2/plumbing/filemode"
)

func TestStatusCode(t *testing.T) {
	require.Equal(t, byte('A'), Added.code())
	require.Equal(t, byte('D'), Deleted.code())
	require.Equal(t, byte('M'), Modified.code())
	require.Equal(t, byte('R'), Renamed.code())
	require.Equal(t, byte(0), Status(99).code())
}

func TestNewSingleSidedAdded(t *testing.T) {
	h := plumbing.NewHash("aaaa")
	d := newSingleSided(Added, filemode.Regular, h, "new.txt", false)
	require.Equal(t, Added, d.Status)
	require.Equal(t, filemode.Regular, d.NewMode)
	require.Equal(t, h, d.NewOid)
	require.Equal(t, filemode.Empty, d.OldMode)
}

func TestNewSingleSidedReversed(t *testing.T) {
	h := plumbing.NewHash("aaaa")
	d := newSingleSided(Added, filemode.Regular, h, "new.txt", true)
	require.Equal(t, Deleted, d.Status)
	require.Equal(t, filemode.Regular, d.OldMode)
	require.Equal(t, h, d.OldOid)
}

func TestNewTwoSidedReversed(t *testing.T) {
	oldH, newH := plumbing.NewHash("aa"), plumbing.NewHash("bb")
	d := newTwoSided("f.txt", filemode.Regular, filemode.Executable, oldH, newH, true)
	require.Equal(t, Modified, d.Status)
	require.Equal(t, filemode.Executable, d.OldMode)
	require.Equal(t, filemode.Regular, d.NewMode)
	require.Equal(t, newH, d.OldOid)
	require.Equal(t, oldH, d.NewOid)
}

func TestDeltaListSortsByPath(t *testing.T) {
	list := &DeltaList{}
	list.add(newSingleSided(Added, filemode.Regular, plumbing.ZeroHash, "z.txt", false))
	list.add(newSingleSided(Added, filemode.Regular, plumbing.ZeroHash, "a.txt", false))
	sortDeltaList(list)
	require.Equal(t, "a.txt", list.Deltas[0].NewPath)
	require.Equal(t, "z.txt", list.Deltas[1].NewPath)
}

func TestOptionsNormalizeDefaultsAndReverseSwap(t *testing.T) {
	opts := Options{}.normalize()
	require.Equal(t, 3, opts.ContextLines)
	require.Equal(t, "a/", opts.SrcPrefix)
	require.Equal(t, "b/", opts.DstPrefix)

	reversed := Options{Flags: Reverse}.normalize()
	require.Equal(t, "b/", reversed.SrcPrefix)
	require.Equal(t, "a/", reversed.DstPrefix)
}
