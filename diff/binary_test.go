package diff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heilaoda/libgit2/attr"
)

func TestResolveBinaryForceText(t *testing.T) {
	d := &Delta{}
	resolveBinary(d, "image.png", attr.NewStatic(map[string]bool{"image.png": false}), true)
	require.Equal(t, BinaryText, d.Binary)
}

func TestResolveBinaryAttributeFalseMeansBinary(t *testing.T) {
	d := &Delta{}
	resolveBinary(d, "image.png", attr.NewStatic(map[string]bool{"image.png": false}), false)
	require.Equal(t, BinaryYes, d.Binary)
}

func TestResolveBinaryAttributeTrueMeansText(t *testing.T) {
	d := &Delta{}
	resolveBinary(d, "script.pl", attr.NewStatic(map[string]bool{"script.pl": true}), false)
	require.Equal(t, BinaryText, d.Binary)
}

func TestResolveBinaryUnspecifiedDefaultsToText(t *testing.T) {
	d := &Delta{}
	resolveBinary(d, "plain.txt", attr.None{}, false)
	require.Equal(t, BinaryText, d.Binary)
}
