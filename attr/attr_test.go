package attr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticResolvesDiffAttribute(t *testing.T) {
	e := NewStatic(map[string]bool{"bin.dat": false, "script.sh": true})

	v, _ := e.Get("bin.dat", "diff")
	require.Equal(t, False, v)

	v, _ = e.Get("script.sh", "diff")
	require.Equal(t, True, v)

	v, _ = e.Get("other.txt", "diff")
	require.Equal(t, Unspecified, v)
}

func TestStaticIgnoresOtherAttributeNames(t *testing.T) {
	e := NewStatic(map[string]bool{"bin.dat": false})
	v, _ := e.Get("bin.dat", "text")
	require.Equal(t, Unspecified, v)
}

func TestNoneAlwaysUnspecified(t *testing.T) {
	v, _ := (None{}).Get("anything", "diff")
	require.Equal(t, Unspecified, v)
}
