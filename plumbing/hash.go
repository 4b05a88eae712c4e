// Package plumbing holds the low-level value types shared across the
// object database, the index and the diff core: content hashes and
// nothing else. It mirrors the role go-git's plumbing package plays for
// the rest of that library, trimmed to what a diff core needs.
package plumbing

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// HashSize is the width in bytes of a Hash.
const HashSize = 20

// Hash is a fixed-width content-addressed object id. The zero value
// (ZeroHash) represents "absent" wherever a Delta field allows it.
type Hash [HashSize]byte

// ZeroHash is the Hash with all bytes set to zero.
var ZeroHash Hash

// NewHash decodes a hex string into a Hash. An invalid or short string
// yields a partially-zero Hash, matching go-git's NewHash: callers that
// care about validity should use IsHash first.
func NewHash(s string) Hash {
	var h Hash
	b, _ := hex.DecodeString(s)
	copy(h[:], b)
	return h
}

// HashFromBytes builds a Hash by truncating/zero-padding b.
func HashFromBytes(b []byte) Hash {
	var h Hash
	copy(h[:], b)
	return h
}

// IsHash reports whether s decodes to a full-width hash.
func IsHash(s string) bool {
	if len(s) != HashSize*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsZero reports whether h is the absent-object sentinel.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// String returns the lowercase hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first n hex characters of h, as used by the unified
// patch driver's abbreviated object ids (7 by convention).
func (h Hash) Short(n int) string {
	s := h.String()
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// ComputeHash hashes content the way a blob object id is computed: a
// "blob <size>\0" header followed by the content, SHA-1'd. Used by the
// workdir synthesizer's rehash-on-suspicion path and by blob-target
// hashing for symlinks.
func ComputeHash(content []byte) Hash {
	h := sha1.New()
	h.Write([]byte("blob "))
	h.Write([]byte(strconv.Itoa(len(content))))
	h.Write([]byte{0})
	h.Write(content)
	return HashFromBytes(h.Sum(nil))
}
