package diff

// Flag is a bit in Options.Flags.
type Flag uint32

const (
	Reverse Flag = 1 << iota
	ForceText
	IgnoreWhitespace
	IgnoreWhitespaceChange
	IgnoreWhitespaceEol
)

func (o Options) has(f Flag) bool { return o.Flags&f != 0 }

// Options are the normalized diff parameters spec.md §3 describes.
// Zero-value Options are valid input to the synths: each synth's
// normalize step fills in the defaults and performs the
// prefix-swap-on-Reverse normalization. DefaultOptions only fills in
// the defaults.
type Options struct {
	Flags          Flag
	ContextLines   int
	InterhunkLines int
	SrcPrefix      string
	DstPrefix      string
	Pathspec       []string
}

const (
	defaultSrcPrefix = "a/"
	defaultDstPrefix = "b/"
)

// DefaultOptions returns the zero-configured Options: 3 lines of
// context, 3 interhunk lines, "a/"/"b/" prefixes.
func DefaultOptions() Options {
	return Options{
		ContextLines:   3,
		InterhunkLines: 3,
		SrcPrefix:      defaultSrcPrefix,
		DstPrefix:      defaultDstPrefix,
	}
}

// normalize fills in any zero fields with their defaults, terminates
// both prefixes with "/", and — if Reverse is set — swaps them exactly
// once. It is not idempotent when Reverse is set: a prefix that already
// ends in "/" is left alone, but Reverse is a flag inspected, not
// consumed, so a second call swaps the prefixes back. It is therefore
// invoked a single time per synthesis call (each Synth does this
// itself, on its own copy of Options).
func (o Options) normalize() Options {
	if o.ContextLines <= 0 {
		o.ContextLines = 3
	}
	if o.InterhunkLines <= 0 {
		o.InterhunkLines = 3
	}
	if o.SrcPrefix == "" {
		o.SrcPrefix = defaultSrcPrefix
	}
	if o.DstPrefix == "" {
		o.DstPrefix = defaultDstPrefix
	}
	o.SrcPrefix = ensureTrailingSlash(o.SrcPrefix)
	o.DstPrefix = ensureTrailingSlash(o.DstPrefix)

	if o.has(Reverse) {
		o.SrcPrefix, o.DstPrefix = o.DstPrefix, o.SrcPrefix
	}
	return o
}

func ensureTrailingSlash(p string) string {
	if p == "" || p[len(p)-1] == '/' {
		return p
	}
	return p + "/"
}
