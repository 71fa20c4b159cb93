package diagfmt

// PrettyOpts controls human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI styling.
	Color bool
	// Context is the number of source lines shown around the primary
	// span (0 shows just the offending line).
	Context int
}
