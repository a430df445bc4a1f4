package visualize

// Diagram is an ASCII drawing shown when the requested depth reaches MinDepth.
type Diagram struct {
	MinDepth int
	Heading  string
	Rows     []string
}

// Section is a fixed block of explanatory text.
type Section struct {
	Heading string
	Lines   []string
}

// Address pairs a dotted triangle path with its description.
type Address struct {
	Path  string
	Label string
}
