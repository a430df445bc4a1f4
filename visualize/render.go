// Package visualize prints the Sierpinski triangle cryptocurrency overview:
// a title, the subdivision diagrams up to the requested depth, the token,
// mining and address sections, and a closing line.
package visualize

import (
	"fmt"
	"io"
	"strings"

	"github.com/sasha-s/go-deadlock"
	"triadchain/triadchain"
)

const DefaultDepth = triadchain.DefaultDepth

// Lines returns the output for depth in order, one entry per printed line.
// Depth 0 shows the genesis diagram, anything from 1 up adds the first
// subdivision, and a negative depth shows no diagrams at all.
func Lines(depth int) []string {
	lines := []string{Title, separator, ""}
	for _, d := range diagrams {
		if depth < d.MinDepth {
			continue
		}
		lines = append(lines, d.Heading)
		lines = append(lines, d.Rows...)
		lines = append(lines, "")
	}
	for _, s := range sections {
		lines = append(lines, s.Heading)
		lines = append(lines, s.Lines...)
		lines = append(lines, "")
	}
	return append(lines, Closing)
}

// Draw returns the full text for depth, every line newline-terminated.
func Draw(depth int) string {
	var b strings.Builder
	for _, line := range Lines(depth) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes the visualization for depth to w.
func Render(w io.Writer, depth int) error {
	triadchain.LogCLI(fmt.Sprintf("rendering depth %d", depth), 4)
	if _, err := io.WriteString(w, Draw(depth)); err != nil {
		return fmt.Errorf("writing visualization: %w", err)
	}
	return nil
}

// Renderer writes whole visualizations to a shared writer. Concurrent calls
// never interleave their lines.
type Renderer struct {
	mu deadlock.Mutex
	w  io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Render(depth int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Render(r.w, depth)
}
