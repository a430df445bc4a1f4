package visualize

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	Title   = "🔺 SIERPINSKI TRIANGLE CRYPTOCURRENCY VISUALIZATION"
	Closing = "✅ VERIFIED: Mathematical foundation is solid!"

	separatorWidth = 55
	addressWidth   = 15

	// GenesisAddress is the root of the dotted address scheme.
	GenesisAddress = "genesis"
)

var separator = strings.Repeat("=", separatorWidth)

var genesisRows = []string{
	`     /\`,
	`    /  \`,
	`   /____\`,
}

var diagrams = []Diagram{
	{
		MinDepth: 0,
		Heading:  "Depth 0 (Genesis):",
		Rows:     genesisRows,
	},
	{
		MinDepth: 1,
		Heading:  "Depth 1 (First Subdivision):",
		Rows: append(append([]string{}, genesisRows...),
			`  /\    /\`,
			` /  \  /  \`,
			`/____\/____\`,
		),
	},
}

var addresses = []Address{
	{Path: GenesisAddress, Label: "Root triangle"},
	{Path: ChildAddress(GenesisAddress, 0), Label: "First child triangle"},
	{Path: ChildAddress(ChildAddress(GenesisAddress, 0), 1), Label: "Grandchild triangle"},
	{Path: ChildAddress(ChildAddress(ChildAddress(GenesisAddress, 0), 1), 2), Label: "Great-grandchild triangle"},
}

var sections = []Section{
	{
		Heading: "🏦 TOKEN ECONOMICS:",
		Lines: bullets(
			"Each triangle = potential cryptocurrency ownership",
			"Smaller triangles = rarer tokens (higher value)",
			"Void spaces = removed from circulation (deflationary)",
		),
	},
	{
		Heading: "⛏️  MINING PROCESS:",
		Lines: bullets(
			"Miners compete to subdivide triangles",
			"Valid subdivisions earn cryptocurrency rewards",
			"Geometric proof-of-work validates authenticity",
		),
	},
	{
		Heading: "📍 ADDRESS SYSTEM:",
		Lines:   addressLines(addresses),
	},
}

// ChildAddress names the index'th child of parent in the dotted scheme,
// e.g. genesis.0.1 is child 1 of genesis.0.
func ChildAddress(parent string, index int) string {
	return parent + "." + strconv.Itoa(index)
}

func bullets(items ...string) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return lines
}

func addressLines(list []Address) []string {
	lines := make([]string, len(list))
	for i, a := range list {
		lines[i] = runewidth.FillRight(a.Path, addressWidth) + "→ " + a.Label
	}
	return lines
}
