package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	glyphLastChild   = "  └─"
	glyphMiddleChild = "  ├─"
	glyphIndent      = "   "
	glyphContinued   = "  │"

	iconDirectory = "📁"
	iconFile      = "📄"
)

// Render writes an indented tree diagram of the node to the sink, one line
// per visible node. Dot-prefixed nodes and their subtrees are omitted unless
// includeHidden is set.
//
// Children are ordered for display only: directories before files, names
// compared case insensitively within each group. The tree itself is never
// mutated.
func (node *Node) Render(sink io.Writer, includeHidden bool) error {
	return node.render(sink, includeHidden, true, "")
}

func (node *Node) render(sink io.Writer, includeHidden, isLastChild bool, prefix string) error {
	if !includeHidden && strings.HasPrefix(node.Name, ".") {
		return nil
	}

	connector := glyphMiddleChild
	if isLastChild {
		connector = glyphLastChild
	}

	icon := iconDirectory
	if node.Kind == File {
		icon = iconFile
	}

	if _, err := fmt.Fprintf(sink, "%s%s%s %s\n", prefix, connector, icon, node.Name); err != nil {
		return err
	}

	if node.Kind != Directory {
		return nil
	}

	childPrefix := prefix
	if isLastChild {
		childPrefix += glyphIndent
	} else {
		childPrefix += glyphContinued
	}

	// Hidden children keep their slot for last-child accounting, they just
	// produce no output.
	sorted := displayOrder(node.Children)
	for i, child := range sorted {
		if err := child.render(sink, includeHidden, i == len(sorted)-1, childPrefix); err != nil {
			return err
		}
	}

	return nil
}

// displayOrder returns a sorted copy of the children: directories first,
// then files, names compared case insensitively within each group.
func displayOrder(children []*Node) []*Node {
	sorted := make([]*Node, len(children))
	copy(sorted, children)

	sort.SliceStable(sorted, func(i, j int) bool {
		lhsFile := sorted[i].Kind != Directory
		rhsFile := sorted[j].Kind != Directory
		if lhsFile != rhsFile {
			return rhsFile
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	return sorted
}
