package tree

import (
	"fmt"
	"io"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

// DiffStatus represents the status of a node in a tree comparison.
type DiffStatus string

const (
	Added     DiffStatus = "added"
	Removed   DiffStatus = "removed"
	Modified  DiffStatus = "modified"
	Unchanged DiffStatus = "unchanged"
)

// DiffNode represents a node in the comparison result with its status.
type DiffNode struct {
	Node    *Node                    // The compared node
	Status  DiffStatus               // Diff status of the node
	Entries *btree.BTreeG[*DiffNode] // Child results as a B-Tree ordered by name
}

// NewDiffNode creates a new DiffNode.
func NewDiffNode(node *Node, status DiffStatus) *DiffNode {
	diffNode := &DiffNode{
		Node:   node,
		Status: status,
	}

	if node.Kind == Directory {
		diffNode.Entries = btree.NewG(2, func(a, b *DiffNode) bool {
			return a.Node.Name < b.Node.Name
		})
	}

	return diffNode
}

// Diff compares two directory trees and returns a DiffNode tree describing
// the differences. Neither input tree is modified.
func Diff(current, next *Node, recursive bool) (*DiffNode, error) {
	if current.Kind != Directory || next.Kind != Directory {
		return nil, errors.WithMessage(ErrInvalidArgument, "diff is only supported for directories")
	}

	return diff(current, next, recursive), nil
}

// diff is a recursive function that computes the differences between two
// directory nodes.
func diff(current, next *Node, recursive bool) *DiffNode {
	root := NewDiffNode(current, Unchanged)

	// processes entries from the current directory.
	for _, currentEntry := range current.Children {
		nextEntry, found := next.Search(currentEntry.Name)
		if !found {
			root.Entries.ReplaceOrInsert(NewDiffNode(currentEntry, Removed))
			root.Status = Modified
			continue
		}

		if currentEntry.Equal(nextEntry) {
			root.Entries.ReplaceOrInsert(NewDiffNode(currentEntry, Unchanged))
			continue
		}

		root.Status = Modified
		if recursive && currentEntry.Kind == Directory && nextEntry.Kind == Directory {
			subDiff := diff(currentEntry, nextEntry, recursive)
			root.Entries.ReplaceOrInsert(subDiff)
		} else {
			root.Entries.ReplaceOrInsert(NewDiffNode(currentEntry, Modified))
		}
	}

	// processes entries from the next directory that were not found in the
	// current directory.
	for _, nextEntry := range next.Children {
		if _, found := current.Search(nextEntry.Name); !found {
			root.Status = Modified
			root.Entries.ReplaceOrInsert(NewDiffNode(nextEntry, Added))
		}
	}

	return root
}

// RenderDiff writes a status-annotated listing of the comparison result to
// the sink. Added nodes are marked with '+', removed with '-', modified
// with '~' and unchanged nodes with a blank marker.
func RenderDiff(sink io.Writer, root *DiffNode) error {
	return renderDiff(sink, root, "")
}

func renderDiff(sink io.Writer, diffNode *DiffNode, indent string) error {
	var marker string
	switch diffNode.Status {
	case Added:
		marker = "+"
	case Removed:
		marker = "-"
	case Modified:
		marker = "~"
	default:
		marker = " "
	}

	icon := iconDirectory
	if diffNode.Node.Kind == File {
		icon = iconFile
	}

	if _, err := fmt.Fprintf(sink, "%s%s %s %s\n", indent, marker, icon, diffNode.Node.Name); err != nil {
		return err
	}

	if diffNode.Entries == nil {
		return nil
	}

	var walkErr error
	diffNode.Entries.Ascend(func(entry *DiffNode) bool {
		walkErr = renderDiff(sink, entry, indent+"    ")
		return walkErr == nil
	})

	return walkErr
}
