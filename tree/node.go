package tree

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind represents the node type in the file tree.
type Kind string

const (
	File      Kind = "file"
	Directory Kind = "directory"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotADirectory   = errors.New("not a valid directory")
	ErrNotFound        = errors.New("path not found")
	ErrWrongFileType   = errors.New("wrong file type")
	ErrMalformedInput  = errors.New("malformed tree document")
	ErrInvalidState    = errors.New("invalid node state")
)

// Node represents a single file or directory in a modeled file tree.
// Fields are declared in canonical (sorted) JSON key order.
type Node struct {
	Children []*Node `json:"children"` // Child nodes (null for files and empty directories)
	Name     string  `json:"name"`     // File or directory name, a single path segment
	Kind     Kind    `json:"type"`     // Kind of the node (file or directory)
}

// NewNode creates a validated node of the given kind. Children keep the
// order in which they are passed.
func NewNode(name string, kind Kind, children []*Node) (*Node, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	switch kind {
	case File:
		if len(children) > 0 {
			return nil, errors.WithMessagef(ErrInvalidArgument, "file node '%s' must not have children", name)
		}
	case Directory:
		// ok
	default:
		return nil, errors.WithMessagef(ErrInvalidArgument, "unknown kind '%s' for node '%s'", kind, name)
	}

	if len(children) == 0 {
		children = nil
	}

	return &Node{
		Children: children,
		Name:     name,
		Kind:     kind,
	}, nil
}

// NewFileNode creates a new node representing a regular file.
func NewFileNode(name string) (*Node, error) {
	return NewNode(name, File, nil)
}

// NewDirNode creates a new node representing a directory.
func NewDirNode(name string, children ...*Node) (*Node, error) {
	return NewNode(name, Directory, children)
}

// validateName rejects names that cannot be a single path segment.
func validateName(name string) error {
	switch {
	case name == "":
		return errors.WithMessage(ErrInvalidArgument, "node name must not be empty")
	case name == "." || name == "..":
		return errors.WithMessagef(ErrInvalidArgument, "node name '%s' is reserved", name)
	case strings.ContainsAny(name, `/\`):
		return errors.WithMessagef(ErrInvalidArgument, "node name '%s' must not contain path separators", name)
	}
	return nil
}

// Search looks for a direct child by name.
func (node *Node) Search(name string) (*Node, bool) {
	for _, child := range node.Children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// Equal compares two nodes for structural equality, children included.
func (node *Node) Equal(rhs *Node) bool {
	if node == nil || rhs == nil {
		return node == rhs
	}

	if node.Kind != rhs.Kind || node.Name != rhs.Name {
		return false
	}

	if len(node.Children) != len(rhs.Children) {
		return false
	}
	for i := 0; i < len(node.Children); i++ {
		if !node.Children[i].Equal(rhs.Children[i]) {
			return false
		}
	}
	return true
}

// NumNodes returns the total number of nodes in the tree, the receiver included.
func (node *Node) NumNodes() int {
	total := 1
	for _, child := range node.Children {
		total += child.NumNodes()
	}
	return total
}
