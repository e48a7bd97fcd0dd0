// Package tree models a filesystem subtree as an in-memory hierarchy of file
// and directory nodes, decoupled from any particular host directory. A tree
// can be captured once from a real directory and then saved, inspected or
// recreated elsewhere without touching the original source again.
//
// The main features of this package include:
//
//   - Defining the Node structure, which represents files and directories in
//     a nested hierarchical format with a closed kind enumeration.
//   - Building a tree by scanning a host directory, classifying entries and
//     optionally filtering hidden ones.
//   - Serializing a tree into a canonical JSON document and deserializing it
//     back, with strict shape validation on the way in.
//   - Materializing a tree as a skeleton of directories and placeholder
//     files under a chosen destination.
//   - Rendering a tree as an indented diagram and comparing two trees into a
//     status-annotated diff.
//
// All operations are synchronous and operate on a single tree instance at a
// time; the package performs no caching and keeps no global state.
package tree
