package tree

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Outcome reports how a tree write operation concluded.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
)

// EncodeNode serializes a node tree into its canonical JSON document: object
// keys sorted, four-space indentation, non-ASCII names kept literal and the
// children key explicitly null wherever a node has no children. The document
// carries no trailing newline.
func EncodeNode(node *Node) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(node); err != nil {
		return nil, errors.WithMessage(err, "failed to marshal node tree to JSON")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeNode deserializes a canonical JSON document back into a node tree.
// Every node object must carry the children, name and type keys; the nodes
// are rebuilt through NewNode, so kind invariants are enforced again.
func DecodeNode(data []byte) (*Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithMessagef(ErrMalformedInput, "%v", err)
	}

	return raw.toNode()
}

// rawNode mirrors the wire shape of a single node object, distinguishing
// missing keys from null values.
type rawNode struct {
	Children json.RawMessage `json:"children"`
	Name     *string         `json:"name"`
	Type     *string         `json:"type"`
}

func (raw *rawNode) toNode() (*Node, error) {
	if raw.Name == nil {
		return nil, errors.WithMessage(ErrMalformedInput, "node object is missing the 'name' key")
	}
	if raw.Type == nil {
		return nil, errors.WithMessagef(ErrMalformedInput, "node '%s' is missing the 'type' key", *raw.Name)
	}
	if raw.Children == nil {
		return nil, errors.WithMessagef(ErrMalformedInput, "node '%s' is missing the 'children' key", *raw.Name)
	}

	kind := Kind(*raw.Type)
	if kind != File && kind != Directory {
		return nil, errors.WithMessagef(ErrMalformedInput, "unknown type '%s' for node '%s'", *raw.Type, *raw.Name)
	}

	var children []*Node
	if string(raw.Children) != "null" {
		var rawChildren []*rawNode
		if err := json.Unmarshal(raw.Children, &rawChildren); err != nil {
			return nil, errors.WithMessagef(ErrMalformedInput, "invalid children of node '%s': %v", *raw.Name, err)
		}

		for _, rawChild := range rawChildren {
			if rawChild == nil {
				return nil, errors.WithMessagef(ErrMalformedInput, "null child under node '%s'", *raw.Name)
			}

			child, err := rawChild.toNode()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}

	return NewNode(*raw.Name, kind, children)
}

// SaveFile writes the canonical JSON document of the tree to outputPath.
// An existing path is left untouched unless overwrite is set, reporting
// OutcomeSkipped instead of an error.
func SaveFile(node *Node, outputPath string, overwrite bool) (Outcome, error) {
	if _, err := os.Stat(outputPath); err == nil && !overwrite {
		logrus.WithField("file", outputPath).Info("Output file already exists, use --overwrite to replace it")
		return OutcomeSkipped, nil
	}

	data, err := EncodeNode(node)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", errors.WithMessagef(err, "failed to write tree document %s", outputPath)
	}

	return OutcomeCreated, nil
}

// LoadFile reads a canonical JSON document from inputPath and rebuilds the
// tree. The path must point to an existing regular file with a .json
// extension, compared case insensitively.
func LoadFile(inputPath string) (*Node, error) {
	info, err := os.Stat(inputPath)
	if os.IsNotExist(err) {
		return nil, errors.WithMessagef(ErrNotFound, "input file '%s'", inputPath)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to stat file %s", inputPath)
	}

	if !info.Mode().IsRegular() {
		return nil, errors.WithMessagef(ErrWrongFileType, "input path '%s' is not a regular file", inputPath)
	}
	if !strings.EqualFold(filepath.Ext(inputPath), ".json") {
		return nil, errors.WithMessagef(ErrWrongFileType, "input file '%s' is not a json document", inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read file %s", inputPath)
	}

	return DecodeNode(data)
}
