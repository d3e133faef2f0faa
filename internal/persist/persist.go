// Package persist implements the language-neutral JSON document formats
// used to serialize a double array or trie matrix to disk and back.
//
// The codec is github.com/json-iterator/go configured for standard-library
// compatibility: it accepts exactly the struct-tag shaped documents
// encoding/json would produce, but is the drop-in this codebase's lineage
// (go-ethereum-derived packages) standardizes on for JSON-heavy paths.
package persist

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DADocument is the on-disk shape of a double array: two equal-length
// arrays, base and check, each entry either an index or absent (null).
type DADocument struct {
	Base  []*int `json:"base"`
	Check []*int `json:"check"`
}

// TMDocument is the on-disk shape of a trie matrix: one adjacency list per
// node, indexed by node id. Each entry is a (label, child id) pair.
type TMDocument struct {
	Mat [][]Edge `json:"mat"`
}

// Edge is a single (label, child_id) pair of a trie matrix node, encoded
// as a two-element JSON array to keep the document compact.
type Edge struct {
	Label   byte
	ChildID int
}

// MarshalJSON encodes an Edge as the two-element array [label, child_id].
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{int(e.Label), e.ChildID})
}

// UnmarshalJSON decodes an Edge from the two-element array [label, child_id].
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	e.Label = byte(pair[0])
	e.ChildID = pair[1]
	return nil
}

// WriteDA writes a DADocument to path as JSON.
func WriteDA(path string, doc DADocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "persist: marshal double array document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "persist: write %s", path)
	}
	return nil
}

// ReadDA reads a DADocument from path.
func ReadDA(path string) (DADocument, error) {
	var doc DADocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, errors.Wrapf(err, "persist: read %s", path)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrapf(err, "persist: unmarshal double array document from %s", path)
	}
	return doc, nil
}

// WriteTM writes a TMDocument to path as JSON.
func WriteTM(path string, doc TMDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "persist: marshal trie matrix document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "persist: write %s", path)
	}
	return nil
}

// ReadTM reads a TMDocument from path.
func ReadTM(path string) (TMDocument, error) {
	var doc TMDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, errors.Wrapf(err, "persist: read %s", path)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrapf(err, "persist: unmarshal trie matrix document from %s", path)
	}
	return doc, nil
}
