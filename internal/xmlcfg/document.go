// Package xmlcfg reads the solver configuration document (CompLaB.xml) into
// a generic element tree and provides lenient typed field extraction.
//
// The tree is deliberately schema-free: the diagnostic inspects whatever the
// document declares, and a missing field never raises: it resolves to a
// caller-supplied default, with the absence reported separately as a finding.
package xmlcfg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Node is one element of the configuration tree.
type Node struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
	Nodes   []Node `xml:",any"`
}

// Document is a parsed configuration plus its origin.
type Document struct {
	Path string
	Root *Node
}

// LoadErrorKind classifies terminal ingestion failures.
type LoadErrorKind uint8

const (
	// NotFound: the document path does not exist.
	NotFound LoadErrorKind = iota
	// ParseFailure: the document exists but is not well-formed XML.
	ParseFailure
	// ReadFailure: any other I/O error.
	ReadFailure
)

func (k LoadErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ParseFailure:
		return "parse failure"
	case ReadFailure:
		return "read failure"
	}
	return "unknown"
}

// LoadError is the single terminal failure mode of document ingestion.
// The engine converts it into the sole finding of the run and skips all
// downstream checks.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses the configuration document at path.
func Load(path string) (*Document, *LoadError) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := ReadFailure
		if errors.Is(err, fs.ErrNotExist) {
			kind = NotFound
		}
		return nil, &LoadError{Kind: kind, Path: path, Err: err}
	}

	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Kind: ParseFailure, Path: path, Err: err}
	}
	return &Document{Path: path, Root: &root}, nil
}

// Find resolves a slash-separated element path relative to n, returning the
// first match at every step, or nil when any segment is absent.
func (n *Node) Find(path string) *Node {
	if n == nil {
		return nil
	}
	cur := n
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		var next *Node
		for i := range cur.Nodes {
			if cur.Nodes[i].XMLName.Local == seg {
				next = &cur.Nodes[i]
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Has reports whether a direct or nested element exists at path.
func (n *Node) Has(path string) bool {
	return n.Find(path) != nil
}

// FindDeep returns the first element named name anywhere in the subtree,
// in document order, or nil.
func (n *Node) FindDeep(name string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.FindDeep(name); found != nil {
			return found
		}
	}
	return nil
}
