// Package xmldoc loads a profile document into a queryable tree and reads
// typed scalar values out of it.
package xmldoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// RootElement is the required document element of a profile.
const RootElement = "Profile"

// Document is a parsed profile document.
type Document struct {
	source string
	root   *Node
}

// Load opens and parses the document at path. The file is closed before
// Load returns.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{
			Kind: DocumentNotFound,
			Path: path,
			Err:  errors.Wrap(err, "failed opening profile"),
		}
	}
	defer f.Close()

	return parse(f, path)
}

// Parse parses a document from r.
func Parse(r io.Reader) (*Document, error) {
	return parse(r, "")
}

func parse(r io.Reader, source string) (*Document, error) {
	top, err := xmlquery.Parse(r)
	if err != nil {
		return nil, syntaxError(source, err)
	}

	var root *xmlquery.Node
	for c := top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			root = c
			break
		}
	}
	if root == nil {
		return nil, &Error{Kind: DocumentMalformed, Path: source, Reason: "document has no root element"}
	}
	if root.Data != RootElement {
		return nil, &Error{
			Kind:   DocumentMalformed,
			Path:   source,
			Text:   root.Data,
			Reason: fmt.Sprintf("root element must be %s", RootElement),
		}
	}

	return &Document{source: source, root: &Node{n: root}}, nil
}

func syntaxError(source string, err error) *Error {
	e := &Error{
		Kind: DocumentMalformed,
		Path: source,
		Err:  errors.Wrap(err, "failed parsing profile"),
	}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		e.Line = se.Line
	}
	return e
}

// Source returns the path the document was loaded from, empty for Parse.
func (d *Document) Source() string {
	return d.source
}

// Root returns the Profile element.
func (d *Document) Root() *Node {
	return d.root
}

// Node is an element of a loaded document.
type Node struct {
	n *xmlquery.Node
}

// Name returns the element name.
func (n *Node) Name() string {
	return n.n.Data
}

// Text returns the element's text content.
func (n *Node) Text() string {
	return n.n.InnerText()
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns the element children in document order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			children = append(children, &Node{n: c})
		}
	}
	return children
}

// Select returns the first node matching the XPath expression relative to
// n, or nil if nothing matches.
func (n *Node) Select(expr string) (*Node, error) {
	found, err := xmlquery.Query(n.n, expr)
	if err != nil {
		return nil, n.badExpr(expr, err)
	}
	if found == nil {
		return nil, nil
	}
	return &Node{n: found}, nil
}

// SelectAll returns every node matching the XPath expression relative to n,
// in document order.
func (n *Node) SelectAll(expr string) ([]*Node, error) {
	found, err := xmlquery.QueryAll(n.n, expr)
	if err != nil {
		return nil, n.badExpr(expr, err)
	}
	nodes := make([]*Node, 0, len(found))
	for _, f := range found {
		nodes = append(nodes, &Node{n: f})
	}
	return nodes, nil
}

func (n *Node) badExpr(expr string, err error) *Error {
	return &Error{
		Kind:   ValueMalformed,
		Path:   n.Path(),
		Text:   expr,
		Reason: "invalid query expression",
		Err:    err,
	}
}

// Path returns a diagnostic element path such as
// /Profile/TimeSpans/TimeSpan[2]/Targets/Target[1]/BlockSize. Positions are
// only shown for elements that have same-named siblings.
func (n *Node) Path() string {
	var parts []string
	for c := n.n; c != nil && c.Type == xmlquery.ElementNode; c = c.Parent {
		parts = append(parts, step(c))
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(parts[i])
	}
	return sb.String()
}

func step(c *xmlquery.Node) string {
	pos, total := 0, 0
	if c.Parent != nil {
		for s := c.Parent.FirstChild; s != nil; s = s.NextSibling {
			if s.Type != xmlquery.ElementNode || s.Data != c.Data {
				continue
			}
			total++
			if s == c {
				pos = total
			}
		}
	}
	if total > 1 {
		return fmt.Sprintf("%s[%d]", c.Data, pos)
	}
	return c.Data
}
