package xmldoc

import (
	"fmt"
	"strings"
)

// Kind classifies a load or parse failure. Kinds are flat; every Kind is
// also an error so callers can match with errors.Is(err, xmldoc.ValueMalformed).
type Kind int

const (
	// DocumentNotFound means the profile path could not be opened.
	DocumentNotFound Kind = iota + 1
	// DocumentMalformed means the document is not well-formed XML or has no Profile root.
	DocumentMalformed
	// ValueMalformed means an element's text cannot be parsed to its declared type.
	ValueMalformed
	// ValueOutOfRange means a parsed value violates a domain constraint.
	ValueOutOfRange
	// SchemaViolation means strict validation rejected the parsed profile.
	SchemaViolation
)

var kindNames = map[Kind]string{
	DocumentNotFound:  "document not found",
	DocumentMalformed: "document malformed",
	ValueMalformed:    "value malformed",
	ValueOutOfRange:   "value out of range",
	SchemaViolation:   "schema violation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Error is the single structured failure returned by the loader and parsers.
type Error struct {
	Kind Kind

	// Path is the element path, or the document source for document errors
	Path string

	// Text is the offending text, if any
	Text string

	// Reason is a human readable explanation
	Reason string

	// Line is the 1-based document line for syntax errors, 0 if unknown
	Line int

	Err error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Path != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Path)
	}
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d)", e.Line))
	}
	if e.Text != "" {
		sb.WriteString(fmt.Sprintf(": %q", e.Text))
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an Error against its Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Malformed builds a ValueMalformed error for node n.
func Malformed(n *Node, text, reason string) *Error {
	return &Error{Kind: ValueMalformed, Path: n.Path(), Text: text, Reason: reason}
}

// OutOfRange builds a ValueOutOfRange error for node n.
func OutOfRange(n *Node, text, reason string) *Error {
	return &Error{Kind: ValueOutOfRange, Path: n.Path(), Text: text, Reason: reason}
}
