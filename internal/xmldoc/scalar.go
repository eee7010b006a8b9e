package xmldoc

import (
	"strconv"
	"strings"
)

// Scalar readers return (value, present, err). A missing element or
// attribute is reported as present == false with a nil error so callers can
// leave their defaults untouched; text that cannot be parsed is a
// ValueMalformed error.

// Uint32 reads the first child selected by path as an unsigned 32-bit decimal.
func Uint32(ctx *Node, path string) (uint32, bool, error) {
	return readChild(ctx, path, ParseUint32)
}

// Uint64 reads the first child selected by path as an unsigned 64-bit decimal.
func Uint64(ctx *Node, path string) (uint64, bool, error) {
	return readChild(ctx, path, ParseUint64)
}

// Bool reads the first child selected by path as a true/false literal.
func Bool(ctx *Node, path string) (bool, bool, error) {
	return readChild(ctx, path, ParseBool)
}

// String reads the text of the first child selected by path verbatim.
func String(ctx *Node, path string) (string, bool, error) {
	return readChild(ctx, path, func(n *Node) (string, error) {
		return n.Text(), nil
	})
}

// Uint32Attr reads the named attribute of ctx as an unsigned 32-bit decimal.
func Uint32Attr(ctx *Node, name string) (uint32, bool, error) {
	text, ok := ctx.Attr(name)
	if !ok {
		return 0, false, nil
	}
	v, err := parseUint(text, 32)
	if err != nil {
		return 0, false, &Error{
			Kind:   ValueMalformed,
			Path:   ctx.Path() + "/@" + name,
			Text:   text,
			Reason: "expected an unsigned 32-bit decimal integer",
		}
	}
	return uint32(v), true, nil
}

func readChild[T any](ctx *Node, path string, parse func(*Node) (T, error)) (T, bool, error) {
	var zero T
	n, err := ctx.Select(path)
	if err != nil || n == nil {
		return zero, false, err
	}
	v, err := parse(n)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// ParseUint32 parses the text of n as an unsigned 32-bit decimal.
func ParseUint32(n *Node) (uint32, error) {
	v, err := parseUint(n.Text(), 32)
	if err != nil {
		return 0, Malformed(n, n.Text(), "expected an unsigned 32-bit decimal integer")
	}
	return uint32(v), nil
}

// ParseUint64 parses the text of n as an unsigned 64-bit decimal. Values
// above 2^64-1 are rejected rather than wrapped.
func ParseUint64(n *Node) (uint64, error) {
	v, err := parseUint(n.Text(), 64)
	if err != nil {
		return 0, Malformed(n, n.Text(), "expected an unsigned 64-bit decimal integer")
	}
	return v, nil
}

// ParseBool parses the text of n as "true" or "false", ignoring case.
func ParseBool(n *Node) (bool, error) {
	text := strings.TrimSpace(n.Text())
	switch {
	case strings.EqualFold(text, "true"):
		return true, nil
	case strings.EqualFold(text, "false"):
		return false, nil
	}
	return false, Malformed(n, n.Text(), "expected true or false")
}

// parseUint accepts plain decimal digits only: no sign, separators or
// suffixes. Surrounding whitespace from indented documents is ignored.
func parseUint(text string, bits int) (uint64, error) {
	text = strings.TrimSpace(text)
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseUint(text, 10, bits)
}
