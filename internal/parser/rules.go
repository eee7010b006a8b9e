package parser

import (
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

// rule applies one element to the value being built. Each rule is a scalar
// read of the element plus the field(s) it sets.
type rule[O any] func(n *xmldoc.Node, o *O) error

func uint32Rule[O any](set func(o *O, v uint32)) rule[O] {
	return scalarRule(xmldoc.ParseUint32, set)
}

func uint64Rule[O any](set func(o *O, v uint64)) rule[O] {
	return scalarRule(xmldoc.ParseUint64, set)
}

func boolRule[O any](set func(o *O, v bool)) rule[O] {
	return scalarRule(xmldoc.ParseBool, set)
}

func scalarRule[O, T any](parse func(*xmldoc.Node) (T, error), set func(o *O, v T)) rule[O] {
	return func(n *xmldoc.Node, o *O) error {
		v, err := parse(n)
		if err != nil {
			return err
		}
		set(o, v)
		return nil
	}
}

// applyRules walks the element children of n in document order and applies
// the matching rule to o. Later elements override earlier ones. Children
// without a rule are logged and skipped.
func applyRules[O any](p *parser, n *xmldoc.Node, rules map[string]rule[O], o *O) error {
	for _, child := range n.Children() {
		r, ok := rules[child.Name()]
		if !ok {
			p.unknown(child)
			continue
		}
		if err := r(child, o); err != nil {
			return err
		}
	}
	return nil
}

// warnUnknown logs children of n that are not in known.
func warnUnknown(p *parser, n *xmldoc.Node, known map[string]bool) {
	for _, child := range n.Children() {
		if !known[child.Name()] {
			p.unknown(child)
		}
	}
}
