package parser

import (
	"fmt"
	"math"

	"github.com/YT-Jin/diskspd/internal/profile"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

var timeSpanElements = map[string]bool{
	"Duration":            true,
	"Warmup":              true,
	"Cooldown":            true,
	"RandSeed":            true,
	"ThreadCount":         true,
	"DisableAffinity":     true,
	"CompletionRoutines":  true,
	"MeasureLatency":      true,
	"CalculateIopsStdDev": true,
	"IoBucketDuration":    true,
	"Affinity":            true,
	"Targets":             true,
}

// parseTimeSpan builds one TimeSpan: scalars first, then affinity (legacy
// entries before group-aware ones), then targets in document order.
func (p *parser) parseTimeSpan(n *xmldoc.Node) (profile.TimeSpan, error) {
	ts := profile.NewTimeSpan()
	warnUnknown(p, n, timeSpanElements)

	uint32Fields := []struct {
		path string
		dst  *uint32
	}{
		{"Duration", &ts.Duration},
		{"Warmup", &ts.Warmup},
		{"Cooldown", &ts.Cooldown},
		{"RandSeed", &ts.RandSeed},
		{"ThreadCount", &ts.ThreadCount},
		{"IoBucketDuration", &ts.IoBucketDurationMs},
	}
	for _, f := range uint32Fields {
		v, ok, err := xmldoc.Uint32(n, f.path)
		if err != nil {
			return profile.TimeSpan{}, err
		}
		if ok {
			*f.dst = v
		}
	}

	boolFields := []struct {
		path string
		dst  *bool
	}{
		{"DisableAffinity", &ts.DisableAffinity},
		{"CompletionRoutines", &ts.CompletionRoutines},
		{"MeasureLatency", &ts.MeasureLatency},
		{"CalculateIopsStdDev", &ts.CalculateIopsStdDev},
	}
	for _, f := range boolFields {
		v, ok, err := xmldoc.Bool(n, f.path)
		if err != nil {
			return profile.TimeSpan{}, err
		}
		if ok {
			*f.dst = v
		}
	}

	if err := parseAffinityAssignment(n, &ts); err != nil {
		return profile.TimeSpan{}, err
	}
	if err := parseAffinityGroupAssignment(n, &ts); err != nil {
		return profile.TimeSpan{}, err
	}

	targets, err := n.SelectAll("Targets/Target")
	if err != nil {
		return profile.TimeSpan{}, err
	}
	for _, tn := range targets {
		t, err := p.parseTarget(tn)
		if err != nil {
			return profile.TimeSpan{}, err
		}
		ts.AddTarget(t)
	}

	return ts, nil
}

// parseAffinityAssignment reads the legacy, non group-aware form. Each entry
// is a processor index in group 0. Writers no longer emit it, but older
// profiles still use it.
func parseAffinityAssignment(n *xmldoc.Node, ts *profile.TimeSpan) error {
	nodes, err := n.SelectAll("Affinity/AffinityAssignment")
	if err != nil {
		return err
	}
	for _, a := range nodes {
		proc, err := xmldoc.ParseUint32(a)
		if err != nil {
			return err
		}
		if proc > math.MaxUint8 {
			return xmldoc.OutOfRange(a, a.Text(), fmt.Sprintf("processor must be at most %d", math.MaxUint8))
		}
		ts.AddAffinityAssignment(0, uint8(proc))
	}
	return nil
}

// parseAffinityGroupAssignment reads the group-aware form carried in the
// Group and Processor attributes.
func parseAffinityGroupAssignment(n *xmldoc.Node, ts *profile.TimeSpan) error {
	nodes, err := n.SelectAll("Affinity/AffinityGroupAssignment")
	if err != nil {
		return err
	}
	for _, a := range nodes {
		group, err := requiredAttr(a, "Group")
		if err != nil {
			return err
		}
		proc, err := requiredAttr(a, "Processor")
		if err != nil {
			return err
		}
		if proc > math.MaxUint8 {
			return xmldoc.OutOfRange(a, fmt.Sprint(proc), fmt.Sprintf("processor must be at most %d", math.MaxUint8))
		}
		if group > math.MaxUint16 {
			return xmldoc.OutOfRange(a, fmt.Sprint(group), fmt.Sprintf("group must be at most %d", math.MaxUint16))
		}
		ts.AddAffinityAssignment(uint16(group), uint8(proc))
	}
	return nil
}

func requiredAttr(n *xmldoc.Node, name string) (uint32, error) {
	v, ok, err := xmldoc.Uint32Attr(n, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, xmldoc.Malformed(n, "", fmt.Sprintf("missing %s attribute", name))
	}
	return v, nil
}
