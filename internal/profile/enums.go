package profile

import "fmt"

// ResultsFormat selects how the engine emits results.
type ResultsFormat int

const (
	ResultsFormatText ResultsFormat = iota
	ResultsFormatXML
)

var resultsFormatNames = map[ResultsFormat]string{
	ResultsFormatText: "text",
	ResultsFormatXML:  "xml",
}

// ParseResultsFormat maps a ResultFormat keyword to its value.
func ParseResultsFormat(s string) (ResultsFormat, bool) {
	for f, name := range resultsFormatNames {
		if name == s {
			return f, true
		}
	}
	return ResultsFormatText, false
}

func (f ResultsFormat) String() string {
	if name, ok := resultsFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ResultsFormat(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f ResultsFormat) MarshalText() ([]byte, error) {
	if _, ok := resultsFormatNames[f]; !ok {
		return nil, fmt.Errorf("invalid results format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ResultsFormat) UnmarshalText(b []byte) error {
	v, ok := ParseResultsFormat(string(b))
	if !ok {
		return fmt.Errorf("unknown results format %q", string(b))
	}
	*f = v
	return nil
}

// PrecreateFiles controls whether and which target files are created before
// the measurement window begins.
type PrecreateFiles int

const (
	PrecreateFilesNone PrecreateFiles = iota
	PrecreateFilesUseMaxSize
	PrecreateFilesOnlyConstantSizes
	PrecreateFilesOnlyConstantOrZeroSizes
)

// precreateKeywords lists the writer's keyword first; the rest are accepted
// on input only.
var precreateKeywords = map[PrecreateFiles][]string{
	PrecreateFilesNone:                    {"None"},
	PrecreateFilesUseMaxSize:              {"UseMaxSize"},
	PrecreateFilesOnlyConstantSizes:       {"CreateOnlyFilesWithConstantSizes", "OnlyFilesWithConstantSizes"},
	PrecreateFilesOnlyConstantOrZeroSizes: {"CreateOnlyFilesWithConstantOrZeroSizes", "OnlyFilesWithConstantOrZeroSizes"},
}

// ParsePrecreateFiles maps a PrecreateFiles keyword to its value.
func ParsePrecreateFiles(s string) (PrecreateFiles, bool) {
	for p, keywords := range precreateKeywords {
		for _, k := range keywords {
			if k == s {
				return p, true
			}
		}
	}
	return PrecreateFilesNone, false
}

func (p PrecreateFiles) String() string {
	if keywords, ok := precreateKeywords[p]; ok {
		return keywords[0]
	}
	return fmt.Sprintf("PrecreateFiles(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p PrecreateFiles) MarshalText() ([]byte, error) {
	if _, ok := precreateKeywords[p]; !ok {
		return nil, fmt.Errorf("invalid precreate mode %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PrecreateFiles) UnmarshalText(b []byte) error {
	v, ok := ParsePrecreateFiles(string(b))
	if !ok {
		return fmt.Errorf("unknown precreate mode %q", string(b))
	}
	*p = v
	return nil
}

// CacheMode selects which caches are bypassed for a target.
type CacheMode int

const (
	CacheModeDefault CacheMode = iota
	CacheModeDisableOSCache
	CacheModeDisableAllCache
	CacheModeDisableLocalCache
)

var cacheModeNames = map[CacheMode]string{
	CacheModeDefault:           "Default",
	CacheModeDisableOSCache:    "DisableOSCache",
	CacheModeDisableAllCache:   "DisableAllCache",
	CacheModeDisableLocalCache: "DisableLocalCache",
}

func (m CacheMode) String() string {
	if name, ok := cacheModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CacheMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m CacheMode) MarshalText() ([]byte, error) {
	if _, ok := cacheModeNames[m]; !ok {
		return nil, fmt.Errorf("invalid cache mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CacheMode) UnmarshalText(b []byte) error {
	for v, name := range cacheModeNames {
		if name == string(b) {
			*m = v
			return nil
		}
	}
	return fmt.Errorf("unknown cache mode %q", string(b))
}

// WriteBufferPattern is the content strategy for write buffers.
type WriteBufferPattern int

const (
	WriteBufferSequential WriteBufferPattern = iota
	WriteBufferZero
	WriteBufferRandom
)

var writeBufferPatternNames = map[WriteBufferPattern]string{
	WriteBufferSequential: "sequential",
	WriteBufferZero:       "zero",
	WriteBufferRandom:     "random",
}

// ParseWriteBufferPattern maps a Pattern keyword to its value.
func ParseWriteBufferPattern(s string) (WriteBufferPattern, bool) {
	for p, name := range writeBufferPatternNames {
		if name == s {
			return p, true
		}
	}
	return WriteBufferSequential, false
}

func (p WriteBufferPattern) String() string {
	if name, ok := writeBufferPatternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("WriteBufferPattern(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p WriteBufferPattern) MarshalText() ([]byte, error) {
	if _, ok := writeBufferPatternNames[p]; !ok {
		return nil, fmt.Errorf("invalid write buffer pattern %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *WriteBufferPattern) UnmarshalText(b []byte) error {
	v, ok := ParseWriteBufferPattern(string(b))
	if !ok {
		return fmt.Errorf("unknown write buffer pattern %q", string(b))
	}
	*p = v
	return nil
}

// IOPriorityHint is the I/O priority hint applied to a target. The numeric
// values match the document encoding.
type IOPriorityHint int

const (
	IOPriorityVeryLow IOPriorityHint = iota + 1
	IOPriorityLow
	IOPriorityNormal
)

var ioPriorityNames = map[IOPriorityHint]string{
	IOPriorityVeryLow: "VeryLow",
	IOPriorityLow:     "Low",
	IOPriorityNormal:  "Normal",
}

// IOPriorityFromLevel maps the document encoding 1..3 to a hint.
func IOPriorityFromLevel(level uint32) (IOPriorityHint, bool) {
	if level < uint32(IOPriorityVeryLow) || level > uint32(IOPriorityNormal) {
		return IOPriorityNormal, false
	}
	return IOPriorityHint(level), true
}

// Level returns the document encoding of the hint.
func (h IOPriorityHint) Level() uint32 {
	return uint32(h)
}

func (h IOPriorityHint) String() string {
	if name, ok := ioPriorityNames[h]; ok {
		return name
	}
	return fmt.Sprintf("IOPriorityHint(%d)", int(h))
}

// MarshalText implements encoding.TextMarshaler.
func (h IOPriorityHint) MarshalText() ([]byte, error) {
	if _, ok := ioPriorityNames[h]; !ok {
		return nil, fmt.Errorf("invalid io priority hint %d", int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *IOPriorityHint) UnmarshalText(b []byte) error {
	for v, name := range ioPriorityNames {
		if name == string(b) {
			*h = v
			return nil
		}
	}
	return fmt.Errorf("unknown io priority hint %q", string(b))
}
