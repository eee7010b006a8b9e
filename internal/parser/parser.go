// Package parser turns a profile document into a profile.Profile.
//
// Parsing is all-or-nothing: the first malformed or out-of-range value aborts
// it and no partially populated Profile is returned. Fields a document omits
// keep the defaults of profile.New, profile.NewTimeSpan and
// profile.NewTarget.
package parser

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/YT-Jin/diskspd/internal/profile"
	"github.com/YT-Jin/diskspd/internal/schema"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

// Error kinds, re-exported for callers matching with errors.Is.
var (
	ErrDocumentNotFound  error = xmldoc.DocumentNotFound
	ErrDocumentMalformed error = xmldoc.DocumentMalformed
	ErrValueMalformed    error = xmldoc.ValueMalformed
	ErrValueOutOfRange   error = xmldoc.ValueOutOfRange
	ErrSchemaViolation   error = xmldoc.SchemaViolation
)

// Option configures a parse.
type Option func(*parser)

// WithLogger sets the logger that receives warnings about unknown elements.
func WithLogger(logger hclog.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// WithStrictValidation additionally validates the parsed profile against
// the structural schema before returning it.
func WithStrictValidation() Option {
	return func(p *parser) {
		p.strict = true
	}
}

type parser struct {
	logger hclog.Logger
	strict bool
}

func newParser(opts []Option) *parser {
	p := &parser{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile loads the profile document at path and parses it.
func ParseFile(path string, opts ...Option) (*profile.Profile, error) {
	doc, err := xmldoc.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(doc, opts...)
}

// Parse reads a profile document from r and parses it.
func Parse(r io.Reader, opts ...Option) (*profile.Profile, error) {
	doc, err := xmldoc.Parse(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(doc, opts...)
}

// ParseDocument parses an already loaded document.
func ParseDocument(doc *xmldoc.Document, opts ...Option) (*profile.Profile, error) {
	p := newParser(opts)
	prof, err := p.parseProfile(doc.Root())
	if err != nil {
		return nil, err
	}
	if p.strict {
		if err := schema.Validate(prof); err != nil {
			return nil, err
		}
	}
	p.logger.Debug("parsed profile", "source", doc.Source(), "time_spans", len(prof.TimeSpans))
	return prof, nil
}

var profileElements = map[string]bool{
	"Verbose":        true,
	"Progress":       true,
	"ResultFormat":   true,
	"PrecreateFiles": true,
	"ETW":            true,
	"TimeSpans":      true,
}

func (p *parser) parseProfile(root *xmldoc.Node) (*profile.Profile, error) {
	prof := profile.New()
	warnUnknown(p, root, profileElements)

	verbose, ok, err := xmldoc.Bool(root, "Verbose")
	if err != nil {
		return nil, err
	}
	if ok {
		prof.Verbose = verbose
	}

	progress, ok, err := xmldoc.Uint32(root, "Progress")
	if err != nil {
		return nil, err
	}
	if ok {
		prof.Progress = progress
	}

	if err := parseResultFormat(root, prof); err != nil {
		return nil, err
	}
	if err := parsePrecreateFiles(root, prof); err != nil {
		return nil, err
	}

	if err := p.parseETW(root, prof); err != nil {
		return nil, err
	}

	spans, err := root.SelectAll("//Profile/TimeSpans/TimeSpan")
	if err != nil {
		return nil, err
	}
	for _, n := range spans {
		ts, err := p.parseTimeSpan(n)
		if err != nil {
			return nil, err
		}
		prof.AddTimeSpan(ts)
	}

	return prof, nil
}

func parseResultFormat(root *xmldoc.Node, prof *profile.Profile) error {
	n, err := root.Select("ResultFormat")
	if err != nil || n == nil {
		return err
	}
	format, ok := profile.ParseResultsFormat(strings.TrimSpace(n.Text()))
	if !ok {
		return xmldoc.Malformed(n, n.Text(), "ResultFormat must be text or xml")
	}
	prof.ResultsFormat = format
	return nil
}

func parsePrecreateFiles(root *xmldoc.Node, prof *profile.Profile) error {
	n, err := root.Select("PrecreateFiles")
	if err != nil || n == nil {
		return err
	}
	mode, ok := profile.ParsePrecreateFiles(strings.TrimSpace(n.Text()))
	if !ok {
		return xmldoc.Malformed(n, n.Text(),
			"PrecreateFiles must be UseMaxSize, CreateOnlyFilesWithConstantSizes or CreateOnlyFilesWithConstantOrZeroSizes")
	}
	prof.PrecreateFiles = mode
	return nil
}

func (p *parser) unknown(n *xmldoc.Node) {
	p.logger.Warn("ignoring unknown element", "element", n.Name(), "path", n.Path())
}
