package config

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/YT-Jin/diskspd/internal/parser"
	"github.com/YT-Jin/diskspd/internal/profile"
)

// Profile is the complete configuration for one benchmark run.
type Profile = profile.Profile

// TimeSpan is one timed measurement window.
type TimeSpan = profile.TimeSpan

// Target is one I/O workload inside a time span.
type Target = profile.Target

// ETW holds event tracing options.
type ETW = profile.ETW

// AffinityAssignment binds worker threads to a processor in a group.
type AffinityAssignment = profile.AffinityAssignment

// Error kinds returned by LoadProfile and ParseProfile.
var (
	ErrDocumentNotFound  = parser.ErrDocumentNotFound
	ErrDocumentMalformed = parser.ErrDocumentMalformed
	ErrValueMalformed    = parser.ErrValueMalformed
	ErrValueOutOfRange   = parser.ErrValueOutOfRange
	ErrSchemaViolation   = parser.ErrSchemaViolation
)

// Option configures profile loading.
type Option = parser.Option

// WithLogger sets the logger that receives warnings about unknown elements.
// Without it those warnings are discarded.
func WithLogger(logger hclog.Logger) Option {
	return parser.WithLogger(logger)
}

// WithStrictValidation rejects profiles that could not be run.
func WithStrictValidation() Option {
	return parser.WithStrictValidation()
}

// LoadProfile loads and parses the profile at path.
func LoadProfile(path string, opts ...Option) (*Profile, error) {
	return parser.ParseFile(path, opts...)
}

// ParseProfile parses a profile document read from r.
func ParseProfile(r io.Reader, opts ...Option) (*Profile, error) {
	return parser.Parse(r, opts...)
}
