package config

import (
	"github.com/YT-Jin/diskspd/internal/schema"
)

// ValidateProfile checks that p could be run: at least one time span, a
// target in every time span, and sane sizes. All violations are reported
// together in a single error matching ErrSchemaViolation.
func ValidateProfile(p *Profile) error {
	return schema.Validate(p)
}
