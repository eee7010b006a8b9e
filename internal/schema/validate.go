// Package schema validates a parsed profile against the structural schema
// of a runnable profile: at least one time span, every time span with at
// least one target, sane block and queue sizes.
//
// The parser itself only enforces per-value domain constraints; this check
// is opt-in.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/YT-Jin/diskspd/internal/profile"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

//go:embed profile.schema.json
var profileSchema string

var compiled = jsonschema.MustCompileString("profile.schema.json", profileSchema)

// Validate checks p against the profile schema. Every violation is collected
// into a single SchemaViolation error.
func Validate(p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed encoding profile for validation")
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "failed decoding profile for validation")
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil
	}

	var result *multierror.Error
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		result = multierror.Append(result, violations(verr)...)
	} else {
		result = multierror.Append(result, err)
	}

	return &xmldoc.Error{
		Kind:   xmldoc.SchemaViolation,
		Reason: "profile is not runnable",
		Err:    result.ErrorOrNil(),
	}
}

// violations flattens a validation error tree into its leaf messages.
func violations(err *jsonschema.ValidationError) []error {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []error{fmt.Errorf("%s: %s", location, err.Message)}
	}

	var errs []error
	for _, cause := range err.Causes {
		errs = append(errs, violations(cause)...)
	}
	return errs
}
