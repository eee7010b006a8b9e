// Package config loads storage benchmark profiles for programmatic use.
//
// A profile is an XML document describing one benchmark run: global result
// and tracing options plus an ordered list of time spans, each with its own
// targets. Loading fills every field the document leaves out with its
// default, and fails on the first malformed or out-of-range value.
//
// Basic Usage:
//
//	p, err := config.LoadProfile("profile.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, ts := range p.TimeSpans {
//	    fmt.Printf("duration %ds, %d target(s)\n", ts.Duration, len(ts.Targets))
//	}
//
// Matching Errors:
//
// Each failure carries one of the error kinds below and can be matched with
// errors.Is:
//
//	if errors.Is(err, config.ErrValueOutOfRange) {
//	    // a value was well formed but outside its domain
//	}
//
// Runnable Profiles:
//
// By default an empty workload loads successfully. WithStrictValidation or
// ValidateProfile additionally require at least one time span and a target
// in every time span:
//
//	p, err := config.LoadProfile("profile.xml", config.WithStrictValidation())
package config
