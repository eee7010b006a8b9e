// Package profile holds the value model of a benchmark profile: the timed
// measurement windows, the I/O workloads exercised in each window, event
// tracing options and result-emission preferences.
//
// Values are built by the parser starting from the constructor defaults and
// are treated as read-only once handed to the benchmark engine.
//
// Example YAML rendering:
//
//	verbose: false
//	progress: 0
//	resultsFormat: text
//	precreateFiles: None
//	timeSpans:
//	  - duration: 10
//	    warmup: 5
//	    targets:
//	      - path: /data/testfile.dat
//	        blockSize: 65536
package profile

// Profile is the complete configuration for one benchmark run.
type Profile struct {
	// Verbose enables verbose engine output
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Progress is the period of progress output, 0 disables it
	Progress uint32 `json:"progress" yaml:"progress"`

	// ResultsFormat selects how results are emitted
	ResultsFormat ResultsFormat `json:"resultsFormat" yaml:"resultsFormat"`

	// PrecreateFiles controls which target files are created before the run
	PrecreateFiles PrecreateFiles `json:"precreateFiles" yaml:"precreateFiles"`

	// ETW holds event tracing options, disabled unless a flag was given
	ETW ETW `json:"etw" yaml:"etw"`

	// TimeSpans are the measurement windows, in document order
	TimeSpans []TimeSpan `json:"timeSpans,omitempty" yaml:"timeSpans,omitempty"`
}

// New returns a Profile with every field at its default.
func New() *Profile {
	return &Profile{
		ResultsFormat:  ResultsFormatText,
		PrecreateFiles: PrecreateFilesNone,
	}
}

// AddTimeSpan appends a measurement window.
func (p *Profile) AddTimeSpan(ts TimeSpan) {
	p.TimeSpans = append(p.TimeSpans, ts)
}

// ETW is the flat set of event tracing flags.
//
// Enabled is set whenever any flag is present in the profile, regardless of
// the flag's value.
type ETW struct {
	Enabled          bool `json:"enabled" yaml:"enabled"`
	Process          bool `json:"process" yaml:"process"`
	Thread           bool `json:"thread" yaml:"thread"`
	ImageLoad        bool `json:"imageLoad" yaml:"imageLoad"`
	DiskIO           bool `json:"diskIO" yaml:"diskIO"`
	MemoryPageFaults bool `json:"memoryPageFaults" yaml:"memoryPageFaults"`
	MemoryHardFaults bool `json:"memoryHardFaults" yaml:"memoryHardFaults"`
	Network          bool `json:"network" yaml:"network"`
	Registry         bool `json:"registry" yaml:"registry"`
	UsePagedMemory   bool `json:"usePagedMemory" yaml:"usePagedMemory"`
	UsePerfTimer     bool `json:"usePerfTimer" yaml:"usePerfTimer"`
	UseSystemTimer   bool `json:"useSystemTimer" yaml:"useSystemTimer"`
	UseCyclesCounter bool `json:"useCyclesCounter" yaml:"useCyclesCounter"`
}
