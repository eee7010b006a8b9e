package profile

// Default TimeSpan values.
const (
	DefaultDuration           = 10
	DefaultWarmup             = 5
	DefaultIoBucketDurationMs = 1000
)

// TimeSpan is one measurement window with its own warmup, cooldown and
// workload set.
type TimeSpan struct {
	// Duration of the measured part of the window, in seconds
	Duration uint32 `json:"duration" yaml:"duration"`

	// Warmup before measurement starts, in seconds
	Warmup uint32 `json:"warmup" yaml:"warmup"`

	// Cooldown after measurement ends, in seconds
	Cooldown uint32 `json:"cooldown" yaml:"cooldown"`

	RandSeed    uint32 `json:"randSeed" yaml:"randSeed"`
	ThreadCount uint32 `json:"threadCount" yaml:"threadCount"`

	DisableAffinity     bool `json:"disableAffinity" yaml:"disableAffinity"`
	CompletionRoutines  bool `json:"completionRoutines" yaml:"completionRoutines"`
	MeasureLatency      bool `json:"measureLatency" yaml:"measureLatency"`
	CalculateIopsStdDev bool `json:"calculateIopsStdDev" yaml:"calculateIopsStdDev"`

	// IoBucketDurationMs is the IOPS sampling bucket, in milliseconds
	IoBucketDurationMs uint32 `json:"ioBucketDurationMs" yaml:"ioBucketDurationMs"`

	// Affinity binds worker threads to processors, in assignment order
	Affinity []AffinityAssignment `json:"affinity,omitempty" yaml:"affinity,omitempty"`

	// Targets are the workloads of this window, in document order
	Targets []Target `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// NewTimeSpan returns a TimeSpan with every field at its default.
func NewTimeSpan() TimeSpan {
	return TimeSpan{
		Duration:           DefaultDuration,
		Warmup:             DefaultWarmup,
		IoBucketDurationMs: DefaultIoBucketDurationMs,
	}
}

// AddAffinityAssignment appends a (group, processor) pair.
func (ts *TimeSpan) AddAffinityAssignment(group uint16, processor uint8) {
	ts.Affinity = append(ts.Affinity, AffinityAssignment{Group: group, Processor: processor})
}

// AddTarget appends a workload.
func (ts *TimeSpan) AddTarget(t Target) {
	ts.Targets = append(ts.Targets, t)
}

// AffinityAssignment is a (processor group, processor index) pair.
type AffinityAssignment struct {
	Group     uint16 `json:"group" yaml:"group"`
	Processor uint8  `json:"processor" yaml:"processor"`
}
