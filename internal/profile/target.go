package profile

// Default Target values.
const (
	DefaultBlockSize      = 64 * 1024
	DefaultRequestCount   = 2
	DefaultThreadsPerFile = 1
)

// Target is one file or device workload within a time span.
type Target struct {
	// Path of the file or device
	Path string `json:"path" yaml:"path"`

	// BlockSize of each I/O, in bytes
	BlockSize uint32 `json:"blockSize" yaml:"blockSize"`

	// BlockAlignment is the stride between I/Os, in bytes. Written by both
	// StrideSize and Random.
	BlockAlignment uint64 `json:"blockAlignment" yaml:"blockAlignment"`

	BaseFileOffset uint64 `json:"baseFileOffset" yaml:"baseFileOffset"`

	// FileSize is the size to create the file with, see CreateFile
	FileSize    uint64 `json:"fileSize" yaml:"fileSize"`
	MaxFileSize uint64 `json:"maxFileSize" yaml:"maxFileSize"`
	CreateFile  bool   `json:"createFile" yaml:"createFile"`

	ThreadStride uint64 `json:"threadStride" yaml:"threadStride"`

	// RequestCount is the number of outstanding I/Os per thread
	RequestCount uint32 `json:"requestCount" yaml:"requestCount"`

	BurstSize    uint32 `json:"burstSize" yaml:"burstSize"`
	UseBurstSize bool   `json:"useBurstSize" yaml:"useBurstSize"`

	// ThinkTime between bursts, in milliseconds
	ThinkTime       uint32 `json:"thinkTime" yaml:"thinkTime"`
	EnableThinkTime bool   `json:"enableThinkTime" yaml:"enableThinkTime"`

	// Throughput limit in bytes per millisecond, 0 means unthrottled
	Throughput     uint32 `json:"throughput" yaml:"throughput"`
	ThreadsPerFile uint32 `json:"threadsPerFile" yaml:"threadsPerFile"`

	// WriteRatio is the percentage of writes, 0-100
	WriteRatio uint32 `json:"writeRatio" yaml:"writeRatio"`

	SequentialScanHint       bool `json:"sequentialScanHint" yaml:"sequentialScanHint"`
	RandomAccessHint         bool `json:"randomAccessHint" yaml:"randomAccessHint"`
	TemporaryFileHint        bool `json:"temporaryFileHint" yaml:"temporaryFileHint"`
	UseLargePages            bool `json:"useLargePages" yaml:"useLargePages"`
	UseInterlockedSequential bool `json:"useInterlockedSequential" yaml:"useInterlockedSequential"`
	UseParallelAsyncIO       bool `json:"useParallelAsyncIO" yaml:"useParallelAsyncIO"`

	CacheMode CacheMode `json:"cacheMode" yaml:"cacheMode"`

	UseRandomAccessPattern bool `json:"useRandomAccessPattern" yaml:"useRandomAccessPattern"`

	WriteBufferContent WriteBufferContent `json:"writeBufferContent" yaml:"writeBufferContent"`

	IOPriorityHint IOPriorityHint `json:"ioPriorityHint" yaml:"ioPriorityHint"`
}

// NewTarget returns a Target with every field at its default.
func NewTarget() Target {
	return Target{
		BlockSize:      DefaultBlockSize,
		RequestCount:   DefaultRequestCount,
		ThreadsPerFile: DefaultThreadsPerFile,
		CacheMode:      CacheModeDefault,
		IOPriorityHint: IOPriorityNormal,
		WriteBufferContent: WriteBufferContent{
			Pattern: WriteBufferSequential,
		},
	}
}

// WriteBufferContent selects the byte pattern written during write I/O.
type WriteBufferContent struct {
	Pattern WriteBufferPattern `json:"pattern" yaml:"pattern"`

	// RandomSizeBytes is the size of the random buffer (Random only)
	RandomSizeBytes uint64 `json:"randomSizeBytes,omitempty" yaml:"randomSizeBytes,omitempty"`

	// RandomSourcePath optionally seeds the random buffer from a file (Random only)
	RandomSourcePath string `json:"randomSourcePath,omitempty" yaml:"randomSourcePath,omitempty"`
}

// IsZero reports whether write buffers are zero filled.
func (w WriteBufferContent) IsZero() bool {
	return w.Pattern == WriteBufferZero
}

// IsRandom reports whether write buffers come from a random data source.
func (w WriteBufferContent) IsRandom() bool {
	return w.Pattern == WriteBufferRandom
}
