package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YT-Jin/diskspd/internal/profile"
)

func parseTargetXML(t *testing.T, body string) (profile.Target, error) {
	t.Helper()
	doc := `<Profile><TimeSpans><TimeSpan><Targets><Target>` + body + `</Target></Targets></TimeSpan></TimeSpans></Profile>`
	p, err := parseString(t, doc)
	if err != nil {
		return profile.Target{}, err
	}
	require.Len(t, p.TimeSpans, 1)
	require.Len(t, p.TimeSpans[0].Targets, 1)
	return p.TimeSpans[0].Targets[0], nil
}

func TestTarget_DefaultsForPathOnly(t *testing.T) {
	tgt, err := parseTargetXML(t, `<Path>#1</Path>`)
	require.NoError(t, err)

	expected := profile.NewTarget()
	expected.Path = "#1"
	assert.Equal(t, expected, tgt)
}

func TestTarget_S4_Fields(t *testing.T) {
	tgt, err := parseTargetXML(t, `
		<Path>x.dat</Path>
		<BlockSize>8192</BlockSize>
		<Random>4096</Random>
		<DisableOSCache>true</DisableOSCache>
		<WriteRatio>30</WriteRatio>`)
	require.NoError(t, err)

	expected := profile.NewTarget()
	expected.Path = "x.dat"
	expected.BlockSize = 8192
	expected.UseRandomAccessPattern = true
	expected.BlockAlignment = 4096
	expected.CacheMode = profile.CacheModeDisableOSCache
	expected.WriteRatio = 30
	assert.Equal(t, expected, tgt)
}

func TestTarget_AllFields(t *testing.T) {
	tgt, err := parseTargetXML(t, `
		<Path>/dev/sdb</Path>
		<BlockSize>4096</BlockSize>
		<StrideSize>8192</StrideSize>
		<InterlockedSequential>true</InterlockedSequential>
		<BaseFileOffset>1048576</BaseFileOffset>
		<SequentialScan>true</SequentialScan>
		<RandomAccess>true</RandomAccess>
		<TemporaryFile>true</TemporaryFile>
		<UseLargePages>true</UseLargePages>
		<RequestCount>32</RequestCount>
		<BurstSize>4</BurstSize>
		<ThinkTime>10</ThinkTime>
		<Throughput>1000</Throughput>
		<ThreadsPerFile>4</ThreadsPerFile>
		<FileSize>1073741824</FileSize>
		<MaxFileSize>2147483648</MaxFileSize>
		<ParallelAsyncIO>true</ParallelAsyncIO>
		<ThreadStride>65536</ThreadStride>
		<IOPriority>1</IOPriority>`)
	require.NoError(t, err)

	assert.Equal(t, "/dev/sdb", tgt.Path)
	assert.Equal(t, uint32(4096), tgt.BlockSize)
	assert.Equal(t, uint64(8192), tgt.BlockAlignment)
	assert.False(t, tgt.UseRandomAccessPattern)
	assert.True(t, tgt.UseInterlockedSequential)
	assert.Equal(t, uint64(1048576), tgt.BaseFileOffset)
	assert.True(t, tgt.SequentialScanHint)
	assert.True(t, tgt.RandomAccessHint)
	assert.True(t, tgt.TemporaryFileHint)
	assert.True(t, tgt.UseLargePages)
	assert.Equal(t, uint32(32), tgt.RequestCount)
	assert.Equal(t, uint32(4), tgt.BurstSize)
	assert.True(t, tgt.UseBurstSize)
	assert.Equal(t, uint32(10), tgt.ThinkTime)
	assert.True(t, tgt.EnableThinkTime)
	assert.Equal(t, uint32(1000), tgt.Throughput)
	assert.Equal(t, uint32(4), tgt.ThreadsPerFile)
	assert.Equal(t, uint64(1073741824), tgt.FileSize)
	assert.True(t, tgt.CreateFile)
	assert.Equal(t, uint64(2147483648), tgt.MaxFileSize)
	assert.True(t, tgt.UseParallelAsyncIO)
	assert.Equal(t, uint64(65536), tgt.ThreadStride)
	assert.Equal(t, profile.IOPriorityVeryLow, tgt.IOPriorityHint)
}

func TestTarget_LargeOffsets(t *testing.T) {
	tgt, err := parseTargetXML(t, `<Path>p</Path><BaseFileOffset>18446744073709551615</BaseFileOffset>`)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), tgt.BaseFileOffset)

	_, err = parseTargetXML(t, `<Path>p</Path><BlockSize>4294967296</BlockSize>`)
	assert.True(t, errors.Is(err, ErrValueMalformed), "uint32 overflow, got %v", err)
}

func TestTarget_AlignmentLastWins(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		alignment  uint64
		randomized bool
	}{
		{
			name:       "random after stride",
			body:       `<Path>p</Path><StrideSize>8192</StrideSize><Random>4096</Random>`,
			alignment:  4096,
			randomized: true,
		},
		{
			name:       "stride after random",
			body:       `<Path>p</Path><Random>4096</Random><StrideSize>8192</StrideSize>`,
			alignment:  8192,
			randomized: true,
		},
		{
			name:      "stride only",
			body:      `<Path>p</Path><StrideSize>512</StrideSize>`,
			alignment: 512,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := parseTargetXML(t, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.alignment, tgt.BlockAlignment)
			assert.Equal(t, tt.randomized, tgt.UseRandomAccessPattern)
		})
	}
}

func TestTarget_CacheMode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected profile.CacheMode
	}{
		{name: "none", body: ``, expected: profile.CacheModeDefault},
		{name: "os cache", body: `<DisableOSCache>true</DisableOSCache>`, expected: profile.CacheModeDisableOSCache},
		{name: "all cache", body: `<DisableAllCache>true</DisableAllCache>`, expected: profile.CacheModeDisableAllCache},
		{name: "local cache", body: `<DisableLocalCache>true</DisableLocalCache>`, expected: profile.CacheModeDisableLocalCache},
		{name: "false flag", body: `<DisableOSCache>false</DisableOSCache>`, expected: profile.CacheModeDefault},
		{
			name:     "last true wins",
			body:     `<DisableAllCache>true</DisableAllCache><DisableOSCache>true</DisableOSCache>`,
			expected: profile.CacheModeDisableOSCache,
		},
		{
			name:     "later false does not reset",
			body:     `<DisableLocalCache>true</DisableLocalCache><DisableOSCache>false</DisableOSCache>`,
			expected: profile.CacheModeDisableLocalCache,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := parseTargetXML(t, `<Path>p</Path>`+tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tgt.CacheMode)
		})
	}
}

func TestTarget_RangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "write ratio 100", body: `<WriteRatio>100</WriteRatio>`},
		{name: "write ratio 101", body: `<WriteRatio>101</WriteRatio>`, wantErr: ErrValueOutOfRange},
		{name: "io priority 0", body: `<IOPriority>0</IOPriority>`, wantErr: ErrValueOutOfRange},
		{name: "io priority 3", body: `<IOPriority>3</IOPriority>`},
		{name: "io priority 4", body: `<IOPriority>4</IOPriority>`, wantErr: ErrValueOutOfRange},
		{name: "io priority word", body: `<IOPriority>low</IOPriority>`, wantErr: ErrValueMalformed},
		{name: "negative block size", body: `<BlockSize>-4096</BlockSize>`, wantErr: ErrValueMalformed},
		{name: "bad hint", body: `<SequentialScan>1</SequentialScan>`, wantErr: ErrValueMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTargetXML(t, `<Path>p</Path>`+tt.body)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTarget_IOPriorityLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected profile.IOPriorityHint
	}{
		{"1", profile.IOPriorityVeryLow},
		{"2", profile.IOPriorityLow},
		{"3", profile.IOPriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			tgt, err := parseTargetXML(t, `<Path>p</Path><IOPriority>`+tt.level+`</IOPriority>`)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tgt.IOPriorityHint)
		})
	}
}

func TestTarget_Path(t *testing.T) {
	_, err := parseTargetXML(t, `<BlockSize>4096</BlockSize>`)
	assert.True(t, errors.Is(err, ErrValueMalformed), "missing path, got %v", err)

	_, err = parseTargetXML(t, `<Path></Path>`)
	assert.True(t, errors.Is(err, ErrValueMalformed), "empty path, got %v", err)

	tgt, err := parseTargetXML(t, `<Path>first</Path><Path>second</Path>`)
	require.NoError(t, err)
	assert.Equal(t, "second", tgt.Path)
}

func TestTarget_S6_WriteBufferContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected profile.WriteBufferContent
		wantErr  error
	}{
		{
			name:     "random with source file",
			content:  `<Pattern>random</Pattern><RandomDataSource><SizeInBytes>1048576</SizeInBytes><FilePath>r.bin</FilePath></RandomDataSource>`,
			expected: profile.WriteBufferContent{Pattern: profile.WriteBufferRandom, RandomSizeBytes: 1048576, RandomSourcePath: "r.bin"},
		},
		{
			name:     "random without source file",
			content:  `<Pattern>random</Pattern><RandomDataSource><SizeInBytes>4096</SizeInBytes></RandomDataSource>`,
			expected: profile.WriteBufferContent{Pattern: profile.WriteBufferRandom, RandomSizeBytes: 4096},
		},
		{
			name:     "zero",
			content:  `<Pattern>zero</Pattern>`,
			expected: profile.WriteBufferContent{Pattern: profile.WriteBufferZero},
		},
		{
			name:     "sequential",
			content:  `<Pattern>sequential</Pattern>`,
			expected: profile.WriteBufferContent{},
		},
		{
			name:     "no pattern",
			content:  ``,
			expected: profile.WriteBufferContent{},
		},
		{
			name:    "unknown pattern",
			content: `<Pattern>ones</Pattern>`,
			wantErr: ErrValueMalformed,
		},
		{
			name:    "random without source",
			content: `<Pattern>random</Pattern>`,
			wantErr: ErrValueMalformed,
		},
		{
			name: "random with two sources",
			content: `<Pattern>random</Pattern>
				<RandomDataSource><SizeInBytes>1</SizeInBytes></RandomDataSource>
				<RandomDataSource><SizeInBytes>2</SizeInBytes></RandomDataSource>`,
			wantErr: ErrValueMalformed,
		},
		{
			name:    "random without size",
			content: `<Pattern>random</Pattern><RandomDataSource><FilePath>r.bin</FilePath></RandomDataSource>`,
			wantErr: ErrValueMalformed,
		},
		{
			name:    "random with bad size",
			content: `<Pattern>random</Pattern><RandomDataSource><SizeInBytes>1MB</SizeInBytes></RandomDataSource>`,
			wantErr: ErrValueMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := parseTargetXML(t, `<Path>p</Path><WriteBufferContent>`+tt.content+`</WriteBufferContent>`)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tgt.WriteBufferContent)
		})
	}
}
