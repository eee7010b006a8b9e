package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YT-Jin/diskspd/internal/profile"
)

// Formatter renders a profile as indented, optionally colored text
type Formatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new text formatter
func NewFormatter(noColor bool) *Formatter {
	return &Formatter{
		NoColor: noColor,
		scheme:  SchemeFor(noColor),
	}
}

// FormatProfile formats a profile for display
func (f *Formatter) FormatProfile(p *profile.Profile) (string, error) {
	if f.scheme == nil {
		f.scheme = SchemeFor(f.NoColor)
	}

	var buf strings.Builder
	buf.WriteString(f.scheme.Section.Sprint("Profile") + "\n")
	f.field(&buf, 1, "verbose", p.Verbose)
	f.field(&buf, 1, "progress", p.Progress)
	f.field(&buf, 1, "results format", p.ResultsFormat)
	f.field(&buf, 1, "precreate files", p.PrecreateFiles)
	f.formatETW(&buf, p.ETW)

	if len(p.TimeSpans) == 0 {
		buf.WriteString(f.scheme.Disabled.Sprint("  no time spans") + "\n")
	}
	for i, ts := range p.TimeSpans {
		f.formatTimeSpan(&buf, i+1, ts)
	}
	return buf.String(), nil
}

func (f *Formatter) formatETW(buf *strings.Builder, e profile.ETW) {
	if !e.Enabled {
		f.line(buf, 1, "etw", f.scheme.Disabled.Sprint("disabled"))
		return
	}

	var flags []string
	for _, flag := range []struct {
		name string
		on   bool
	}{
		{"Process", e.Process}, {"Thread", e.Thread}, {"ImageLoad", e.ImageLoad},
		{"DiskIO", e.DiskIO}, {"MemoryPageFaults", e.MemoryPageFaults},
		{"MemoryHardFaults", e.MemoryHardFaults}, {"Network", e.Network},
		{"Registry", e.Registry}, {"UsePagedMemory", e.UsePagedMemory},
		{"UsePerfTimer", e.UsePerfTimer}, {"UseSystemTimer", e.UseSystemTimer},
		{"UseCyclesCounter", e.UseCyclesCounter},
	} {
		if flag.on {
			flags = append(flags, flag.name)
		}
	}
	value := "enabled"
	if len(flags) > 0 {
		value += " (" + strings.Join(flags, ", ") + ")"
	}
	f.line(buf, 1, "etw", f.scheme.Success.Sprint(value))
}

func (f *Formatter) formatTimeSpan(buf *strings.Builder, index int, ts profile.TimeSpan) {
	buf.WriteString(f.scheme.Section.Sprintf("  Time span %d", index) + "\n")
	f.field(buf, 2, "duration", fmt.Sprintf("%ds", ts.Duration))
	f.field(buf, 2, "warmup", fmt.Sprintf("%ds", ts.Warmup))
	f.field(buf, 2, "cooldown", fmt.Sprintf("%ds", ts.Cooldown))
	f.field(buf, 2, "io bucket", fmt.Sprintf("%dms", ts.IoBucketDurationMs))
	if ts.ThreadCount > 0 {
		f.field(buf, 2, "threads", ts.ThreadCount)
	}
	if ts.RandSeed > 0 {
		f.field(buf, 2, "random seed", ts.RandSeed)
	}
	f.flags(buf, 2, map[string]bool{
		"affinity disabled":   ts.DisableAffinity,
		"completion routines": ts.CompletionRoutines,
		"measure latency":     ts.MeasureLatency,
		"iops std dev":        ts.CalculateIopsStdDev,
	})

	if len(ts.Affinity) > 0 {
		pairs := make([]string, len(ts.Affinity))
		for i, a := range ts.Affinity {
			pairs[i] = fmt.Sprintf("%d:%d", a.Group, a.Processor)
		}
		f.field(buf, 2, "affinity", strings.Join(pairs, ", "))
	}

	for i, t := range ts.Targets {
		f.formatTarget(buf, i+1, t)
	}
}

func (f *Formatter) formatTarget(buf *strings.Builder, index int, t profile.Target) {
	buf.WriteString(fmt.Sprintf("    %s %s\n",
		f.scheme.Highlight.Sprintf("Target %d", index), f.scheme.Path.Sprint(t.Path)))

	pattern := "sequential"
	if t.UseRandomAccessPattern {
		pattern = "random"
	}
	f.field(buf, 3, "block size", formatBytes(uint64(t.BlockSize)))
	f.field(buf, 3, "access", fmt.Sprintf("%s, aligned to %s", pattern, formatBytes(t.BlockAlignment)))
	f.field(buf, 3, "outstanding", fmt.Sprintf("%d per thread, %d thread(s)", t.RequestCount, t.ThreadsPerFile))
	f.field(buf, 3, "write ratio", fmt.Sprintf("%d%%", t.WriteRatio))
	f.field(buf, 3, "cache", t.CacheMode)
	f.field(buf, 3, "io priority", t.IOPriorityHint)

	if t.BaseFileOffset > 0 {
		f.field(buf, 3, "base offset", formatBytes(t.BaseFileOffset))
	}
	if t.CreateFile {
		f.field(buf, 3, "create with size", formatBytes(t.FileSize))
	}
	if t.MaxFileSize > 0 {
		f.field(buf, 3, "max size", formatBytes(t.MaxFileSize))
	}
	if t.ThreadStride > 0 {
		f.field(buf, 3, "thread stride", formatBytes(t.ThreadStride))
	}
	if t.UseBurstSize {
		f.field(buf, 3, "burst", t.BurstSize)
	}
	if t.EnableThinkTime {
		f.field(buf, 3, "think time", fmt.Sprintf("%dms", t.ThinkTime))
	}
	if t.Throughput > 0 {
		f.field(buf, 3, "throughput", fmt.Sprintf("%d bytes/ms", t.Throughput))
	}

	switch t.WriteBufferContent.Pattern {
	case profile.WriteBufferZero:
		f.field(buf, 3, "write buffer", "zero")
	case profile.WriteBufferRandom:
		value := fmt.Sprintf("random, %s", formatBytes(t.WriteBufferContent.RandomSizeBytes))
		if t.WriteBufferContent.RandomSourcePath != "" {
			value += " from " + t.WriteBufferContent.RandomSourcePath
		}
		f.field(buf, 3, "write buffer", value)
	}

	f.flags(buf, 3, map[string]bool{
		"sequential scan hint":   t.SequentialScanHint,
		"random access hint":     t.RandomAccessHint,
		"temporary file hint":    t.TemporaryFileHint,
		"large pages":            t.UseLargePages,
		"interlocked sequential": t.UseInterlockedSequential,
		"parallel async io":      t.UseParallelAsyncIO,
	})
}

func (f *Formatter) field(buf *strings.Builder, depth int, key string, value interface{}) {
	f.line(buf, depth, key, f.scheme.Value.Sprint(value))
}

func (f *Formatter) line(buf *strings.Builder, depth int, key, value string) {
	buf.WriteString(fmt.Sprintf("%s%s: %s\n", strings.Repeat("  ", depth), f.scheme.Key.Sprint(key), value))
}

// flags prints the names of the set flags on one line, sorted for stable output.
func (f *Formatter) flags(buf *strings.Builder, depth int, flags map[string]bool) {
	var on []string
	for name, set := range flags {
		if set {
			on = append(on, name)
		}
	}
	if len(on) == 0 {
		return
	}
	sort.Strings(on)
	f.field(buf, depth, "flags", strings.Join(on, ", "))
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit || n%unit != 0 {
		return fmt.Sprintf("%dB", n)
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	value := n / unit
	i := 0
	for value%unit == 0 && value >= unit && i < len(suffixes)-1 {
		value /= unit
		i++
	}
	return fmt.Sprintf("%d%s", value, suffixes[i])
}
