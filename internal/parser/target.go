package parser

import (
	"fmt"
	"strings"

	"github.com/YT-Jin/diskspd/internal/profile"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

const maxWriteRatio = 100

// targetRules maps each Target child element to its effect. StrideSize and
// Random both write BlockAlignment; whichever comes later in the document wins.
var targetRules = map[string]rule[profile.Target]{
	"Path": parsePath,
	"BlockSize": uint32Rule(func(t *profile.Target, v uint32) {
		t.BlockSize = v
	}),
	"StrideSize": uint64Rule(func(t *profile.Target, v uint64) {
		t.BlockAlignment = v
	}),
	"InterlockedSequential": boolRule(func(t *profile.Target, v bool) {
		t.UseInterlockedSequential = v
	}),
	"BaseFileOffset": uint64Rule(func(t *profile.Target, v uint64) {
		t.BaseFileOffset = v
	}),
	"SequentialScan": boolRule(func(t *profile.Target, v bool) {
		t.SequentialScanHint = v
	}),
	"RandomAccess": boolRule(func(t *profile.Target, v bool) {
		t.RandomAccessHint = v
	}),
	"TemporaryFile": boolRule(func(t *profile.Target, v bool) {
		t.TemporaryFileHint = v
	}),
	"UseLargePages": boolRule(func(t *profile.Target, v bool) {
		t.UseLargePages = v
	}),
	"RequestCount": uint32Rule(func(t *profile.Target, v uint32) {
		t.RequestCount = v
	}),
	"Random": uint64Rule(func(t *profile.Target, v uint64) {
		t.UseRandomAccessPattern = true
		t.BlockAlignment = v
	}),
	"DisableOSCache":     cacheRule(profile.CacheModeDisableOSCache),
	"DisableAllCache":    cacheRule(profile.CacheModeDisableAllCache),
	"DisableLocalCache":  cacheRule(profile.CacheModeDisableLocalCache),
	"WriteBufferContent": parseWriteBufferContent,
	"BurstSize": uint32Rule(func(t *profile.Target, v uint32) {
		t.BurstSize = v
		t.UseBurstSize = true
	}),
	"ThinkTime": uint32Rule(func(t *profile.Target, v uint32) {
		t.ThinkTime = v
		t.EnableThinkTime = true
	}),
	"Throughput": uint32Rule(func(t *profile.Target, v uint32) {
		t.Throughput = v
	}),
	"ThreadsPerFile": uint32Rule(func(t *profile.Target, v uint32) {
		t.ThreadsPerFile = v
	}),
	"FileSize": uint64Rule(func(t *profile.Target, v uint64) {
		t.FileSize = v
		t.CreateFile = true
	}),
	"MaxFileSize": uint64Rule(func(t *profile.Target, v uint64) {
		t.MaxFileSize = v
	}),
	"WriteRatio": parseWriteRatio,
	"ParallelAsyncIO": boolRule(func(t *profile.Target, v bool) {
		t.UseParallelAsyncIO = v
	}),
	"ThreadStride": uint64Rule(func(t *profile.Target, v uint64) {
		t.ThreadStride = v
	}),
	"IOPriority": parseIOPriority,
}

// parseTarget builds one Target from its element, starting from defaults.
func (p *parser) parseTarget(n *xmldoc.Node) (profile.Target, error) {
	t := profile.NewTarget()
	if err := applyRules(p, n, targetRules, &t); err != nil {
		return profile.Target{}, err
	}
	if t.Path == "" {
		return profile.Target{}, xmldoc.Malformed(n, "", "target requires a non-empty Path")
	}
	return t, nil
}

func parsePath(n *xmldoc.Node, t *profile.Target) error {
	path := n.Text()
	if path == "" {
		return xmldoc.Malformed(n, path, "path must not be empty")
	}
	t.Path = path
	return nil
}

// cacheRule sets the cache mode when the flag is true. A false flag leaves
// the current mode alone, so the last true flag in the document wins.
func cacheRule(mode profile.CacheMode) rule[profile.Target] {
	return boolRule(func(t *profile.Target, v bool) {
		if v {
			t.CacheMode = mode
		}
	})
}

func parseWriteRatio(n *xmldoc.Node, t *profile.Target) error {
	v, err := xmldoc.ParseUint32(n)
	if err != nil {
		return err
	}
	if v > maxWriteRatio {
		return xmldoc.OutOfRange(n, n.Text(), fmt.Sprintf("WriteRatio must be between 0 and %d", maxWriteRatio))
	}
	t.WriteRatio = v
	return nil
}

func parseIOPriority(n *xmldoc.Node, t *profile.Target) error {
	v, err := xmldoc.ParseUint32(n)
	if err != nil {
		return err
	}
	hint, ok := profile.IOPriorityFromLevel(v)
	if !ok {
		return xmldoc.OutOfRange(n, n.Text(), "IOPriority must be 1 (very low), 2 (low) or 3 (normal)")
	}
	t.IOPriorityHint = hint
	return nil
}

// parseWriteBufferContent reads the Pattern keyword and, for random
// content, its single RandomDataSource.
func parseWriteBufferContent(n *xmldoc.Node, t *profile.Target) error {
	keyword, ok, err := xmldoc.String(n, "Pattern")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	keyword = strings.TrimSpace(keyword)

	pattern, known := profile.ParseWriteBufferPattern(keyword)
	if !known {
		patternNode, _ := n.Select("Pattern")
		return xmldoc.Malformed(patternNode, keyword, "Pattern must be sequential, zero or random")
	}

	switch pattern {
	case profile.WriteBufferSequential:
		// default content, nothing to record
	case profile.WriteBufferZero:
		t.WriteBufferContent = profile.WriteBufferContent{Pattern: profile.WriteBufferZero}
	case profile.WriteBufferRandom:
		content, err := parseRandomDataSource(n)
		if err != nil {
			return err
		}
		t.WriteBufferContent = content
	}
	return nil
}

func parseRandomDataSource(n *xmldoc.Node) (profile.WriteBufferContent, error) {
	sources, err := n.SelectAll("RandomDataSource")
	if err != nil {
		return profile.WriteBufferContent{}, err
	}
	if len(sources) != 1 {
		return profile.WriteBufferContent{}, xmldoc.Malformed(n, "",
			fmt.Sprintf("random pattern requires exactly one RandomDataSource, found %d", len(sources)))
	}
	src := sources[0]

	size, ok, err := xmldoc.Uint64(src, "SizeInBytes")
	if err != nil {
		return profile.WriteBufferContent{}, err
	}
	if !ok {
		return profile.WriteBufferContent{}, xmldoc.Malformed(src, "", "RandomDataSource requires SizeInBytes")
	}

	content := profile.WriteBufferContent{Pattern: profile.WriteBufferRandom, RandomSizeBytes: size}

	filePath, ok, err := xmldoc.String(src, "FilePath")
	if err != nil {
		return profile.WriteBufferContent{}, err
	}
	if ok {
		content.RandomSourcePath = filePath
	}
	return content, nil
}
