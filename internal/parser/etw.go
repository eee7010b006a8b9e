package parser

import (
	"github.com/YT-Jin/diskspd/internal/profile"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

// etwRules maps each recognized ETW flag to its field. Any present flag,
// true or false, enables tracing.
var etwRules = map[string]rule[profile.ETW]{
	"Process":          etwFlag(func(e *profile.ETW, v bool) { e.Process = v }),
	"Thread":           etwFlag(func(e *profile.ETW, v bool) { e.Thread = v }),
	"ImageLoad":        etwFlag(func(e *profile.ETW, v bool) { e.ImageLoad = v }),
	"DiskIO":           etwFlag(func(e *profile.ETW, v bool) { e.DiskIO = v }),
	"MemoryPageFaults": etwFlag(func(e *profile.ETW, v bool) { e.MemoryPageFaults = v }),
	"MemoryHardFaults": etwFlag(func(e *profile.ETW, v bool) { e.MemoryHardFaults = v }),
	"Network":          etwFlag(func(e *profile.ETW, v bool) { e.Network = v }),
	"Registry":         etwFlag(func(e *profile.ETW, v bool) { e.Registry = v }),
	"UsePagedMemory":   etwFlag(func(e *profile.ETW, v bool) { e.UsePagedMemory = v }),
	"UsePerfTimer":     etwFlag(func(e *profile.ETW, v bool) { e.UsePerfTimer = v }),
	"UseSystemTimer":   etwFlag(func(e *profile.ETW, v bool) { e.UseSystemTimer = v }),
	"UseCyclesCounter": etwFlag(func(e *profile.ETW, v bool) { e.UseCyclesCounter = v }),
}

func etwFlag(set func(e *profile.ETW, v bool)) rule[profile.ETW] {
	return boolRule(func(e *profile.ETW, v bool) {
		set(e, v)
		e.Enabled = true
	})
}

// parseETW reads the ETW block, if any, into p.ETW.
func (p *parser) parseETW(root *xmldoc.Node, prof *profile.Profile) error {
	n, err := root.Select("//Profile/ETW")
	if err != nil || n == nil {
		return err
	}

	etw := prof.ETW
	if err := applyRules(p, n, etwRules, &etw); err != nil {
		return err
	}
	prof.ETW = etw
	return nil
}
