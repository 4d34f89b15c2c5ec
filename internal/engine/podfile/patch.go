// Package podfile inserts generated configuration into a CocoaPods lifecycle hook.
//
// The patcher works on plain text. It does not parse Ruby: an existing hook is located with a
// header pattern and its closing "end" is found either greedily (the last "end" in the
// document) or by balancing block keywords. Both are heuristics. Delimiter-like text inside
// strings or heredocs can mislead them.
package podfile

import (
	"regexp"
	"strings"

	"go.trai.ch/spmlink/internal/core/domain"
)

var endToken = regexp.MustCompile(`\bend\b`)

// Patcher splices a marked block into a named hook of a build script.
type Patcher struct {
	hook     string
	hookArgs string
	strategy domain.SpliceStrategy
	header   *regexp.Regexp
}

// NewPatcher creates a Patcher for the hook described by settings.
func NewPatcher(settings domain.PodfileSettings) *Patcher {
	strategy := settings.Strategy
	if strategy == "" {
		strategy = domain.SpliceGreedy
	}
	return &Patcher{
		hook:     settings.Hook,
		hookArgs: settings.HookArgs,
		strategy: strategy,
		// The header stops after "do" and its block parameters so a hook that closes on the
		// same line still has its "end" in the body.
		header: regexp.MustCompile(
			`(?m)^[ \t]*` + regexp.QuoteMeta(settings.Hook) + `\b[^\n]*?\bdo\b(?:[ \t]*\|[^|\n]*\|)?`,
		),
	}
}

// Patch returns script with block inserted into the hook.
//
// A script that already contains marker is returned unchanged. Otherwise the block is spliced
// before the closing "end" of the existing hook, or a new hook wrapping the block is appended.
// The block should contain marker so that a second Patch is a no-op.
func (p *Patcher) Patch(script, marker, block string) string {
	if marker != "" && strings.Contains(script, marker) {
		return script
	}
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}

	if pos, ok := p.closingEnd(script); ok {
		return splice(script, pos, block)
	}
	return p.appendHook(script, block)
}

// closingEnd returns the offset of the "end" that closes the hook block.
func (p *Patcher) closingEnd(script string) (int, bool) {
	loc := p.header.FindStringIndex(script)
	if loc == nil {
		return 0, false
	}
	body := script[loc[1]:]

	var rel int
	var ok bool
	switch p.strategy {
	case domain.SpliceNested:
		rel, ok = balancedEnd(body)
	default:
		rel, ok = lastEnd(body)
	}
	if !ok {
		return 0, false
	}
	return loc[1] + rel, true
}

// lastEnd returns the offset of the last "end" token in body.
func lastEnd(body string) (int, bool) {
	all := endToken.FindAllStringIndex(body, -1)
	if len(all) == 0 {
		return 0, false
	}
	return all[len(all)-1][0], true
}

// splice inserts block before the "end" at pos. When "end" is the first token on its line the
// block is indented to match it and inserted as whole lines.
func splice(script string, pos int, block string) string {
	lineStart := strings.LastIndexByte(script[:pos], '\n') + 1
	indent := script[lineStart:pos]

	if strings.TrimLeft(indent, " \t") != "" {
		return script[:pos] + "\n" + block + script[pos:]
	}
	return script[:lineStart] + indentBlock(block, indent) + script[lineStart:]
}

func indentBlock(block, indent string) string {
	if indent == "" {
		return block
	}
	lines := strings.SplitAfter(block, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent)
		}
		b.WriteString(line)
	}
	return b.String()
}

func (p *Patcher) appendHook(script, block string) string {
	var b strings.Builder
	b.WriteString(script)
	if script != "" {
		if !strings.HasSuffix(script, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(p.hook)
	b.WriteString(" do")
	if p.hookArgs != "" {
		b.WriteString(" |" + p.hookArgs + "|")
	}
	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString("end\n")
	return b.String()
}
