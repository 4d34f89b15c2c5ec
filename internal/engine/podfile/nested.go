package podfile

import "strings"

// Keywords that open a block closed by "end" when they start a statement.
var statementOpeners = map[string]bool{
	"if":     true,
	"unless": true,
	"while":  true,
	"until":  true,
	"case":   true,
	"begin":  true,
	"def":    true,
	"class":  true,
	"module": true,
	"for":    true,
}

var loopKeywords = map[string]bool{"while": true, "until": true, "for": true}

// balancedEnd scans body, which starts right after a "do" header, and returns the offset of the
// "end" that brings the block depth back to zero. Comments and quoted strings are skipped.
func balancedEnd(body string) (int, bool) {
	depth := 1
	lineStart := 0
	for lineStart < len(body) {
		lineEnd := strings.IndexByte(body[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(body)
		} else {
			lineEnd += lineStart
		}

		// "while x do" opens one block, not two.
		loopDo := false
		for _, w := range words(body[lineStart:lineEnd]) {
			switch {
			case w.text == "end":
				depth--
				if depth == 0 {
					return lineStart + w.offset, true
				}
			case w.text == "do":
				if loopDo {
					loopDo = false
					continue
				}
				depth++
			case w.first && statementOpeners[w.text]:
				depth++
				loopDo = loopKeywords[w.text]
			}
		}
		lineStart = lineEnd + 1
	}
	return 0, false
}

type word struct {
	text   string
	offset int
	// first is set for the first word of a statement.
	first bool
}

// words splits one line into bare identifiers. Method calls such as "x.end" and symbols such as
// ":end" are not reported.
func words(line string) []word {
	var out []word
	statementStart := true
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '#':
			return out
		case c == '\'' || c == '"':
			i = skipString(line, i)
			statementStart = false
		case c == ';':
			statementStart = true
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(line) && isIdentPart(line[j]) {
				j++
			}
			prev := byte(' ')
			if i > 0 {
				prev = line[i-1]
			}
			if prev != '.' && prev != ':' {
				out = append(out, word{text: line[i:j], offset: i, first: statementStart})
			}
			statementStart = false
			i = j
		default:
			if c != ' ' && c != '\t' {
				statementStart = false
			}
			i++
		}
	}
	return out
}

// skipString returns the index after the quoted string starting at i.
func skipString(line string, i int) int {
	quote := line[i]
	for j := i + 1; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		}
	}
	return len(line)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '?' || c == '!'
}
