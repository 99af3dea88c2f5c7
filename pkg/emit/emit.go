// Package emit joins a translator's output token sequence into
// readable Rust source text. The translator core deliberately stays
// agnostic to formatting; this package is the caller responsible for
// joining its output into text.
package emit

import "strings"

// noSpaceBefore holds punctuation that should hug the token to its
// left rather than get a leading space.
var noSpaceBefore = map[string]bool{
	";": true,
	",": true,
	":": true,
	")": true,
	"]": true,
}

// noSpaceAfter holds punctuation that should hug the token to its
// right rather than get a trailing space.
var noSpaceAfter = map[string]bool{
	"(": true,
	"[": true,
}

// Join renders a token sequence as a single string, spacing tokens the
// way a human would hand-format the same Rust snippet: no space before
// `;`, `,`, `:`, `)`, `]`, none after `(`, `[`, and a single space
// everywhere else.
func Join(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !noSpaceBefore[tok] && !noSpaceAfter[tokens[i-1]] {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// JoinLines behaves like Join but breaks the output onto one line per
// statement or block boundary, indenting nested braces. It is meant
// for human-facing output and is what the golden snapshots record;
// Join is closer to the translator's native flat token stream.
func JoinLines(tokens []string) string {
	var b strings.Builder
	depth := 0
	needsIndent := true

	writeIndent := func() {
		for i := 0; i < depth; i++ {
			b.WriteString("    ")
		}
	}

	for i, tok := range tokens {
		switch tok {
		case "}":
			depth--
			if depth < 0 {
				depth = 0
			}
		}

		if needsIndent {
			writeIndent()
			needsIndent = false
		} else if !noSpaceBefore[tok] && !noSpaceAfter[priorToken(tokens, i)] {
			b.WriteByte(' ')
		}
		b.WriteString(tok)

		switch tok {
		case "{":
			depth++
			b.WriteByte('\n')
			needsIndent = true
		case "}":
			b.WriteByte('\n')
			needsIndent = true
		case ";":
			b.WriteByte('\n')
			needsIndent = true
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func priorToken(tokens []string, i int) string {
	if i == 0 {
		return ""
	}
	return tokens[i-1]
}
