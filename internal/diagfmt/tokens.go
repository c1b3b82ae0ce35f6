package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"loom/internal/kind"
	"loom/internal/source"
	"loom/internal/token"
)

// TokenOutput is one token of `loom tokenize`; trivia are listed by kind.
type TokenOutput struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Leading  []string    `json:"leading,omitempty"`
	Trailing []string    `json:"trailing,omitempty"`
}

// tokenOutputs обрезает поток по первому EOF.
func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Span:     tok.Span,
			Leading:  triviaKinds(tok.Leading),
			Trailing: triviaKinds(tok.Trailing),
		})
		if tok.Kind == kind.EOF {
			break
		}
	}
	return out
}

func triviaKinds(trivia []token.Trivia) []string {
	var out []string
	for _, tr := range trivia {
		out = append(out, tr.Kind.String())
	}
	return out
}

// FormatTokensPretty prints one token per line:
//
//	  1: IntKeyword               "int" at 1:1-1:4 (trailing: WhitespaceMinutiae)
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	var sb strings.Builder
	for i, t := range tokenOutputs(tokens) {
		fmt.Fprintf(&sb, "%3d: %-24s", i+1, t.Kind)
		if t.Text != "" {
			fmt.Fprintf(&sb, " %q", t.Text)
		}
		if known(fs, t.Span.File) {
			from, to := fs.Resolve(t.Span)
			fmt.Fprintf(&sb, " at %d:%d-%d:%d", from.Line, from.Col, to.Line, to.Col)
		}
		for _, side := range [...]struct {
			name  string
			kinds []string
		}{{"leading", t.Leading}, {"trailing", t.Trailing}} {
			if len(side.kinds) > 0 {
				fmt.Fprintf(&sb, " (%s: %s)", side.name, strings.Join(side.kinds, ", "))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatTokensJSON пишет токены JSON-массивом.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenOutputs(tokens))
}
