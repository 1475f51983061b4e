// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Syntax highlighting that emits SGR-styled text.
// Usage: Render source code as an escape-sequence stream suitable for
// feeding straight into a term.Buffer.
// Notes: Language detection combines filename hints with content
// analysis; unknown input falls back to an unstyled passthrough lexer.

package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Detect returns a lexer name for the given filename and content, or
// an empty string when no confident guess exists.
func Detect(filename string, content []byte) string {
	if lang := enry.GetLanguage(filename, content); lang != "" && lang != "Text" {
		return lang
	}
	return ""
}

// Source renders code as text interleaved with SGR sequences encoding
// each token's color and attributes. The stream decodes back into
// styled cells when written to a buffer.
func Source(code, lexerName, styleName string) string {
	style := styles.Get(styleName)
	if styleName == "" {
		style = styles.Get(defaultStyleName)
	}
	lexer := chroma.Coalesce(getLexer(lexerName, code))

	tokens, err := chroma.Tokenise(lexer, nil, code)
	if err != nil {
		return code
	}

	baseColour := style.Get(chroma.Text).Colour

	var sb strings.Builder
	sb.Grow(len(code) * 2)
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		sgr := tokenSGR(style.Get(tok.Type), baseColour)
		if sgr == "" {
			sb.WriteString(tok.Value)
			continue
		}
		sb.WriteString(sgr)
		sb.WriteString(tok.Value)
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// tokenSGR builds the SGR sequence for a style entry, empty when the
// token renders as plain base text.
func tokenSGR(entry chroma.StyleEntry, baseColour chroma.Colour) string {
	var codes []string
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d",
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// getLexer returns a lexer by name, falling back to content analysis
// and finally to the unstyled passthrough lexer.
func getLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}
