// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/gestia-ops/gestia/lib/tui"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share — actual parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderTerminalMarkdown parses markdown text and renders it as styled
// terminal output. Soft line breaks (single newlines within
// paragraphs) become spaces so hard-wrapped source text reflows
// correctly at any terminal width. Code blocks keep their formatting
// and get chroma syntax highlighting.
func renderTerminalMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	source := []byte(input)
	reader := text.NewReader(source)
	document := getMarkdownParser().Parser().Parse(reader)

	// Force ANSI256: this output is always for the bubbletea TUI, so
	// auto-detection (which sees no TTY in tests) is bypassed.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST and produces styled terminal
// text. Inline content accumulates in a buffer and is word-wrapped as
// a unit when the containing block closes.
type markdownRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	output strings.Builder
	inline strings.Builder

	// Inline style counters. Counters (not booleans) handle nested
	// emphasis correctly.
	boldCount   int
	italicCount int

	// Ordered-list numbering per nesting level; -1 for bullet lists.
	listStack []int

	lipRenderer *lipgloss.Renderer
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			style := renderer.lipRenderer.NewStyle().
				Bold(true).
				Foreground(renderer.theme.HeaderForeground)
			renderer.output.WriteString(style.Render(renderer.inline.String()))
			renderer.output.WriteString("\n\n")
			renderer.inline.Reset()
		}
		return ast.WalkContinue, nil

	case *ast.Paragraph:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushWrapped(renderer.listIndent())
			renderer.output.WriteString("\n")
		}
		return ast.WalkContinue, nil

	case *ast.Blockquote:
		// Render the quote's subtree into a child renderer, then
		// prefix every line.
		if entering {
			child := &markdownRenderer{
				source:      renderer.source,
				theme:       renderer.theme,
				width:       renderer.width - 2,
				lipRenderer: renderer.lipRenderer,
			}
			for sub := node.FirstChild(); sub != nil; sub = sub.NextSibling() {
				ast.Walk(sub, child.walk)
			}
			prefixStyle := renderer.lipRenderer.NewStyle().
				Foreground(renderer.theme.FaintText)
			for _, line := range strings.Split(strings.TrimRight(child.output.String(), "\n"), "\n") {
				renderer.output.WriteString(prefixStyle.Render("│ ") + line + "\n")
			}
			renderer.output.WriteString("\n")
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil

	case *ast.List:
		if entering {
			start := -1
			if node.IsOrdered() {
				start = node.Start
			}
			renderer.listStack = append(renderer.listStack, start)
		} else {
			renderer.listStack = renderer.listStack[:len(renderer.listStack)-1]
			if len(renderer.listStack) == 0 {
				renderer.output.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil

	case *ast.ListItem:
		if entering {
			depth := len(renderer.listStack)
			bullet := "• "
			if depth > 0 && renderer.listStack[depth-1] >= 0 {
				bullet = fmt.Sprintf("%d. ", renderer.listStack[depth-1])
				renderer.listStack[depth-1]++
			}
			renderer.output.WriteString(strings.Repeat("  ", depth-1))
			renderer.output.WriteString(bullet)
			renderer.inline.Reset()
		} else {
			renderer.flushWrapped(renderer.listIndent())
		}
		return ast.WalkContinue, nil

	case *ast.FencedCodeBlock:
		if entering {
			renderer.writeCodeBlock(renderer.codeLines(node), string(node.Language(renderer.source)))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil

	case *ast.CodeBlock:
		if entering {
			renderer.writeCodeBlock(renderer.codeLines(node), "")
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil

	case *ast.ThematicBreak:
		if entering {
			style := renderer.lipRenderer.NewStyle().
				Foreground(renderer.theme.BorderColor)
			renderer.output.WriteString(style.Render(strings.Repeat("─", renderer.width)))
			renderer.output.WriteString("\n\n")
		}
		return ast.WalkContinue, nil

	case *ast.Emphasis:
		if entering {
			if node.Level >= 2 {
				renderer.boldCount++
			} else {
				renderer.italicCount++
			}
		} else {
			if node.Level >= 2 {
				renderer.boldCount--
			} else {
				renderer.italicCount--
			}
		}
		return ast.WalkContinue, nil

	case *ast.CodeSpan:
		if entering {
			style := renderer.lipRenderer.NewStyle().
				Foreground(renderer.theme.StatusInProgress)
			renderer.inline.WriteString(style.Render(string(node.Text(renderer.source))))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil

	case *ast.AutoLink:
		if entering {
			style := renderer.lipRenderer.NewStyle().
				Foreground(renderer.theme.StatusInProgress).
				Underline(true)
			renderer.inline.WriteString(style.Render(string(node.URL(renderer.source))))
		}
		return ast.WalkContinue, nil

	case *ast.Text:
		if entering {
			renderer.writeText(string(node.Segment.Value(renderer.source)))
			if node.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if node.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	}

	return ast.WalkContinue, nil
}

// writeText appends inline text with the current emphasis styling.
func (renderer *markdownRenderer) writeText(value string) {
	if value == "" {
		return
	}
	style := renderer.lipRenderer.NewStyle().
		Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	renderer.inline.WriteString(style.Render(value))
}

// listIndent returns the continuation indent for wrapped lines inside
// the current list item.
func (renderer *markdownRenderer) listIndent() string {
	if len(renderer.listStack) == 0 {
		return ""
	}
	return strings.Repeat("  ", len(renderer.listStack))
}

// flushWrapped word-wraps the accumulated inline content to the
// render width and appends it to the output. Continuation lines get
// the given indent.
func (renderer *markdownRenderer) flushWrapped(indent string) {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}

	limit := renderer.width - ansi.StringWidth(indent)
	if limit < 10 {
		limit = 10
	}
	wrapped := ansi.Wordwrap(content, limit, "")
	for index, line := range strings.Split(wrapped, "\n") {
		if index > 0 {
			renderer.output.WriteString(indent)
		}
		renderer.output.WriteString(line)
		renderer.output.WriteString("\n")
	}
}

// codeLines collects the raw text of a code block node.
func (renderer *markdownRenderer) codeLines(node ast.Node) string {
	var buffer strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		buffer.Write(segment.Value(renderer.source))
	}
	return buffer.String()
}

// writeCodeBlock renders a code block with chroma highlighting,
// indented two cells. Highlighting failures fall back to plain text.
func (renderer *markdownRenderer) writeCodeBlock(code, language string) {
	highlighted := code
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		renderer.output.WriteString("  ")
		renderer.output.WriteString(line)
		renderer.output.WriteString("\n")
	}
	renderer.output.WriteString("\n")
}
