package docs

import (
	"fmt"
	"strings"
)

// Assembler groups DocSections by chapter and renders the document set. It is
// the single owner of the chapter map; callers obtain documents only through
// the render methods, which encode the ordering and elision policy shared by
// the table of contents and the index.
type Assembler struct {
	sections map[string][]DocSection
	// order holds chapters in first-discovery order. Table-of-contents and
	// index output follow this order, not alphabetical.
	order []string
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{sections: make(map[string][]DocSection)}
}

// AddSection appends a section to its chapter. Insertion order within a
// chapter equals the order sections were discovered across scanned files.
func (a *Assembler) AddSection(section DocSection) {
	if _, seen := a.sections[section.Chapter]; !seen {
		a.order = append(a.order, section.Chapter)
	}
	a.sections[section.Chapter] = append(a.sections[section.Chapter], section)
}

// Chapters returns the non-empty chapters in first-discovery order.
func (a *Assembler) Chapters() []string {
	chapters := make([]string, 0, len(a.order))
	for _, ch := range a.order {
		if len(a.sections[ch]) > 0 {
			chapters = append(chapters, ch)
		}
	}
	return chapters
}

// RenderChapter renders one chapter document: a heading per section followed
// by its prose and, when captured, its first code example. A chapter with no
// sections renders to the empty string so no heading-only files are written.
func (a *Assembler) RenderChapter(chapter string) string {
	sections := a.sections[chapter]
	if len(sections) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", chapterTitle(chapter))
	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.Content != "" {
			b.WriteString(s.Content)
			b.WriteString("\n\n")
		}
		if len(s.Examples) > 0 {
			b.WriteString("### Example\n\n```typescript\n")
			b.WriteString(s.Examples[0])
			b.WriteString("\n```\n\n")
		}
	}
	return b.String()
}

// RenderTableOfContents renders SUMMARY.md: a fixed getting-started preamble
// followed by one entry per non-empty chapter in first-discovery order.
func (a *Assembler) RenderTableOfContents() string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	b.WriteString("## Getting Started\n\n")
	b.WriteString("- [Overview](README.md)\n")
	b.WriteString("- [Index](index.md)\n\n")
	b.WriteString("## Chapters\n\n")
	for _, ch := range a.Chapters() {
		fmt.Fprintf(&b, "- [%s](%s.md)\n", chapterTitle(ch), ch)
	}
	return b.String()
}

// RenderIndex renders the index document: per chapter, a heading, the section
// count, and the first three section titles with an elision note beyond that.
func (a *Assembler) RenderIndex() string {
	var b strings.Builder
	b.WriteString("# Documentation Index\n\n")
	for _, ch := range a.Chapters() {
		sections := a.sections[ch]
		noun := "sections"
		if len(sections) == 1 {
			noun = "section"
		}
		fmt.Fprintf(&b, "## %s\n\n%d %s\n\n", chapterTitle(ch), len(sections), noun)

		shown := len(sections)
		if shown > 3 {
			shown = 3
		}
		for _, s := range sections[:shown] {
			fmt.Fprintf(&b, "- %s\n", s.Title)
		}
		if rest := len(sections) - shown; rest > 0 {
			fmt.Fprintf(&b, "- ...and %d more\n", rest)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// chapterTitle converts a chapter key like "access-control" to a display
// title like "Access Control".
func chapterTitle(chapter string) string {
	if chapter == "" {
		return "Uncategorized"
	}
	words := strings.Split(chapter, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
