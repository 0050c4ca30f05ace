// Package docs extracts structured documentation from annotated test sources
// and assembles it into a chapter-organized markdown document set.
package docs

// DocSection is one extracted unit of documentation: the prose of one
// annotated comment block, the title of the test it documents, and any
// nearby fenced code examples.
type DocSection struct {
	// Chapter is the grouping key, set by the most recent @chapter tag seen
	// in the source file.
	Chapter string

	// Title is the quoted argument of the nearest it/describe/test call, or
	// a raw-line fallback when none was found within the lookahead window.
	Title string

	// Content is the comment prose with decoration stripped.
	Content string

	// Examples holds the inner text of fenced code blocks found in a short
	// window after the annotation. Capture is heuristic: only the first
	// block is guaranteed.
	Examples []string
}
