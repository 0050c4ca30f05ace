package docs

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Extractor converts documentation comments embedded in test source text into
// DocSection records. It is a line-oriented state machine with three states;
// malformed input degrades to partial or empty results and never errors. The
// only fatal condition is an unreadable file.
type Extractor struct{}

// extractorState names the position of the machine in the line stream.
type extractorState int

const (
	// stateOutside: between comment blocks, scanning for an opener.
	stateOutside extractorState = iota
	// stateInComment: inside a block comment, accumulating prose.
	stateInComment
	// stateAwaitingTitle: comment closed, looking ahead for the test title.
	stateAwaitingTitle
)

const (
	// titleLookahead bounds how many non-blank, non-comment lines are
	// inspected for a test invocation before falling back to a raw line.
	titleLookahead = 2

	// exampleWindow bounds the post-emit scan for fenced code blocks.
	exampleWindow = 8
)

// titlePattern matches it("..."), describe('...'), and test("...") calls.
var titlePattern = regexp.MustCompile(`(?:it|describe|test)\s*\(\s*["'](.+?)["']`)

// chapterPattern matches a @chapter tag and captures its identifier.
var chapterPattern = regexp.MustCompile(`@chapter\s+(\S+)`)

// ExtractFile reads path and extracts its sections.
func (e *Extractor) ExtractFile(path string) ([]DocSection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.Extract(string(data)), nil
}

// Extract runs the state machine over src and returns the sections found.
// The chapter set by a @chapter tag is sticky for the remainder of the file:
// one tag governs every subsequent documented test until the next tag.
func (e *Extractor) Extract(src string) []DocSection {
	lines := strings.Split(src, "\n")

	var (
		sections []DocSection
		state    = stateOutside
		chapter  string
		buf      []string
	)

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		switch state {
		case stateOutside:
			if strings.HasPrefix(trimmed, "/*") {
				buf = buf[:0]
				state = stateInComment
				rest := strings.TrimPrefix(strings.TrimPrefix(trimmed, "/**"), "/*")
				if closed := e.consumeCommentLine(rest, &chapter, &buf); closed {
					state = stateAwaitingTitle
				}
			}

		case stateInComment:
			if closed := e.consumeCommentLine(stripDecoration(trimmed), &chapter, &buf); closed {
				state = stateAwaitingTitle
			}

		case stateAwaitingTitle:
			title, titleLine := findTitle(lines, i)
			section := DocSection{
				Chapter: chapter,
				Title:   title,
				Content: strings.TrimSpace(strings.Join(buf, "\n")),
			}
			section.Examples = scanExamples(lines, titleLine+1)
			sections = append(sections, section)

			state = stateOutside
			if titleLine >= i {
				i = titleLine
			}
		}
	}

	// A block closed on the file's last line still counts; it gets the empty
	// fallback title. EOF mid-comment discards whatever accumulated.
	if state == stateAwaitingTitle {
		sections = append(sections, DocSection{
			Chapter: chapter,
			Content: strings.TrimSpace(strings.Join(buf, "\n")),
		})
	}
	return sections
}

// consumeCommentLine processes one line of comment interior. It reports
// whether the line closes the block. A @chapter tag sets the sticky chapter
// and is not added to the prose; everything else accumulates.
func (e *Extractor) consumeCommentLine(content string, chapter *string, buf *[]string) (closed bool) {
	content = strings.TrimSpace(content)
	if strings.HasSuffix(content, "*/") {
		closed = true
		content = strings.TrimSpace(strings.TrimSuffix(content, "*/"))
	}

	if m := chapterPattern.FindStringSubmatch(content); m != nil {
		*chapter = m[1]
		return closed
	}
	if content != "" {
		*buf = append(*buf, content)
	}
	return closed
}

// stripDecoration removes the leading asterisk decoration of a JSDoc-style
// comment interior line. A line that opens with the block closer is left
// intact so the closer stays detectable.
func stripDecoration(trimmed string) string {
	if strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "*/") {
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
	}
	return trimmed
}

// findTitle scans forward from index start for a test/describe invocation,
// inspecting at most titleLookahead non-blank, non-comment lines. It returns
// the title and the index of the line it came from. When the window is
// exhausted with no match, the first candidate line is returned verbatim as
// the fallback title.
func findTitle(lines []string, start int) (title string, titleLine int) {
	inspected := 0
	fallback := ""
	fallbackLine := start

	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "/*") {
			continue
		}

		if m := titlePattern.FindStringSubmatch(trimmed); m != nil {
			return m[1], i
		}

		if inspected == 0 {
			fallback = trimmed
			fallbackLine = i
		}
		inspected++
		if inspected >= titleLookahead {
			break
		}
	}
	return fallback, fallbackLine
}

// scanExamples performs the bounded post-emit scan for fenced code regions.
// At most the first fenced block within the window is captured.
func scanExamples(lines []string, start int) []string {
	end := start + exampleWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			continue
		}
		var inner []string
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
				return []string{strings.Join(inner, "\n")}
			}
			inner = append(inner, lines[j])
		}
		return nil // unterminated fence: capture nothing
	}
	return nil
}
