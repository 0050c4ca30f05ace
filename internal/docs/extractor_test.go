package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractWellFormedBlock(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter access-control
 * Decryption rights are granted per account.
 */
it("grants permission", async function () {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.Chapter != "access-control" {
		t.Errorf("chapter = %q, want %q", s.Chapter, "access-control")
	}
	if s.Title != "grants permission" {
		t.Errorf("title = %q, want %q", s.Title, "grants permission")
	}
	if s.Content != "Decryption rights are granted per account." {
		t.Errorf("content = %q", s.Content)
	}
}

func TestExtractStickyChapter(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter x
 * hello
 */
it("t1", async () => {});

/**
 * more prose, no chapter tag
 */
it("t2", async () => {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}
	for i, s := range sections {
		if s.Chapter != "x" {
			t.Errorf("section %d chapter = %q, want %q (sticky)", i, s.Chapter, "x")
		}
	}
	if sections[0].Title != "t1" || sections[1].Title != "t2" {
		t.Errorf("titles = %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestExtractCloserOnOwnLine(t *testing.T) {
	t.Parallel()

	// The closer as its own undecorated line is the common JSDoc shape; it
	// must not be mistaken for interior decoration.
	src := `/**
 * @chapter x
 * hello
 */
it("t1", async () => {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.Chapter != "x" || s.Title != "t1" || s.Content != "hello" {
		t.Errorf("section = %+v", s)
	}
}

func TestExtractBlockClosesAtEndOfFile(t *testing.T) {
	t.Parallel()

	src := "/**\n * @chapter trailing\n * last words\n */"
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.Chapter != "trailing" || s.Title != "" || s.Content != "last words" {
		t.Errorf("section = %+v, want empty fallback title", s)
	}
}

func TestExtractUnterminatedBlock(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter lost
 * this comment never closes
it("never reached", () => {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 0 {
		t.Fatalf("sections = %v, want none from an unterminated block", sections)
	}
}

func TestExtractDescribeTitle(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter intro
 * Suite-level prose.
 */
describe("EncryptedCounter", function () {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 || sections[0].Title != "EncryptedCounter" {
		t.Fatalf("sections = %+v, want one titled EncryptedCounter", sections)
	}
}

func TestExtractFallbackTitle(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter misc
 * prose with no test call after it
 */
const helper = 42;
function setup() {}
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if sections[0].Title != "const helper = 42;" {
		t.Errorf("fallback title = %q, want the raw next line", sections[0].Title)
	}
}

func TestExtractLookaheadSkipsBlanksAndComments(t *testing.T) {
	t.Parallel()

	src := `/**
 * @chapter intro
 * prose
 */

// a stray line comment

it("found past the noise", () => {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 || sections[0].Title != "found past the noise" {
		t.Fatalf("sections = %+v", sections)
	}
}

func TestExtractCapturesFirstFencedExample(t *testing.T) {
	t.Parallel()

	src := "/**\n * @chapter snippets\n * prose\n */\nit(\"has an example\", () => {});\n" +
		"// usage:\n```\nconst x = await contract.getCount();\n```\n" +
		"```\nsecond block, not guaranteed\n```\n"
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if len(sections[0].Examples) != 1 {
		t.Fatalf("examples = %v, want exactly the first block", sections[0].Examples)
	}
	if sections[0].Examples[0] != "const x = await contract.getCount();" {
		t.Errorf("example = %q", sections[0].Examples[0])
	}
}

func TestExtractSingleLineBlockSetsChapter(t *testing.T) {
	t.Parallel()

	src := `/** @chapter one-liners */
it("still titled", () => {});
`
	e := &Extractor{}
	sections := e.Extract(src)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if sections[0].Chapter != "one-liners" || sections[0].Title != "still titled" {
		t.Errorf("section = %+v", sections[0])
	}
}

func TestExtractNoAnnotations(t *testing.T) {
	t.Parallel()

	e := &Extractor{}
	if sections := e.Extract("const a = 1;\nconst b = 2;\n"); len(sections) != 0 {
		t.Errorf("sections = %v, want none", sections)
	}
}

func TestExtractFileMissing(t *testing.T) {
	t.Parallel()

	e := &Extractor{}
	if _, err := e.ExtractFile(filepath.Join(t.TempDir(), "absent.ts")); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestExtractFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counter.test.ts")
	src := `/**
 * @chapter getting-started
 * The counter starts at zero.
 */
it("increments", () => {});
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e := &Extractor{}
	sections, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(sections) != 1 || sections[0].Chapter != "getting-started" {
		t.Fatalf("sections = %+v", sections)
	}
}
