package docs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteDocs writes the full document set to outputDir: index.md, README.md
// (a duplicate of the index), SUMMARY.md (the table of contents), and one
// <chapter>.md per non-empty chapter. Empty chapters produce no file.
func (a *Assembler) WriteDocs(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	index := a.RenderIndex()
	files := []struct {
		name    string
		content string
	}{
		{"index.md", index},
		{"README.md", index},
		{"SUMMARY.md", a.RenderTableOfContents()},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	for _, ch := range a.Chapters() {
		path := filepath.Join(outputDir, ch+".md")
		if err := os.WriteFile(path, []byte(a.RenderChapter(ch)), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
