package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor converts binary resume formats (PDF, DOCX) to plain text. It is
// provided by an external collaborator; this package never parses file bytes
// beyond plain text itself.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// Metadata describes a loaded resume file.
type Metadata struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Chars  int    `json:"chars"`
	Words  int    `json:"words"`
	Lines  int    `json:"lines"`
}

// LoadResume reads a resume file and returns its cleaned text. Plain-text
// formats (.txt, .md) are read directly; anything else requires an Extractor.
func LoadResume(path string, extractor Extractor) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw string
	switch ext {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil, fmt.Errorf("resume file not found: %w", err)
			}
			return "", nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		raw = string(data)
	default:
		if extractor == nil {
			return "", nil, fmt.Errorf("unsupported resume format %q (no extractor configured)", ext)
		}
		extracted, err := extractor.ExtractText(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract resume text: %w", err)
		}
		raw = extracted
	}

	text := CleanText(raw)
	meta := &Metadata{
		Path:   path,
		Format: strings.TrimPrefix(ext, "."),
		Chars:  len(text),
		Words:  len(strings.Fields(text)),
		Lines:  len(strings.Split(text, "\n")),
	}
	return text, meta, nil
}
