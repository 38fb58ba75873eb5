// Package ingestion turns uploaded resume documents and job posting URLs
// into plain text for the analyzer.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadBytes is the largest accepted resume upload.
const MaxUploadBytes = 5 << 20 // 5 MiB

// ExtractText extracts plain text from an uploaded resume. The format is
// chosen by file extension: .pdf, .docx and .txt are supported. Extraction
// quality is whatever the document gives us; normalization happens later in
// the analyzer.
func ExtractText(filename string, data []byte) (string, error) {
	if int64(len(data)) > MaxUploadBytes {
		return "", &FileTooLargeError{Size: int64(len(data)), Limit: MaxUploadBytes}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", &UnsupportedTypeError{Ext: filepath.Ext(filename)}
	}
}

// extractPDFText concatenates the plain text of every page.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole upload.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent()), nil
}
