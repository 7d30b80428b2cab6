package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"
)

// File types recognized by the extractor
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeTXT  = "txt"
)

// ExtractText extracts plain text from an uploaded resume document, switching
// on the file extension. Returns the detected file type alongside the text so
// callers can persist it. Corrupted or unsupported input yields an error and
// an empty string; it never panics.
func ExtractText(filename string, data []byte) (string, string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "pdf":
		text, err := extractPDFText(data)
		return text, FileTypePDF, err
	case "docx":
		text, err := extractDocxText(data)
		return text, FileTypeDOCX, err
	case "txt":
		text, err := extractPlainText(data)
		return text, FileTypeTXT, err
	default:
		return "", ext, utils.NewUnsupportedFormatError(fmt.Sprintf("unsupported file type: %q", ext))
	}
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = utils.NewExtractionError(fmt.Sprintf("pdf reader panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to read pdf: %v", err))
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to parse docx: %v", err))
	}
	defer doc.Close()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", utils.NewExtractionError("file is not valid UTF-8 text")
	}
	return string(data), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// stripDocxMarkup converts the raw document XML returned by the docx library
// into plain text, one line per paragraph.
func stripDocxMarkup(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
