package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractResumeText pulls the text layer out of a PDF resume. The
// document must carry real text; scanned image-only resumes are
// rejected rather than silently analyzed as empty.
func ExtractResumeText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text: %w", lastErr)
		}
		return "", fmt.Errorf("no text found in PDF (scanned resumes are not supported)")
	}

	return result, nil
}
