package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain = "text/plain"
)

// ErrUnsupportedType is returned for uploads that are not PDF, DOCX or plain text.
var ErrUnsupportedType = errors.New("unsupported file type")

// OCR recognizes text in scanned PDFs that carry no text layer.
type OCR interface {
	RecognizePDF(ctx context.Context, data []byte) (string, error)
}

// Extractor turns uploaded resume bytes into plain text.
// OCR is optional; without it a scanned PDF yields empty text.
type Extractor struct {
	OCR OCR
}

// New returns an Extractor with the given OCR fallback, which may be nil.
func New(ocr OCR) *Extractor {
	return &Extractor{OCR: ocr}
}

// ExtractText extracts text from an in-memory upload.
// The declared MIME type wins unless it is empty or generic, in which case the content is sniffed.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	kind := DetectType(data, mimeType, fileName)
	switch kind {
	case mimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf %q: %w", fileName, err)
		}
		if strings.TrimSpace(text) == "" && e != nil && e.OCR != nil {
			text, err = e.OCR.RecognizePDF(ctx, data)
			if err != nil {
				return "", fmt.Errorf("ocr pdf %q: %w", fileName, err)
			}
		}
		return text, nil
	case mimeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("extract docx %q: %w", fileName, err)
		}
		return text, nil
	case mimePlain:
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
}

// DetectType normalizes the declared MIME type, falling back to content sniffing.
func DetectType(data []byte, mimeType string, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX, mimePlain:
		return clean
	case "", "application/octet-stream", "application/zip":
	default:
		return clean
	}

	if len(data) > 0 {
		detected := mimetype.Detect(data)
		switch {
		case detected.Is(mimePDF):
			return mimePDF
		case detected.Is(mimeDOCX):
			return mimeDOCX
		case detected.Is(mimePlain):
			return mimePlain
		}
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt":
		return mimePlain
	}
	if clean == "" {
		return "application/octet-stream"
	}
	return clean
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and break ends into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
