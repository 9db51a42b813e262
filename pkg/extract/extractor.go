package extract

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	gocache "github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedType is returned when the declared file type has no
// extraction strategy.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor converts uploaded documents into plain text for the generation
// pipeline. Results are memoized by content hash since the same document is
// often re-submitted across regenerations.
type Extractor struct {
	cache *gocache.Cache
}

func NewExtractor() *Extractor {
	return &Extractor{
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// ExtractText turns raw bytes plus a declared type into plain text.
// Supported types: pdf, xlsx, xls, csv, txt.
func (e *Extractor) ExtractText(data []byte, fileType string) (string, error) {
	fileType = strings.ToLower(strings.TrimPrefix(fileType, "."))

	key := fmt.Sprintf("%s:%x", fileType, sha256.Sum256(data))
	if cached, ok := e.cache.Get(key); ok {
		return cached.(string), nil
	}

	var (
		text string
		err  error
	)
	switch fileType {
	case "pdf":
		text, err = extractPDF(data)
	case "xlsx", "xls":
		text, err = extractExcel(data)
	case "csv":
		text, err = extractCSV(data)
	case "txt", "text", "md":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, fileType)
	}
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", fileType, err)
	}

	e.cache.Set(key, text, gocache.DefaultExpiration)
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractExcel(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n\n=== %s ===\n\n", sheetName))
		for _, row := range rows {
			sb.WriteString(strings.Join(row, " | "))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // Ragged rows are fine for plain-text output

	var sb strings.Builder
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}
