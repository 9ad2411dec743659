package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"income-eligibility/internal/models"
)

// CSVRowWriter serializes feature mappings into the single-row CSV payload
// the scoring endpoint expects.
type CSVRowWriter struct {
	// WriteHeader emits the feature names as a header record before the data.
	// The deployed model reads bare rows, so this stays off in production.
	WriteHeader bool
}

// NewCSVRowWriter creates a writer that emits data rows only.
func NewCSVRowWriter() *CSVRowWriter {
	return &CSVRowWriter{}
}

// Encode returns the CSV encoding of features, terminated by CRLF.
func (w *CSVRowWriter) Encode(features *models.FeatureMapping) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true

	keys := features.Keys()
	if w.WriteHeader {
		if err := writer.Write(keys); err != nil {
			return nil, fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	record := make([]string, len(keys))
	for i, key := range keys {
		value, _ := features.Value(key)
		record[i] = FormatFeatureValue(value)
	}
	if err := writer.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write CSV row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV row: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatFeatureValue renders a float the way the model's training data did:
// the shortest round-tripping digits, always with a fractional part, switching
// to exponent form below 1e-4 and from 1e16 upward.
func FormatFeatureValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
