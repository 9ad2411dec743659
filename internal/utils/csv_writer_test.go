package utils

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"income-eligibility/internal/models"
)

func TestCSVRowWriter_SingleRowInKeyOrder(t *testing.T) {
	features, err := ParseFeatures("age=34&income=52000")
	require.NoError(t, err)

	row, err := NewCSVRowWriter().Encode(features)
	require.NoError(t, err)

	assert.Equal(t, "34.0,52000.0\r\n", string(row))
	assert.Equal(t, []string{"34.0", "52000.0"}, strings.Split(strings.TrimRight(string(row), "\r\n"), ","))
}

func TestCSVRowWriter_OrderFollowsInput(t *testing.T) {
	features, err := ParseFeatures("income=52000&age=34")
	require.NoError(t, err)

	row, err := NewCSVRowWriter().Encode(features)
	require.NoError(t, err)

	assert.Equal(t, "52000.0,34.0\r\n", string(row))
}

func TestCSVRowWriter_WithHeader(t *testing.T) {
	features := models.NewFeatureMapping()
	features.Add("age", 34)
	features.Add("income", 52000)

	writer := &CSVRowWriter{WriteHeader: true}
	row, err := writer.Encode(features)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(row))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"age", "income"}, records[0])
	assert.Equal(t, []string{"34.0", "52000.0"}, records[1])
}

func TestFormatFeatureValue(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{34, "34.0"},
		{52000, "52000.0"},
		{0, "0.0"},
		{-3, "-3.0"},
		{0.1, "0.1"},
		{40.5, "40.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFeatureValue(tt.input))
		})
	}
}
