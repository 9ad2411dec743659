package utils

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"income-eligibility/internal/models"
)

// ParseFeatures decodes an application/x-www-form-urlencoded body into a
// FeatureMapping. Pairs with an empty value are skipped, a repeated key keeps
// its first value and position, and every kept value must parse as a finite
// number.
func ParseFeatures(body string) (*models.FeatureMapping, error) {
	features := models.NewFeatureMapping()

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, found := strings.Cut(pair, "=")
		if !found || rawValue == "" {
			continue
		}

		key := unescapeFormValue(rawKey)
		value := unescapeFormValue(rawValue)

		if _, seen := features.Value(key); seen {
			continue
		}

		number, err := ParseFeatureValue(key, value)
		if err != nil {
			return nil, err
		}
		features.Add(key, number)
	}

	if features.Len() == 0 {
		return nil, models.ErrNoFeatures
	}
	return features, nil
}

// ParseFeatureValue converts a single form value to a finite float64.
func ParseFeatureValue(field, value string) (float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &models.ValueConversionError{Field: field, Value: value, Err: err}
	}
	if math.IsInf(number, 0) || math.IsNaN(number) {
		return 0, &models.ValueConversionError{Field: field, Value: value, Err: strconv.ErrRange}
	}
	return number, nil
}

// unescapeFormValue decodes '+' and %XX escapes, keeping the raw text when an
// escape sequence is malformed.
func unescapeFormValue(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
