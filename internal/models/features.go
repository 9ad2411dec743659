// Package models defines the data structures for the income eligibility service.
package models

// FeatureMapping holds the named numeric inputs for one scoring request.
// Keys are kept in the order they were first added; that order is the CSV
// column order.
type FeatureMapping struct {
	keys   []string
	values map[string]float64
}

// NewFeatureMapping creates an empty feature mapping.
func NewFeatureMapping() *FeatureMapping {
	return &FeatureMapping{values: make(map[string]float64)}
}

// Add records a feature. The first value for a name wins; Add reports
// whether the value was stored.
func (m *FeatureMapping) Add(name string, value float64) bool {
	if _, exists := m.values[name]; exists {
		return false
	}
	m.keys = append(m.keys, name)
	m.values[name] = value
	return true
}

// Keys returns the feature names in insertion order.
func (m *FeatureMapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Value returns the value stored for name.
func (m *FeatureMapping) Value(name string) (float64, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Values returns the feature values in key order.
func (m *FeatureMapping) Values() []float64 {
	values := make([]float64, len(m.keys))
	for i, k := range m.keys {
		values[i] = m.values[k]
	}
	return values
}

// Len returns the number of features.
func (m *FeatureMapping) Len() int {
	return len(m.keys)
}
