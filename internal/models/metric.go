package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Metric is a stat value entered either as a number or as free text ("12,500").
// The empty Metric means the stat is absent.
type Metric string

// MetricOf converts numbers and strings into a Metric. Other values yield the empty Metric.
func MetricOf(value interface{}) Metric {
	switch v := value.(type) {
	case nil:
		return ""
	case Metric:
		return v
	case string:
		return Metric(strings.TrimSpace(v))
	case int:
		return Metric(strconv.Itoa(v))
	case int64:
		return Metric(strconv.FormatInt(v, 10))
	case float64:
		return Metric(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return Metric(strconv.FormatFloat(float64(v), 'f', -1, 32))
	default:
		return ""
	}
}

// IsZero reports whether the metric is absent.
func (m Metric) IsZero() bool {
	return strings.TrimSpace(string(m)) == ""
}

// Float parses the metric, ignoring thousands separators.
func (m Metric) Float() (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(string(m)), ",", "")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (m Metric) String() string {
	return string(m)
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = ""
		return nil
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*m = Metric(strings.TrimSpace(text))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	*m = Metric(number.String())
	return nil
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	raw := strings.TrimSpace(string(m))
	if _, err := strconv.ParseFloat(raw, 64); err == nil && json.Valid([]byte(raw)) {
		return []byte(raw), nil
	}
	return json.Marshal(raw)
}
