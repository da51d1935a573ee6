package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Measure is a speed or sense entry. The catalog stores either a bare
// string ("darkvision") or an object {"type": "walk", "value": 30}.
type Measure struct {
	Type  string `json:"type"`
	Value int    `json:"value,omitempty"`
	Text  string `json:"text,omitempty"`
}

// UnmarshalJSON implements custom JSON unmarshaling for Measure
func (m *Measure) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*m = Measure{Text: text}
		return nil
	}

	type Aux Measure
	var aux Aux
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("measure must be a string or object: %w", err)
	}
	*m = Measure(aux)
	return nil
}

// String renders "Walk 30ft" or the bare text
func (m Measure) String() string {
	if m.Text != "" {
		return m.Text
	}
	label := m.Type
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return fmt.Sprintf("%s %dft", label, m.Value)
}

// FormatMeasures joins entries with ", "
func FormatMeasures(measures []Measure) string {
	parts := make([]string, len(measures))
	for i, m := range measures {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
