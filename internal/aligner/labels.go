package aligner

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrLabelsFile is returned when a labels file can't be used.
var ErrLabelsFile = errors.New("invalid display labels file")

// DisplayLabels maps canonical station names to short chart labels.
// Keys match exactly, case and whitespace included.
type DisplayLabels map[string]string

// Resolve returns the display label for the station name, or the name itself.
func (l DisplayLabels) Resolve(name string) string {
	if label, ok := l[name]; ok {
		return label
	}
	return name
}

// Merge returns a new table with overrides applied on top of l.
func (l DisplayLabels) Merge(overrides DisplayLabels) DisplayLabels {
	merged := make(DisplayLabels, len(l)+len(overrides))
	for k, v := range l {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// DefaultLabels returns the curated label table.
func DefaultLabels() DisplayLabels {
	return DisplayLabels{
		"Ang Mo Kio Avenue 5":     "Ang Mo Kio",
		"Nanyang Avenue":          "Joo Koon",
		"Pulau Ubin":              "Pulau Ubin",
		"Banyan Road":             "Jurong Island",
		"Kim Chuan Road":          "Bartley / Tai Seng",
		"East Coast Parkway":      "East Coast",
		"Woodlands Avenue 9":      "Woodlands",
		"Tuas South Avenue 3":     "Tuas South",
		"West Coast Highway":      "West Coast",
		"Scotts Road":             "Orchard",
		"Old Choa Chu Kang Road":  "Choa Chu Kang",
		"Clementi Road":           "Clementi",
		"Upper Changi Road North": "Upper Changi",
	}
}

// LoadLabels reads a YAML mapping of station name to label.
func LoadLabels(path string) (DisplayLabels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	return ParseLabels(data)
}

// ParseLabels parses a YAML mapping of station name to label.
func ParseLabels(data []byte) (DisplayLabels, error) {
	var labels map[string]string
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLabelsFile, err)
	}

	for name, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label for %q", ErrLabelsFile, name)
		}
	}

	return DisplayLabels(labels), nil
}
