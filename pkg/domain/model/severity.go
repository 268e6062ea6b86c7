package model

import (
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Severity is the Zabbix problem severity scale. Higher is more severe.
type Severity int

const (
	SeverityNotClassified Severity = iota
	SeverityInformation
	SeverityWarning
	SeverityAverage
	SeverityHigh
	SeverityDisaster
)

var severityNames = map[Severity]string{
	SeverityNotClassified: "Not classified",
	SeverityInformation:   "Information",
	SeverityWarning:       "Warning",
	SeverityAverage:       "Average",
	SeverityHigh:          "High",
	SeverityDisaster:      "Disaster",
}

// severityColors follow the Zabbix frontend defaults
var severityColors = map[Severity]string{
	SeverityNotClassified: "#97AAB3",
	SeverityInformation:   "#7499FF",
	SeverityWarning:       "#FFC859",
	SeverityAverage:       "#FFA059",
	SeverityHigh:          "#E97659",
	SeverityDisaster:      "#E45959",
}

// IsValid checks if the severity is within the Zabbix scale
func (s Severity) IsValid() bool {
	return s >= SeverityNotClassified && s <= SeverityDisaster
}

// Name returns the display name for the severity level
func (s Severity) Name() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity %d", int(s))
}

// Color returns the display color (hex) for the severity level
func (s Severity) Color() string {
	if color, ok := severityColors[s]; ok {
		return color
	}
	return severityColors[SeverityNotClassified]
}

// SeverityLabel is one entry of a severity display configuration
type SeverityLabel struct {
	Level int    `yaml:"level"` // Zabbix severity level (0-5)
	Name  string `yaml:"name"`  // Display name
	Color string `yaml:"color"` // Display color (optional)
}

// SeveritiesConfig overrides the built-in severity display names
type SeveritiesConfig struct {
	Severities []SeverityLabel `yaml:"severities"`
}

// Validate validates the severities configuration
func (c *SeveritiesConfig) Validate() error {
	seen := make(map[int]bool)
	for i, label := range c.Severities {
		if !Severity(label.Level).IsValid() {
			return goerr.New("severity level out of range",
				goerr.V("index", i), goerr.V("level", label.Level))
		}
		if label.Name == "" {
			return goerr.New("severity name is required",
				goerr.V("index", i), goerr.V("level", label.Level))
		}
		if seen[label.Level] {
			return goerr.New("duplicate severity level",
				goerr.V("index", i), goerr.V("level", label.Level))
		}
		seen[label.Level] = true
	}
	return nil
}

// Apply installs the configured display names and colors
func (c *SeveritiesConfig) Apply() {
	for _, label := range c.Severities {
		severityNames[Severity(label.Level)] = label.Name
		if label.Color != "" {
			severityColors[Severity(label.Level)] = label.Color
		}
	}
}

// LoadSeveritiesConfig reads a severity display configuration from a
// YAML file
func LoadSeveritiesConfig(path string) (*SeveritiesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read severities config", goerr.V("path", path))
	}

	var cfg SeveritiesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse severities config", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
