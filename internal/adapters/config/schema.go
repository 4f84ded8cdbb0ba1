package config

import (
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Settingsfile represents the structure of the antscan.yaml configuration file.
type Settingsfile struct {
	UseAnt              bool       `yaml:"useAnt"`
	PathToAnt           string     `yaml:"pathToAnt"`
	EnableAnsiconForAnt bool       `yaml:"enableAnsiconForAnt"`
	PathToAnsicon       string     `yaml:"pathToAnsicon"`
	Exclude             StringList `yaml:"exclude"`
	Include             StringList `yaml:"include"`
	Folders             []string   `yaml:"folders"`
	Debug               bool       `yaml:"debug"`
}

// StringList is a list of strings that may be written as a single scalar in YAML.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v string
		if err := value.Decode(&v); err != nil {
			return err
		}
		if v == "" {
			*s = nil
			return nil
		}
		*s = StringList{v}
		return nil
	case yaml.SequenceNode:
		var v []string
		if err := value.Decode(&v); err != nil {
			return err
		}
		*s = v
		return nil
	default:
		return zerr.With(domain.ErrConfigParseFailed, "line", value.Line)
	}
}
