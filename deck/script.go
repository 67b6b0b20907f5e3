package deck

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed farmiga.yaml
var farmigaScript []byte

// DefaultScript returns the built-in Farmiga project deck.
func DefaultScript() (Script, error) {
	s, err := ParseScript(farmigaScript)
	if err != nil {
		return Script{}, fmt.Errorf("built-in script: %w", err)
	}
	return s, nil
}

// LoadScript reads and validates a YAML script from path.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script. Unknown fields are rejected.
func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Build applies the script's document info to b and adds every slide in order.
func (s Script) Build(b *Builder) error {
	b.SetDocumentInfo(s.Title, s.Author)
	return b.Build(s.Slides)
}
