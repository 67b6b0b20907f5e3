// Package deck turns an ordered script of slide specifications into a GoPPT
// presentation. Slides are emitted strictly in authoring order.
package deck

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies which layout a slide is built with.
type Kind int

const (
	KindTitle Kind = iota + 1
	KindBullets
	KindSection
	KindImagePlaceholder
)

var kindNames = map[Kind]string{
	KindTitle:            "title",
	KindBullets:          "bullets",
	KindSection:          "section",
	KindImagePlaceholder: "image",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a script kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown slide kind %q (want title, bullets, section or image)", s)
}

// UnmarshalYAML decodes a kind name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// SlideSpec describes one slide's content before rendering.
type SlideSpec struct {
	Kind     Kind     `yaml:"kind"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"` // title slides; "\n" separates paragraphs
	Bullets  []string `yaml:"bullets,omitempty"`
	Caption  string   `yaml:"caption,omitempty"` // image placeholders
}

// Script is a complete deck: document metadata plus slides in order.
type Script struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	// LogoPath is carried as metadata only; the image is never embedded.
	LogoPath string      `yaml:"logoPath,omitempty"`
	Slides   []SlideSpec `yaml:"slides"`
}

// ValidationError reports a malformed slide in a script.
type ValidationError struct {
	Index int // 0-based slide index, -1 for script-level problems
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("script: %s", e.Msg)
	}
	return fmt.Sprintf("slide %d: %s: %s", e.Index+1, e.Field, e.Msg)
}

// Validate checks that the script can be built.
func (s Script) Validate() error {
	if len(s.Slides) == 0 {
		return &ValidationError{Index: -1, Msg: "no slides"}
	}
	for i, spec := range s.Slides {
		if err := spec.Validate(); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				ve.Index = i
			}
			return err
		}
	}
	return nil
}

// Validate checks the fields required by the slide's kind.
func (s SlideSpec) Validate() error {
	if _, ok := kindNames[s.Kind]; !ok {
		return &ValidationError{Field: "kind", Msg: "missing or unknown kind"}
	}
	if s.Title == "" {
		return &ValidationError{Field: "title", Msg: "empty"}
	}
	switch s.Kind {
	case KindBullets:
		if len(s.Bullets) == 0 {
			return &ValidationError{Field: "bullets", Msg: "bullet slide needs at least one bullet"}
		}
	case KindImagePlaceholder:
		if s.Caption == "" {
			return &ValidationError{Field: "caption", Msg: "image placeholder needs a caption"}
		}
	}
	return nil
}
