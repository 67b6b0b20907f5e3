package config

import (
	"fmt"
	"strings"
)

// Handout formats accepted by Config.Handout
const (
	HandoutNone = ""
	HandoutPDF  = "pdf"
	HandoutDocx = "docx"
)

// DefaultOutputFile is the artifact written when nothing overrides it
const DefaultOutputFile = "Farmiga_Project_Presentation.pptx"

// StyleProfile holds the visual constants applied uniformly across the deck.
// Colors are 6-digit RGB hex strings without a leading '#'.
type StyleProfile struct {
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor"`       // titles
	AccentColor     string `json:"accentColor" yaml:"accentColor"`         // bars, frames, bullet markers
	TextColor       string `json:"textColor" yaml:"textColor"`             // body and bullet text
	PlaceholderFill string `json:"placeholderFill" yaml:"placeholderFill"` // screenshot stand-in box
	FontFamily      string `json:"fontFamily" yaml:"fontFamily"`

	HeroTitleSize int `json:"heroTitleSize" yaml:"heroTitleSize"` // title and closing slides
	TitleSize     int `json:"titleSize" yaml:"titleSize"`         // content slide titles
	SectionSize   int `json:"sectionSize" yaml:"sectionSize"`
	SubtitleSize  int `json:"subtitleSize" yaml:"subtitleSize"`
	BodySize      int `json:"bodySize" yaml:"bodySize"`
	BulletSize    int `json:"bulletSize" yaml:"bulletSize"`
	CaptionSize   int `json:"captionSize" yaml:"captionSize"`
}

// Config structure
type Config struct {
	OutputFile string       `json:"outputFile" yaml:"outputFile"`
	LogDir     string       `json:"logDir,omitempty" yaml:"logDir,omitempty"`
	Handout    string       `json:"handout,omitempty" yaml:"handout,omitempty"` // "", "pdf" or "docx"
	Strict     bool         `json:"strict,omitempty" yaml:"strict,omitempty"`   // non-zero exit on save failure
	Style      StyleProfile `json:"style" yaml:"style"`
}

// DefaultStyle returns the Farmiga palette: deep green titles, light green accents.
func DefaultStyle() StyleProfile {
	return StyleProfile{
		PrimaryColor:    "2E7D32",
		AccentColor:     "81C784",
		TextColor:       "212121",
		PlaceholderFill: "F0F0F0",
		FontFamily:      "Arial",
		HeroTitleSize:   44,
		TitleSize:       36,
		SectionSize:     40,
		SubtitleSize:    20,
		BodySize:        20,
		BulletSize:      22,
		CaptionSize:     18,
	}
}

// Default returns the configuration used when deckgen runs without arguments.
func Default() Config {
	return Config{
		OutputFile: DefaultOutputFile,
		Style:      DefaultStyle(),
	}
}

// Validate checks the style colors and sizes and the handout format.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output file is empty")
	}
	switch c.Handout {
	case HandoutNone, HandoutPDF, HandoutDocx:
	default:
		return fmt.Errorf("unknown handout format %q (want pdf or docx)", c.Handout)
	}
	return c.Style.Validate()
}

// Validate reports the first malformed color or non-positive font size.
func (s StyleProfile) Validate() error {
	colors := []struct {
		name, value string
	}{
		{"primaryColor", s.PrimaryColor},
		{"accentColor", s.AccentColor},
		{"textColor", s.TextColor},
		{"placeholderFill", s.PlaceholderFill},
	}
	for _, c := range colors {
		if !IsHexColor(c.value) {
			return fmt.Errorf("style.%s: %q is not a 6-digit hex color", c.name, c.value)
		}
	}
	if strings.TrimSpace(s.FontFamily) == "" {
		return fmt.Errorf("style.fontFamily is empty")
	}
	sizes := []struct {
		name  string
		value int
	}{
		{"heroTitleSize", s.HeroTitleSize},
		{"titleSize", s.TitleSize},
		{"sectionSize", s.SectionSize},
		{"subtitleSize", s.SubtitleSize},
		{"bodySize", s.BodySize},
		{"bulletSize", s.BulletSize},
		{"captionSize", s.CaptionSize},
	}
	for _, sz := range sizes {
		if sz.value <= 0 {
			return fmt.Errorf("style.%s must be positive, got %d", sz.name, sz.value)
		}
	}
	return nil
}

// IsHexColor reports whether v is exactly six hex digits.
func IsHexColor(v string) bool {
	if len(v) != 6 {
		return false
	}
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ARGB converts an RGB hex color to the opaque ARGB form used by the presentation library.
func ARGB(rgb string) string {
	return "FF" + strings.ToUpper(rgb)
}
