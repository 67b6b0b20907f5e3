package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultScript_Shape(t *testing.T) {
	s, err := DefaultScript()
	require.NoError(t, err)

	assert.Equal(t, "Farmiga: Farm to Table App", s.Title)
	assert.Equal(t, "Developed by Ritex Studios", s.Author)
	assert.Equal(t, "web/Green Orange Illustration Farm Logo.png", s.LogoPath)
	require.Len(t, s.Slides, 20)

	counts := map[Kind]int{}
	for _, spec := range s.Slides {
		counts[spec.Kind]++
	}
	assert.Equal(t, map[Kind]int{KindTitle: 2, KindBullets: 14, KindImagePlaceholder: 4}, counts)

	intro := s.Slides[1]
	assert.Equal(t, "Introduction", intro.Title)
	assert.Len(t, intro.Bullets, 4)

	roles := s.Slides[6]
	assert.Equal(t, "User Roles", roles.Title)
	assert.Equal(t, "  - Browse categories (Fruits, Veg, Dairy).", roles.Bullets[1])

	assert.Equal(t, "Questions?\n\nContact: ritexstudios@farmigo.com", s.Slides[19].Subtitle)
}

func TestParseScript_RoundTripsThroughYAML(t *testing.T) {
	s, err := DefaultScript()
	require.NoError(t, err)

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	again, err := ParseScript(data)
	require.NoError(t, err)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Fatalf("script changed after re-encoding (-want +got):\n%s", diff)
	}
}

func TestParseScript_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantIndex int
		wantField string
		wantErr   string
	}{
		{
			name:    "no slides",
			yaml:    "title: x\nslides: []\n",
			wantErr: "no slides",
		},
		{
			name:    "unknown kind",
			yaml:    "slides:\n  - kind: chart\n    title: x\n",
			wantErr: `unknown slide kind "chart"`,
		},
		{
			name:    "unknown field",
			yaml:    "slides:\n  - kind: section\n    title: x\n    image: a.png\n",
			wantErr: "field image not found",
		},
		{
			name:      "missing title",
			yaml:      "slides:\n  - kind: section\n    title: ok\n  - kind: bullets\n    bullets: [a]\n",
			wantIndex: 1,
			wantField: "title",
		},
		{
			name:      "bullets without bullets",
			yaml:      "slides:\n  - kind: bullets\n    title: Empty\n",
			wantIndex: 0,
			wantField: "bullets",
		},
		{
			name:      "image without caption",
			yaml:      "slides:\n  - kind: image\n    title: Shot\n",
			wantIndex: 0,
			wantField: "caption",
		},
		{
			name:      "missing kind",
			yaml:      "slides:\n  - title: Shot\n",
			wantIndex: 0,
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantField != "" {
				var ve *ValidationError
				require.True(t, errors.As(err, &ve), "want *ValidationError, got %T: %v", err, err)
				assert.Equal(t, tt.wantIndex, ve.Index)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	content := `title: Demo
author: Someone
slides:
  - kind: title
    title: Demo
    subtitle: sub
  - kind: section
    title: Part one
  - kind: bullets
    title: Points
    bullets: [one, two]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	require.Len(t, s.Slides, 3)
	assert.Equal(t, KindSection, s.Slides[1].Kind)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "slide 3: title: empty", (&ValidationError{Index: 2, Field: "title", Msg: "empty"}).Error())
	assert.Equal(t, "script: no slides", (&ValidationError{Index: -1, Msg: "no slides"}).Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bullets", KindBullets.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())

	k, err := ParseKind("image")
	require.NoError(t, err)
	assert.Equal(t, KindImagePlaceholder, k)
}
