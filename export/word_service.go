package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"deckgen/config"
	"deckgen/deck"
)

// WordExportService writes a speaker outline of a deck using GoWord (pure Go)
type WordExportService struct {
	style config.StyleProfile
}

// NewWordExportService creates a new Word outline service
func NewWordExportService(s config.StyleProfile) *WordExportService {
	return &WordExportService{style: s}
}

// Export renders every slide as a heading followed by its paragraphs.
// Image placeholders are flagged so the presenter knows a screenshot is pending.
func (s *WordExportService) Export(title, author string, slides []deck.Slide) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = title
	doc.Properties.Creator = author
	doc.Properties.Description = "Speaker outline"

	sec := doc.AddSection()
	sec.AddTitle(title, 1)
	if author != "" {
		sec.AddText(author,
			&style.FontStyle{Size: 10, Color: "94A3B8"},
			&style.ParagraphStyle{Alignment: style.AlignCenter})
	}
	sec.AddTextBreak(1)

	primary := strings.ToUpper(s.style.PrimaryColor)
	text := strings.ToUpper(s.style.TextColor)

	for i, slide := range slides {
		sec.AddText(fmt.Sprintf("Slide %d: %s", i+1, slide.Title),
			&style.FontStyle{Bold: true, Size: 14, Color: primary},
			nil)

		if slide.Kind == deck.KindImagePlaceholder {
			sec.AddText("Screenshot to insert by hand",
				&style.FontStyle{Size: 9, Color: "94A3B8", Italic: true},
				nil)
		}

		for _, p := range slide.Body {
			if p.Text == "" {
				continue
			}
			ps := &style.ParagraphStyle{}
			if p.Bullet {
				ps.Indent = 360
			}
			sec.AddText(p.PlainText(),
				&style.FontStyle{Size: 11, Color: text},
				ps)
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}

	return data, nil
}
