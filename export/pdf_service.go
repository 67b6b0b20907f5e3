package export

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	deckconfig "deckgen/config"
	"deckgen/deck"
)

// PDFExportService writes a printable handout of a deck using maroto
type PDFExportService struct {
	style deckconfig.StyleProfile
}

// NewPDFExportService creates a new PDF handout service
func NewPDFExportService(style deckconfig.StyleProfile) *PDFExportService {
	return &PDFExportService{style: style}
}

// Export renders one block per slide: number and title, then its paragraphs.
func (s *PDFExportService) Export(title string, slides []deck.Slide) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, title, len(slides))
	for i, slide := range slides {
		s.addSlide(m, i+1, slide)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return document.GetBytes(), nil
}

func (s *PDFExportService) addHeader(m core.Maroto, title string, count int) {
	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  hexColor(s.style.PrimaryColor),
			}),
		),
	)
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d slides", count), props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Align:  align.Center,
				Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)
	m.AddRow(5)
}

func (s *PDFExportService) addSlide(m core.Maroto, n int, slide deck.Slide) {
	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", n, slide.Title), props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  hexColor(s.style.PrimaryColor),
			}),
		),
	)

	for _, p := range slide.Body {
		if p.Text == "" {
			m.AddRow(3)
			continue
		}
		m.AddRow(6,
			col.New(1),
			col.New(11).Add(
				text.New(p.PlainText(), props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Color:  hexColor(s.style.TextColor),
				}),
			),
		)
	}

	m.AddRow(4)
}

// hexColor converts a validated RGB hex string to a maroto color.
func hexColor(rgb string) *props.Color {
	v, err := strconv.ParseUint(rgb, 16, 32)
	if err != nil || len(rgb) != 6 {
		return &props.Color{}
	}
	return &props.Color{
		Red:   int(v >> 16 & 0xFF),
		Green: int(v >> 8 & 0xFF),
		Blue:  int(v & 0xFF),
	}
}
