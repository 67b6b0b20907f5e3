package deck

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"go.uber.org/zap"

	"deckgen/config"
)

// BulletGlyph is the bullet character drawn before bullet paragraphs. It is
// paragraph formatting, never part of the paragraph text.
const BulletGlyph = "•"

// Shape names set on the shapes the builder creates.
const (
	ShapeTitle       = "Title"
	ShapeBody        = "Body"
	ShapePlaceholder = "Placeholder"
	ShapeAccentBar   = "Accent Bar"
)

// Alignment of a rendered paragraph
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Font is the styling applied to one text run.
type Font struct {
	Name  string
	Size  int
	Bold  bool
	Color string // RGB hex
}

// Paragraph is one rendered paragraph of a slide body.
type Paragraph struct {
	Text   string
	Bullet bool
	Level  int
	Font   Font
	Align  Alignment
}

// PlainText renders p for text-only outputs, with the bullet glyph spelled out.
func (p Paragraph) PlainText() string {
	if p.Bullet {
		return BulletGlyph + " " + p.Text
	}
	return p.Text
}

// Slide records what the builder put on one slide.
type Slide struct {
	Kind      Kind
	Layout    string
	Title     string
	TitleFont Font
	Body      []Paragraph
}

// Builder translates slide specs into presentation library calls and applies a
// StyleProfile. It owns the presentation exclusively and is not safe for
// concurrent use.
type Builder struct {
	style  config.StyleProfile
	log    *zap.Logger
	pres   *ppt.Presentation
	slides []Slide
}

// NewBuilder creates a builder over a fresh presentation. log may be nil.
func NewBuilder(style config.StyleProfile, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		style: style,
		log:   log,
		pres:  ppt.New(),
	}
}

// SetDocumentInfo fills the document title and creator properties.
func (b *Builder) SetDocumentInfo(title, creator string) {
	props := b.pres.GetDocumentProperties()
	props.Title = title
	props.Creator = creator
}

// Presentation returns the underlying document for serialization.
func (b *Builder) Presentation() *ppt.Presentation {
	return b.pres
}

// Slides returns a deep copy of the slide records in authoring order.
func (b *Builder) Slides() []Slide {
	out := make([]Slide, len(b.slides))
	for i, s := range b.slides {
		if s.Body != nil {
			s.Body = append([]Paragraph(nil), s.Body...)
		}
		out[i] = s
	}
	return out
}

// Len is the number of slides added so far.
func (b *Builder) Len() int {
	return len(b.slides)
}

// Build adds a slide for every SlideSpec, in order.
func (b *Builder) Build(specs []SlideSpec) error {
	for i, spec := range specs {
		switch spec.Kind {
		case KindTitle:
			b.AddTitleSlide(spec.Title, spec.Subtitle)
		case KindBullets:
			b.AddBulletSlide(spec.Title, spec.Bullets)
		case KindSection:
			b.AddSectionHeader(spec.Title)
		case KindImagePlaceholder:
			b.AddImagePlaceholder(spec.Title, spec.Caption)
		default:
			return fmt.Errorf("slide %d: cannot build %v", i+1, spec.Kind)
		}
	}
	return nil
}

// AddTitleSlide adds a hero title with a subtitle. Each line of subtitle becomes
// its own paragraph; blank lines are kept as empty paragraphs.
func (b *Builder) AddTitleSlide(title, subtitle string) Slide {
	slide := b.nextSlide()

	b.fillBox(slide, topBar, b.style.AccentColor)

	rec := Slide{
		Kind:      KindTitle,
		Layout:    titleLayout.Name,
		Title:     title,
		TitleFont: b.font(b.style.HeroTitleSize, true, b.style.PrimaryColor),
	}
	b.writeTitle(slide, titleLayout.Title, rec.Title, rec.TitleFont, AlignCenter)

	if subtitle != "" {
		for _, line := range strings.Split(subtitle, "\n") {
			rec.Body = append(rec.Body, Paragraph{
				Text:  line,
				Font:  b.font(b.style.SubtitleSize, false, b.style.TextColor),
				Align: AlignCenter,
			})
		}
		b.writeParagraphs(b.textBox(slide, ShapeBody, titleLayout.Body), rec.Body)
	}

	b.fillBox(slide, bottomBar, b.style.AccentColor)

	return b.record(rec)
}

// AddBulletSlide adds a title and content slide with one level-0 paragraph per
// bullet, all in the bullet font, size and text color.
func (b *Builder) AddBulletSlide(title string, bullets []string) Slide {
	slide := b.nextSlide()

	rec := Slide{
		Kind:      KindBullets,
		Layout:    titleContentLayout.Name,
		Title:     title,
		TitleFont: b.font(b.style.TitleSize, true, b.style.PrimaryColor),
	}
	b.writeTitle(slide, titleContentLayout.Title, rec.Title, rec.TitleFont, AlignLeft)

	bulletFont := b.font(b.style.BulletSize, false, b.style.TextColor)
	rec.Body = make([]Paragraph, 0, len(bullets))
	for _, text := range bullets {
		rec.Body = append(rec.Body, Paragraph{
			Text:   text,
			Bullet: true,
			Level:  0,
			Font:   bulletFont,
		})
	}
	if len(rec.Body) > 0 {
		b.writeParagraphs(b.textBox(slide, ShapeBody, titleContentLayout.Body), rec.Body)
	}

	return b.record(rec)
}

// AddSectionHeader adds a divider slide. Only the title color is styled.
func (b *Builder) AddSectionHeader(title string) Slide {
	slide := b.nextSlide()

	rec := Slide{
		Kind:      KindSection,
		Layout:    sectionHeaderLayout.Name,
		Title:     title,
		TitleFont: Font{Size: b.style.SectionSize, Color: b.style.PrimaryColor},
	}
	b.writeTitle(slide, sectionHeaderLayout.Title, rec.Title, rec.TitleFont, AlignLeft)

	return b.record(rec)
}

// AddImagePlaceholder adds a title-only slide with a filled, accent-outlined box
// holding a centered caption, where a screenshot is to be pasted by hand.
func (b *Builder) AddImagePlaceholder(title, caption string) Slide {
	slide := b.nextSlide()

	rec := Slide{
		Kind:      KindImagePlaceholder,
		Layout:    titleOnlyLayout.Name,
		Title:     title,
		TitleFont: b.font(b.style.TitleSize, true, b.style.PrimaryColor),
	}
	b.writeTitle(slide, titleOnlyLayout.Title, rec.Title, rec.TitleFont, AlignLeft)

	box := b.textBox(slide, ShapePlaceholder, placeholderBox)
	box.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(config.ARGB(b.style.PlaceholderFill))))
	box.GetBorder().SetSolidFill(ppt.NewColor(config.ARGB(b.style.AccentColor))).SetWidth(placeholderBorder)
	box.SetTextAnchor(ppt.TextAnchorMiddle)

	rec.Body = []Paragraph{{
		Text:  caption,
		Font:  b.font(b.style.CaptionSize, false, b.style.TextColor),
		Align: AlignCenter,
	}}
	b.writeParagraphs(box, rec.Body)

	return b.record(rec)
}

// nextSlide returns the slide the library created with the presentation for the
// first call, a new one afterwards.
func (b *Builder) nextSlide() *ppt.Slide {
	if len(b.slides) == 0 {
		return b.pres.GetActiveSlide()
	}
	return b.pres.CreateSlide()
}

func (b *Builder) record(rec Slide) Slide {
	b.slides = append(b.slides, rec)
	b.log.Debug("slide added",
		zap.Int("index", len(b.slides)),
		zap.Stringer("kind", rec.Kind),
		zap.String("title", rec.Title),
		zap.Int("paragraphs", len(rec.Body)))
	return rec
}

func (b *Builder) font(size int, bold bool, color string) Font {
	return Font{Name: b.style.FontFamily, Size: size, Bold: bold, Color: color}
}

func (b *Builder) textBox(slide *ppt.Slide, name string, box Box) *ppt.RichTextShape {
	shape := slide.CreateRichTextShape()
	shape.SetName(name)
	shape.SetOffsetX(box.X).SetOffsetY(box.Y)
	shape.SetWidth(box.W).SetHeight(box.H)
	return shape
}

// fillBox draws a solid rectangle with no text.
func (b *Builder) fillBox(slide *ppt.Slide, box Box, rgb string) {
	shape := b.textBox(slide, ShapeAccentBar, box)
	shape.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(config.ARGB(rgb))))
}

func (b *Builder) writeTitle(slide *ppt.Slide, box Box, text string, f Font, align Alignment) {
	shape := b.textBox(slide, ShapeTitle, box)
	run := shape.CreateTextRun(text)
	applyFont(run.GetFont(), f)
	setAlignment(shape.GetActiveParagraph(), align)
}

// writeParagraphs writes paras into shape; the shape's initial paragraph holds
// the first one.
func (b *Builder) writeParagraphs(shape *ppt.RichTextShape, paras []Paragraph) {
	for i, p := range paras {
		if i > 0 {
			shape.CreateParagraph()
		}
		para := shape.GetActiveParagraph()
		if p.Bullet {
			para.SetBullet(ppt.NewBullet().
				SetCharBullet(BulletGlyph).
				SetColor(ppt.NewColor(config.ARGB(b.style.AccentColor))))
		}
		if p.Text != "" {
			run := para.CreateTextRun(p.Text)
			applyFont(run.GetFont(), p.Font)
		}
		setAlignment(para, p.Align)
	}
}

func applyFont(f *ppt.Font, font Font) {
	if font.Name != "" {
		f.Name = font.Name
	}
	f.SetSize(font.Size).SetBold(font.Bold).SetColor(ppt.NewColor(config.ARGB(font.Color)))
}

func setAlignment(p *ppt.Paragraph, align Alignment) {
	if align == AlignCenter {
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	}
}
