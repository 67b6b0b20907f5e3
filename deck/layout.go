package deck

// Slide geometry for the library's default 16:9 page, in EMU.
const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)
)

// Box is a shape rectangle in EMU.
type Box struct {
	X, Y, W, H int64
}

func inches(x, y, w, h float64) Box {
	return Box{
		X: int64(x * emuPerInch),
		Y: int64(y * emuPerInch),
		W: int64(w * emuPerInch),
		H: int64(h * emuPerInch),
	}
}

// Layout names the shape boxes a slide kind places its text in. The library has
// no master layouts, so each one is a fixed arrangement of text boxes.
type Layout struct {
	Name  string
	Title Box
	Body  Box // zero for layouts without a body
}

var (
	// titleLayout: centered hero title with subtitle underneath
	titleLayout = Layout{
		Name:  "Title Slide",
		Title: inches(0.5, 1.4, 9.0, 1.2),
		Body:  inches(1.0, 2.8, 8.0, 1.9),
	}
	// titleContentLayout: title strip with a bullet body
	titleContentLayout = Layout{
		Name:  "Title and Content",
		Title: inches(0.5, 0.3, 9.0, 0.8),
		Body:  inches(0.5, 1.25, 9.0, 4.0),
	}
	sectionHeaderLayout = Layout{
		Name:  "Section Header",
		Title: inches(0.75, 2.0, 8.5, 1.2),
	}
	titleOnlyLayout = Layout{
		Name:  "Title Only",
		Title: inches(0.5, 0.3, 9.0, 0.8),
	}
)

// Screenshot stand-in on title-only slides: one filled rectangle with an
// accent outline and the caption anchored in its middle.
var (
	placeholderBox    = inches(1.0, 1.25, 8.0, 3.9)
	placeholderBorder = 19050 // 1.5pt in EMU
)

// Decorative accent bars on title slides.
var (
	topBar    = Box{X: 0, Y: 0, W: slideWidth, H: int64(0.15 * emuPerInch)}
	bottomBar = Box{X: 0, Y: slideHeight - int64(0.125*emuPerInch), W: slideWidth, H: int64(0.125 * emuPerInch)}
)
