package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// PPTExportService serializes a presentation to PPTX using GoPPT (pure Go)
type PPTExportService struct{}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService() *PPTExportService {
	return &PPTExportService{}
}

// Export writes p in PowerPoint 2007+ format and returns the file bytes.
func (s *PPTExportService) Export(p *ppt.Presentation) ([]byte, error) {
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}
