package export

import (
	"bytes"
	"errors"
	"fmt"

	"slidedeck/layout"

	ppt "github.com/VantageDataChat/GoPPT"
	"go.uber.org/zap"
)

// DocumentProperties are the core properties written into the package.
type DocumentProperties struct {
	Title   string
	Creator string
}

// GoPPTService writes laid-out documents as PowerPoint files using GoPPT
type GoPPTService struct {
	props DocumentProperties
	log   *zap.Logger
}

// ServiceOption configures a GoPPTService.
type ServiceOption func(*GoPPTService)

// WithProperties sets the document title and creator.
func WithProperties(props DocumentProperties) ServiceOption {
	return func(s *GoPPTService) { s.props = props }
}

// WithLogger sets the service logger.
func WithLogger(log *zap.Logger) ServiceOption {
	return func(s *GoPPTService) {
		if log != nil {
			s.log = log
		}
	}
}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService(opts ...ServiceOption) *GoPPTService {
	s := &GoPPTService{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// point size to the hundredths used by paragraph spacing
const spacingUnit = 100

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Render builds a GoPPT presentation holding every slide of doc in order.
func (s *GoPPTService) Render(doc *layout.Document) (*ppt.Presentation, error) {
	if doc == nil || len(doc.Slides) == 0 {
		return nil, errors.New("document has no slides")
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = s.props.Title
	p.GetDocumentProperties().Creator = s.props.Creator
	setPageSize(p, doc.Width, doc.Height)

	for i, src := range doc.Slides {
		// the first slide already exists in a new presentation
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		for _, shape := range src.Shapes {
			if err := s.addShape(slide, shape); err != nil {
				return nil, fmt.Errorf("slide %d (%s): %w", i+1, shape.Name(), err)
			}
		}
	}
	return p, nil
}

func (s *GoPPTService) addShape(slide *ppt.Slide, shape layout.Shape) error {
	switch sh := shape.(type) {
	case *layout.Rectangle:
		addAutoShape(slide, ppt.AutoShapeRectangle, sh.Label, sh.Rect, sh.Fill, sh.Outline)
	case *layout.RoundedRectangle:
		addAutoShape(slide, ppt.AutoShapeRoundedRect, sh.Label, sh.Rect, sh.Fill, sh.Outline)
	case *layout.TextBox:
		s.addTextBox(slide, sh)
	case *layout.Picture:
		if len(sh.Image.Data) == 0 {
			return fmt.Errorf("picture %q has no image data", sh.Image.Ref)
		}
		imgShape := slide.CreateDrawingShape()
		imgShape.SetImageData(sh.Image.Data, sh.Image.MIME)
		imgShape.SetOffsetX(int64(sh.Rect.X)).SetOffsetY(int64(sh.Rect.Y))
		imgShape.SetWidth(int64(sh.Rect.W)).SetHeight(int64(sh.Rect.H))
		imgShape.SetName(sh.Label)
	default:
		return fmt.Errorf("unsupported shape %T", shape)
	}
	return nil
}

func (s *GoPPTService) addTextBox(slide *ppt.Slide, tb *layout.TextBox) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(tb.Rect.X)).SetOffsetY(int64(tb.Rect.Y))
	shape.SetWidth(int64(tb.Rect.W)).SetHeight(int64(tb.Rect.H))
	shape.SetName(tb.Label)
	shape.SetWordWrap(tb.WordWrap)

	for i, para := range tb.Paragraphs {
		p := shape.GetActiveParagraph()
		if i > 0 {
			p = shape.CreateParagraph()
		}
		tr := p.CreateTextRun(para.Text)
		tr.GetFont().SetSize(para.Size).SetBold(para.Bold).SetColor(ppt.NewColor(para.Color.ARGB()))

		if para.Align == layout.AlignCenter {
			alignCenter(p)
		}
		if para.SpaceBefore > 0 {
			p.SetSpaceBefore(para.SpaceBefore * spacingUnit)
		}
	}
}

// Encode renders doc and serializes the whole package into memory.
func (s *GoPPTService) Encode(doc *layout.Document) ([]byte, error) {
	p, err := s.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render presentation: %w", err)
	}

	// Save to buffer
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

// Save encodes doc and writes it to path in one atomic step. Any failure is a
// persistence failure naming path, and leaves no partial file behind.
func (s *GoPPTService) Save(doc *layout.Document, path string) error {
	data, err := s.Encode(doc)
	if err != nil {
		return persistenceError(path, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		s.log.Error("deck not saved", zap.String("path", path), zap.Error(err))
		return persistenceError(path, err)
	}
	s.log.Info("deck saved",
		zap.String("path", path),
		zap.Int("slides", len(doc.Slides)),
		zap.Int("bytes", len(data)))
	return nil
}
