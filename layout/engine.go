package layout

import (
	"fmt"

	"go.uber.org/zap"
)

// Builder appends slides to a Document using the fixed report layouts.
// Each Add call appends exactly one slide and never fails.
type Builder struct {
	doc    *Document
	theme  Theme
	images ImageResolver
	log    *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTheme overrides the default theme.
func WithTheme(t Theme) Option {
	return func(b *Builder) { b.theme = t }
}

// WithImages sets the resolver used for image references.
func WithImages(r ImageResolver) Option {
	return func(b *Builder) { b.images = r }
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder creates a Builder that appends to doc.
func NewBuilder(doc *Document, opts ...Option) *Builder {
	b := &Builder{
		doc:    doc,
		theme:  DefaultTheme(),
		images: NoImages{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.images == nil {
		b.images = NoImages{}
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b
}

// Document returns the document being built.
func (b *Builder) Document() *Document {
	return b.doc
}

// AddTitleSlide appends a full-bleed title slide. The subtitle text box is
// omitted when subtitle is empty.
func (b *Builder) AddTitleSlide(title, subtitle string) *Slide {
	s := b.doc.newSlide(KindTitle, title)

	s.add(&Rectangle{
		Frame: Frame{Label: "Background", Rect: Rect{W: b.doc.Width, H: b.doc.Height}},
		Fill:  b.theme.Background,
	})
	s.add(&TextBox{
		Frame: Frame{Label: "Title", Rect: titleSlideTitle},
		Paragraphs: []Paragraph{{
			Text:  title,
			Size:  b.theme.TitleSlideSize,
			Bold:  true,
			Color: b.theme.TitleText,
			Align: AlignCenter,
		}},
	})
	if subtitle != "" {
		s.add(&TextBox{
			Frame: Frame{Label: "Subtitle", Rect: titleSlideSubtitle},
			Paragraphs: []Paragraph{{
				Text:  subtitle,
				Size:  b.theme.SubtitleSize,
				Color: b.theme.Subtitle,
				Align: AlignCenter,
			}},
		})
	}
	return s
}

// AddContentSlide appends a slide with a title bar and an optional image
// and bullet list. An image reference that does not resolve is treated as
// absent.
func (b *Builder) AddContentSlide(title, imageRef string, bullets []string, twoColumn bool) *Slide {
	var img *Image
	if imageRef != "" {
		if resolved, ok := b.images.Resolve(imageRef); ok {
			img = &resolved
		} else {
			b.log.Debug("image not found, using text layout",
				zap.String("slide", title), zap.String("image", imageRef))
		}
	}
	return b.AddContent(title, ResolveContent(img, bullets, twoColumn))
}

// AddContent appends a content slide with an already resolved body.
func (b *Builder) AddContent(title string, body Content) *Slide {
	s := b.doc.newSlide(KindContent, title)
	b.addHeading(s, title)

	switch c := body.(type) {
	case TwoColumnBody:
		s.add(b.bulletBox(twoColumnText, c.Bullets, twoColumnBulletSize, twoColumnBulletSpace))
		s.add(b.picture(twoColumnPicture, c.Image))
	case ImageBody:
		if len(c.Dropped) > 0 {
			b.log.Warn("bullets dropped: image without two-column layout",
				zap.String("slide", title), zap.Int("bullets", len(c.Dropped)))
		}
		s.add(b.picture(fullWidthPicture, c.Image))
	case BulletsBody:
		s.add(b.bulletBox(fullWidthText, c.Bullets, fullWidthBulletSize, fullWidthBulletSpace))
	case TitleOnly, nil:
	default:
		panic(fmt.Sprintf("layout: unknown content %T", body))
	}
	return s
}

// AddKeyFindingsSlide appends a slide with findings laid out in a two-column
// grid, row-major.
func (b *Builder) AddKeyFindingsSlide(title string, findings []string) *Slide {
	s := b.doc.newSlide(KindFindings, title)
	b.addHeading(s, title)

	if capacity := GridCapacity(b.doc.Height); len(findings) > capacity {
		b.log.Warn("findings overflow the grid",
			zap.String("slide", title),
			zap.Int("findings", len(findings)),
			zap.Int("capacity", capacity))
	}
	for i, finding := range findings {
		cell := GridCell(i)
		s.add(&RoundedRectangle{
			Frame:   Frame{Label: fmt.Sprintf("Finding %d Box", i+1), Rect: cell},
			Fill:    b.theme.FindingFill,
			Outline: &Line{Color: b.theme.FindingLine, Width: gridLineWidth},
		})
		s.add(&TextBox{
			Frame: Frame{
				Label: fmt.Sprintf("Finding %d", i+1),
				Rect: Rect{
					X: cell.X + gridTextInset,
					Y: cell.Y + gridTextInset,
					W: cell.W - 2*gridTextInset,
					H: cell.H - 2*gridTextInset,
				},
			},
			Paragraphs: []Paragraph{{
				Text:  finding,
				Size:  b.theme.FindingSize,
				Color: b.theme.FindingText,
			}},
			WordWrap: true,
		})
	}
	return s
}

func (b *Builder) addHeading(s *Slide, title string) {
	s.add(&Rectangle{
		Frame: Frame{Label: "Title Bar", Rect: Rect{W: b.doc.Width, H: titleBarHeight}},
		Fill:  b.theme.Background,
	})
	s.add(&TextBox{
		Frame: Frame{Label: "Title", Rect: headingBox},
		Paragraphs: []Paragraph{{
			Text:  title,
			Size:  b.theme.HeadingSize,
			Bold:  true,
			Color: b.theme.TitleText,
		}},
	})
}

func (b *Builder) bulletBox(box Rect, bullets []string, size, space int) *TextBox {
	paras := make([]Paragraph, len(bullets))
	for i, point := range bullets {
		paras[i] = Paragraph{
			Text:        b.theme.BulletGlyph + " " + point,
			Size:        size,
			Color:       b.theme.BodyText,
			SpaceBefore: space,
		}
	}
	return &TextBox{
		Frame:      Frame{Label: "Bullets", Rect: box},
		Paragraphs: paras,
		WordWrap:   true,
	}
}

// picture sizes img to the width of box keeping its aspect ratio, then
// shrinks it if it would run past the bottom margin.
func (b *Builder) picture(box Rect, img Image) *Picture {
	maxH := b.doc.Height - pictureMargin - box.Y
	if maxH < 0 {
		maxH = 0
	}
	w := box.W
	var h EMU
	if img.HasDimensions() {
		h = EMU(int64(w) * int64(img.PixelHeight) / int64(img.PixelWidth))
	}
	switch {
	case h == 0:
		h = maxH
	case h > maxH:
		w = EMU(int64(w) * int64(maxH) / int64(h))
		h = maxH
	}
	return &Picture{
		Frame: Frame{Label: "Picture", Rect: Rect{X: box.X, Y: box.Y, W: w, H: h}},
		Image: img,
	}
}
