package layout

import (
	"fmt"

	"go.uber.org/zap"
)

// LayoutSpec describes one slide to build. Which fields are read depends
// on Kind.
type LayoutSpec struct {
	Kind      SlideKind
	Title     string
	Subtitle  string   // KindTitle
	Image     string   // KindContent
	Bullets   []string // KindContent
	TwoColumn bool     // KindContent
	Findings  []string // KindFindings
}

// TitleSpec describes a title slide.
func TitleSpec(title, subtitle string) LayoutSpec {
	return LayoutSpec{Kind: KindTitle, Title: title, Subtitle: subtitle}
}

// ContentSpec describes a content slide.
func ContentSpec(title, image string, bullets []string, twoColumn bool) LayoutSpec {
	return LayoutSpec{Kind: KindContent, Title: title, Image: image, Bullets: bullets, TwoColumn: twoColumn}
}

// FindingsSpec describes a findings grid slide.
func FindingsSpec(title string, findings []string) LayoutSpec {
	return LayoutSpec{Kind: KindFindings, Title: title, Findings: findings}
}

// Add appends the slide described by spec.
func (b *Builder) Add(spec LayoutSpec) (*Slide, error) {
	switch spec.Kind {
	case KindTitle:
		return b.AddTitleSlide(spec.Title, spec.Subtitle), nil
	case KindContent:
		return b.AddContentSlide(spec.Title, spec.Image, spec.Bullets, spec.TwoColumn), nil
	case KindFindings:
		return b.AddKeyFindingsSlide(spec.Title, spec.Findings), nil
	}
	return nil, fmt.Errorf("unknown slide kind %d", spec.Kind)
}

// Build lays out specs in order on a new document of the given page size.
func Build(width, height EMU, specs []LayoutSpec, opts ...Option) (*Document, error) {
	b := NewBuilder(NewDocument(width, height), opts...)
	for i, spec := range specs {
		if _, err := b.Add(spec); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	for _, v := range b.doc.OutOfBounds() {
		b.log.Warn("shape leaves the page",
			zap.Int("slide", v.Slide+1), zap.String("shape", v.Shape),
			zap.Stringer("x", v.Rect.X), zap.Stringer("y", v.Rect.Y),
			zap.Stringer("w", v.Rect.W), zap.Stringer("h", v.Rect.H))
	}
	return b.doc, nil
}
