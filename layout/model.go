package layout

import "strings"

// ShapeKind identifies the variant of a Shape.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeRoundedRectangle
	ShapeTextBox
	ShapePicture
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeRoundedRectangle:
		return "rounded-rectangle"
	case ShapeTextBox:
		return "text-box"
	case ShapePicture:
		return "picture"
	}
	return "unknown"
}

// Shape is a positioned drawable element on a slide. The set of
// implementations is closed: Rectangle, RoundedRectangle, TextBox and Picture.
type Shape interface {
	Kind() ShapeKind
	Name() string
	Bounds() Rect
	isShape()
}

// Frame carries the geometry common to all shapes.
type Frame struct {
	Label string
	Rect  Rect
}

func (f Frame) Name() string { return f.Label }
func (f Frame) Bounds() Rect { return f.Rect }
func (Frame) isShape()       {}

// Line is a shape outline. A nil *Line means no outline.
type Line struct {
	Color Color
	Width int // points
}

// Rectangle is a filled box.
type Rectangle struct {
	Frame
	Fill    Color
	Outline *Line
}

func (*Rectangle) Kind() ShapeKind { return ShapeRectangle }

// RoundedRectangle is a filled box with rounded corners.
type RoundedRectangle struct {
	Frame
	Fill    Color
	Outline *Line
}

func (*RoundedRectangle) Kind() ShapeKind { return ShapeRoundedRectangle }

// Align is a horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Paragraph is a single-run paragraph of styled text.
type Paragraph struct {
	Text        string
	Size        int // points
	Bold        bool
	Color       Color
	Align       Align
	SpaceBefore int // points
}

// TextBox holds an ordered list of paragraphs.
type TextBox struct {
	Frame
	Paragraphs []Paragraph
	WordWrap   bool
}

func (*TextBox) Kind() ShapeKind { return ShapeTextBox }

// Text returns the paragraph texts joined by newlines.
func (t *TextBox) Text() string {
	lines := make([]string, len(t.Paragraphs))
	for i, p := range t.Paragraphs {
		lines[i] = p.Text
	}
	return strings.Join(lines, "\n")
}

// Picture places a resolved image.
type Picture struct {
	Frame
	Image Image
}

func (*Picture) Kind() ShapeKind { return ShapePicture }

// SlideKind names the layout constructor that produced a slide.
type SlideKind int

const (
	KindTitle SlideKind = iota
	KindContent
	KindFindings
)

func (k SlideKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	case KindFindings:
		return "findings"
	}
	return "unknown"
}

// Slide is an ordered collection of shapes. It is not modified after the
// layout constructor that created it returns.
type Slide struct {
	Index  int
	Kind   SlideKind
	Title  string
	Shapes []Shape
}

func (s *Slide) add(shape Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// TextBoxes returns the slide's text boxes in drawing order.
func (s *Slide) TextBoxes() []*TextBox {
	var out []*TextBox
	for _, sh := range s.Shapes {
		if tb, ok := sh.(*TextBox); ok {
			out = append(out, tb)
		}
	}
	return out
}

// Pictures returns the slide's pictures in drawing order.
func (s *Slide) Pictures() []*Picture {
	var out []*Picture
	for _, sh := range s.Shapes {
		if p, ok := sh.(*Picture); ok {
			out = append(out, p)
		}
	}
	return out
}

// Shape returns the first shape with the given name.
func (s *Slide) Shape(name string) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Name() == name {
			return sh, true
		}
	}
	return nil, false
}

// Document is an ordered sequence of slides sharing one page size.
type Document struct {
	Width  EMU
	Height EMU
	Slides []*Slide
}

// NewDocument creates an empty document with the given page size.
func NewDocument(width, height EMU) *Document {
	return &Document{Width: width, Height: height}
}

func (d *Document) newSlide(kind SlideKind, title string) *Slide {
	s := &Slide{Index: len(d.Slides), Kind: kind, Title: title}
	d.Slides = append(d.Slides, s)
	return s
}

// Violation records a shape that leaves the page.
type Violation struct {
	Slide int
	Shape string
	Rect  Rect
}

// OutOfBounds lists every shape whose box is not inside the page.
func (d *Document) OutOfBounds() []Violation {
	var out []Violation
	for _, s := range d.Slides {
		for _, sh := range s.Shapes {
			if !sh.Bounds().Within(d.Width, d.Height) {
				out = append(out, Violation{Slide: s.Index, Shape: sh.Name(), Rect: sh.Bounds()})
			}
		}
	}
	return out
}
