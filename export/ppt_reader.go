package export

import (
	"errors"
	"fmt"
	"strings"

	"slidedeck/layout"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideOutline summarizes one slide of a saved deck.
type SlideOutline struct {
	Title    string   // first non-empty paragraph
	Texts    []string // remaining non-empty paragraphs
	Shapes   []ShapeOutline
	Pictures int
}

// Outline summarizes a saved deck.
type Outline struct {
	Title    string
	Width    layout.EMU
	Height   layout.EMU
	PageType string // sldSz type attribute
	Slides   []SlideOutline
}

// ReadOutline reloads a PPTX file with GoPPT and lists the text of each slide
// together with the geometry of every shape on it.
func ReadOutline(path string) (*Outline, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, errors.New("PPT file has no slides")
	}

	shapes, err := readShapeOutlines(path)
	if err != nil {
		return nil, err
	}
	if len(shapes) != len(slides) {
		return nil, fmt.Errorf("package has %d slide parts for %d slides", len(shapes), len(slides))
	}

	out := &Outline{
		Title:    pres.GetDocumentProperties().Title,
		PageType: pres.GetLayout().Name,
	}
	out.Width, out.Height = pageSize(pres)
	for i, slide := range slides {
		so := SlideOutline{Shapes: shapes[i]}
		for _, shape := range slide.GetShapes() {
			switch sh := shape.(type) {
			case *ppt.DrawingShape:
				so.Pictures++
			case *ppt.RichTextShape:
				for _, para := range sh.GetParagraphs() {
					var text string
					for _, elem := range para.GetElements() {
						if run, ok := elem.(*ppt.TextRun); ok {
							text += run.GetText()
						}
					}
					text = strings.TrimSpace(text)
					if text == "" {
						continue
					}
					if so.Title == "" {
						so.Title = text
					} else {
						so.Texts = append(so.Texts, text)
					}
				}
			}
		}
		out.Slides = append(out.Slides, so)
	}
	return out, nil
}
