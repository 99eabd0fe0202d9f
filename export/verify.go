package export

import (
	"errors"
	"fmt"
	"strings"

	"slidedeck/layout"

	"github.com/tsawler/tabula/pptx"
)

// Verify reopens a saved deck with an independent OOXML reader and checks it
// against the document it was written from: the slide count must match, and
// each slide title must be present as a text block at the title's position.
func Verify(path string, doc *layout.Document) error {
	r, err := pptx.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	if got, want := r.SlideCount(), len(doc.Slides); got != want {
		return fmt.Errorf("%s has %d slides, want %d", path, got, want)
	}

	var errs []error
	for i, src := range doc.Slides {
		title, ok := titleShape(src)
		if !ok {
			continue
		}
		slide, err := r.Slide(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !hasBlock(slide, title.Text(), title.Rect) {
			errs = append(errs, fmt.Errorf("slide %d: title %q not found at %v,%v", i+1, title.Text(), title.Rect.X, title.Rect.Y))
		}
	}
	return errors.Join(errs...)
}

func titleShape(s *layout.Slide) (*layout.TextBox, bool) {
	sh, ok := s.Shape("Title")
	if !ok {
		return nil, false
	}
	tb, ok := sh.(*layout.TextBox)
	if !ok || strings.TrimSpace(tb.Text()) == "" {
		return nil, false
	}
	return tb, true
}

func hasBlock(slide *pptx.Slide, text string, at layout.Rect) bool {
	for _, b := range slide.Content {
		if b.Text == text && layout.EMU(b.X) == at.X && layout.EMU(b.Y) == at.Y {
			return true
		}
	}
	return false
}
