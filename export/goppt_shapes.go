package export

import (
	"slidedeck/layout"

	ppt "github.com/VantageDataChat/GoPPT"
)

// setPageSize marks the page as custom so the package carries
// sldSz type="custom" alongside the real dimensions.
func setPageSize(p *ppt.Presentation, width, height layout.EMU) {
	p.GetLayout().SetCustomLayout(int64(width), int64(height))
}

func pageSize(p *ppt.Presentation) (width, height layout.EMU) {
	l := p.GetLayout()
	return layout.EMU(l.CX), layout.EMU(l.CY)
}

func addAutoShape(slide *ppt.Slide, geometry ppt.AutoShapeType, name string, r layout.Rect, fill layout.Color, outline *layout.Line) *ppt.AutoShape {
	shape := ppt.NewAutoShape().SetAutoShapeType(geometry)
	shape.SetSolidFill(ppt.NewColor(fill.ARGB()))
	shape.SetName(name)
	shape.SetPosition(int64(r.X), int64(r.Y))
	shape.SetSize(int64(r.W), int64(r.H))

	border := shape.GetBorder()
	if outline == nil {
		border.Style = ppt.BorderNone
	} else {
		border.Style = ppt.BorderSolid
		border.Color = ppt.NewColor(outline.Color.ARGB())
		// GoPPT border widths are EMU
		border.Width = int(layout.Points(outline.Width))
	}

	slide.AddShape(shape)
	return shape
}
