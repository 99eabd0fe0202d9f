package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"slidedeck/layout"
)

// ShapeOutline is one drawing element of a slide as stored in the package.
type ShapeOutline struct {
	Name     string
	Picture  bool
	Rect     layout.Rect
	Fill     string     // RRGGBB, empty without a solid fill
	Outline  layout.EMU // line width, zero without an outline
	FontSize int        // points of the first text run, zero without text
}

// The GoPPT reader skips plain rectangles that carry no text, so shape
// geometry is read from the slide parts directly.

type slidePartXML struct {
	XMLName xml.Name  `xml:"sld"`
	Tree    spTreeXML `xml:"cSld>spTree"`
}

type spTreeXML struct {
	Children []treeChildXML `xml:",any"`
}

// treeChildXML covers both p:sp and p:pic so document order is kept.
type treeChildXML struct {
	XMLName xml.Name
	SpNv    *cNvPrXML  `xml:"nvSpPr>cNvPr"`
	PicNv   *cNvPrXML  `xml:"nvPicPr>cNvPr"`
	SpPr    spPrXML    `xml:"spPr"`
	TxBody  *txBodyXML `xml:"txBody"`
}

type cNvPrXML struct {
	Name string `xml:"name,attr"`
}

type spPrXML struct {
	Off       offXML   `xml:"xfrm>off"`
	Ext       extXML   `xml:"xfrm>ext"`
	SolidFill *srgbXML `xml:"solidFill>srgbClr"`
	Line      *lnXML   `xml:"ln"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type srgbXML struct {
	Val string `xml:"val,attr"`
}

type lnXML struct {
	W int64 `xml:"w,attr"`
}

type txBodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Props runPropsXML `xml:"rPr"`
}

type runPropsXML struct {
	Size int `xml:"sz,attr"` // hundredths of a point
}

func (c treeChildXML) outline() ShapeOutline {
	so := ShapeOutline{
		Picture: c.XMLName.Local == "pic",
		Rect: layout.Rect{
			X: layout.EMU(c.SpPr.Off.X),
			Y: layout.EMU(c.SpPr.Off.Y),
			W: layout.EMU(c.SpPr.Ext.Cx),
			H: layout.EMU(c.SpPr.Ext.Cy),
		},
	}
	switch {
	case c.SpNv != nil:
		so.Name = c.SpNv.Name
	case c.PicNv != nil:
		so.Name = c.PicNv.Name
	}
	if c.SpPr.SolidFill != nil {
		so.Fill = strings.ToUpper(c.SpPr.SolidFill.Val)
	}
	if c.SpPr.Line != nil {
		so.Outline = layout.EMU(c.SpPr.Line.W)
	}
	if c.TxBody != nil {
		for _, p := range c.TxBody.Paragraphs {
			if len(p.Runs) > 0 {
				so.FontSize = p.Runs[0].Props.Size / 100
				break
			}
		}
	}
	return so
}

// readShapeOutlines returns the shapes of every slide in the package at path,
// in slide order and in drawing order within each slide.
func readShapeOutlines(path string) ([][]ShapeOutline, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	defer zr.Close()

	var parts []*zip.File
	for _, f := range zr.File {
		if slidePartNumber(f.Name) > 0 {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool {
		return slidePartNumber(parts[i].Name) < slidePartNumber(parts[j].Name)
	})

	out := make([][]ShapeOutline, 0, len(parts))
	for _, f := range parts {
		var part slidePartXML
		if err := decodePart(f, &part); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.Name, err)
		}
		var shapes []ShapeOutline
		for _, c := range part.Tree.Children {
			switch c.XMLName.Local {
			case "sp", "pic":
				shapes = append(shapes, c.outline())
			}
		}
		out = append(out, shapes)
	}
	return out, nil
}

// slidePartNumber returns N for ppt/slides/slideN.xml and zero otherwise.
func slidePartNumber(name string) int {
	rest, ok := strings.CutPrefix(name, "ppt/slides/slide")
	if !ok {
		return 0
	}
	rest, ok = strings.CutSuffix(rest, ".xml")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0
	}
	return n
}

func decodePart(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}
