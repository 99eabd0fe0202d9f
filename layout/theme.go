package layout

// Theme holds the colors and font sizes shared by every layout.
type Theme struct {
	Background  Color // title slide background and title bar
	TitleText   Color
	Subtitle    Color
	BodyText    Color
	FindingFill Color
	FindingLine Color
	FindingText Color

	TitleSlideSize int // points
	SubtitleSize   int
	HeadingSize    int
	FindingSize    int

	BulletGlyph string
}

// Palette colors used by the report.
var (
	DarkBlue = RGB(0, 63, 92)
	White    = RGB(255, 255, 255)
)

// DefaultTheme returns the dark blue report theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  DarkBlue,
		TitleText:   White,
		Subtitle:    RGB(200, 200, 200),
		BodyText:    RGB(50, 50, 50),
		FindingFill: RGB(245, 248, 250),
		FindingLine: RGB(200, 210, 220),
		FindingText: RGB(40, 40, 40),

		TitleSlideSize: 48,
		SubtitleSize:   24,
		HeadingSize:    32,
		FindingSize:    16,

		BulletGlyph: "•",
	}
}

// Page sizes.
var (
	WidePageWidth  = Inches(13.333)
	WidePageHeight = Inches(7.5)
)

// Fixed geometry of the three layouts.
var (
	titleBarHeight = Inches(1.2)
	headingBox     = Rect{X: Inches(0.5), Y: Inches(0.3), W: Inches(12.333), H: Inches(0.8)}

	titleSlideTitle    = Rect{X: Inches(0.5), Y: Inches(2.5), W: Inches(12.333), H: Inches(1.5)}
	titleSlideSubtitle = Rect{X: Inches(0.5), Y: Inches(4.2), W: Inches(12.333), H: Inches(1)}

	twoColumnText    = Rect{X: Inches(0.5), Y: Inches(1.5), W: Inches(5), H: Inches(5.5)}
	twoColumnPicture = Rect{X: Inches(5.8), Y: Inches(1.4), W: Inches(7.2)}
	fullWidthPicture = Rect{X: Inches(0.5), Y: Inches(1.5), W: Inches(12.333)}
	fullWidthText    = Rect{X: Inches(0.7), Y: Inches(1.6), W: Inches(12), H: Inches(5.5)}
	pictureMargin    = Inches(0.25)

	twoColumnBulletSize  = 18
	twoColumnBulletSpace = 12
	fullWidthBulletSize  = 22
	fullWidthBulletSpace = 16

	gridColumns   = 2
	gridLeft      = Inches(0.5)
	gridTop       = Inches(1.6)
	gridBoxWidth  = Inches(5.8)
	gridBoxHeight = Inches(1.3)
	gridColumnGap = Inches(0.5)
	gridRowGap    = Inches(0.3)
	gridTextInset = Inches(0.2)
	gridLineWidth = 1
)

// GridCell returns the box of finding i in the findings grid.
func GridCell(i int) Rect {
	col := i % gridColumns
	row := i / gridColumns
	return Rect{
		X: gridLeft + EMU(col)*(gridBoxWidth+gridColumnGap),
		Y: gridTop + EMU(row)*(gridBoxHeight+gridRowGap),
		W: gridBoxWidth,
		H: gridBoxHeight,
	}
}

// GridRows returns the number of grid rows needed for n findings.
func GridRows(n int) int {
	return (n + gridColumns - 1) / gridColumns
}

// GridCapacity returns how many findings fit on a page of the given height
// without any box crossing the bottom edge.
func GridCapacity(pageHeight EMU) int {
	rows := 0
	for GridCell(rows*gridColumns).Bottom() <= pageHeight {
		rows++
	}
	return rows * gridColumns
}
