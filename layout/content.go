package layout

// Image is an image resource that resolved at layout time.
type Image struct {
	Ref         string
	Path        string
	Data        []byte
	MIME        string
	PixelWidth  int // 0 when the format could not be decoded
	PixelHeight int
}

// HasDimensions reports whether the pixel size is known.
func (img Image) HasDimensions() bool {
	return img.PixelWidth > 0 && img.PixelHeight > 0
}

// ImageResolver looks up image references. A reference that does not
// resolve is reported with ok == false and is never an error.
type ImageResolver interface {
	Resolve(ref string) (img Image, ok bool)
}

// NoImages resolves nothing.
type NoImages struct{}

func (NoImages) Resolve(string) (Image, bool) { return Image{}, false }

// Content is the body of a content slide. Its implementations form a closed
// set: TitleOnly, BulletsBody, ImageBody and TwoColumnBody.
type Content interface {
	isContent()
}

// TitleOnly is a content slide with nothing under the title bar.
type TitleOnly struct{}

// BulletsBody renders bullets across the full width.
type BulletsBody struct {
	Bullets []string
}

// ImageBody renders one picture across the full width.
type ImageBody struct {
	Image Image
	// Dropped holds bullets supplied with the image that are not rendered.
	Dropped []string
}

// TwoColumnBody renders bullets on the left and a picture on the right.
type TwoColumnBody struct {
	Bullets []string
	Image   Image
}

func (TitleOnly) isContent()     {}
func (BulletsBody) isContent()   {}
func (ImageBody) isContent()     {}
func (TwoColumnBody) isContent() {}

// ResolveContent picks the body variant for a content slide. An image wins
// over bullets unless twoColumn is set and bullets are present, in which case
// both are shown side by side. img is nil when no image resolved.
func ResolveContent(img *Image, bullets []string, twoColumn bool) Content {
	switch {
	case img != nil && len(bullets) > 0 && twoColumn:
		return TwoColumnBody{Bullets: bullets, Image: *img}
	case img != nil:
		return ImageBody{Image: *img, Dropped: bullets}
	case len(bullets) > 0:
		return BulletsBody{Bullets: bullets}
	default:
		return TitleOnly{}
	}
}
