// Package images resolves chart image references for the slide layouts.
package images

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"slidedeck/layout"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// maxImageFileSize is the largest image file that will be loaded.
const maxImageFileSize = 50 << 20

// DirResolver resolves references relative to a directory on disk.
type DirResolver struct {
	Dir string
	log *zap.Logger
}

// NewDirResolver creates a resolver rooted at dir.
func NewDirResolver(dir string, log *zap.Logger) *DirResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirResolver{Dir: dir, log: log}
}

// Path returns the file path a reference points to.
func (r *DirResolver) Path(ref string) string {
	if filepath.IsAbs(ref) || r.Dir == "" {
		return filepath.Clean(ref)
	}
	return filepath.Join(r.Dir, ref)
}

// Resolve implements layout.ImageResolver. Missing, oversized or unreadable
// files do not resolve.
func (r *DirResolver) Resolve(ref string) (layout.Image, bool) {
	if ref == "" {
		return layout.Image{}, false
	}
	path := r.Path(ref)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return layout.Image{}, false
	}
	if info.Size() > maxImageFileSize {
		r.log.Warn("image too large, skipping", zap.String("path", path), zap.Int64("bytes", info.Size()))
		return layout.Image{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.log.Debug("image unreadable", zap.String("path", path), zap.Error(err))
		return layout.Image{}, false
	}

	img := layout.Image{
		Ref:  ref,
		Path: path,
		Data: data,
		MIME: MIMEType(path, data),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.PixelWidth = cfg.Width
		img.PixelHeight = cfg.Height
	} else {
		r.log.Debug("image dimensions unknown", zap.String("path", path), zap.Error(err))
	}
	return img, true
}

// MIMEType guesses the MIME type from the file extension, then from the
// content.
func MIMEType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	if ct := http.DetectContentType(data); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/png"
}
