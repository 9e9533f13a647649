package extract

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type imageSize struct{}

func newImage(Settings) (Extractor, error) {
	return imageSize{}, nil
}

func (imageSize) Placeholders(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image %s: invalid %s dimensions %dx%d", path, format, cfg.Width, cfg.Height)
	}
	return Values{
		"width":  int64(cfg.Width),
		"height": int64(cfg.Height),
		"ratio":  float64(cfg.Width) / float64(cfg.Height),
	}, nil
}
