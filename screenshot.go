package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// saveScreenshot writes the current frame as a PNG into the screenshot
// directory. Failures are logged, never fatal.
func (g *Game) saveScreenshot(screen *ebiten.Image) {
	path, err := writeScreenshot(screen, g.screenshotDir)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func writeScreenshot(screen *ebiten.Image, dir string) (string, error) {
	bounds := screen.Bounds()
	img := image.NewRGBA(bounds)
	screen.ReadPixels(img.Pix)

	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.png", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing screenshot: %w", err)
	}
	return path, nil
}
