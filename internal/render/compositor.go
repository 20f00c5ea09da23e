package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/rook-computer/tiergen/internal/logging"
	"github.com/rook-computer/tiergen/internal/render/layout"
	"github.com/rook-computer/tiergen/internal/textwrap"
)

// Compositor renders identity portraits from a base image, two overlays and
// two lines of shadowed text. The font face is parsed once and reused; every
// raster is loaded fresh for each render.
type Compositor struct {
	Layout Layout
	Logger logging.Logger // nil disables logging

	face font.Face
}

var _ Renderer = (*Compositor)(nil)

// NewCompositor parses fontTTF at the layout's font size.
func NewCompositor(fontTTF []byte, l Layout) (*Compositor, error) {
	face, err := newFace(fontTTF, l.FontSize)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Compositor{Layout: l, face: face}, nil
}

// Render composites req and writes it to req.OutputPath as PNG.
//
// Rarity and title length are checked before anything is read, and every
// raster is loaded before the canvas is touched. The output file only
// appears once it has been encoded completely.
func (c *Compositor) Render(req Request) error {
	start := time.Now()
	logger := logging.OrNoop(c.Logger)
	lines := textwrap.LineCount(req.Title, c.Layout.WrapWidth)
	gradientAsset, err := GradientFor(lines)
	if err != nil {
		return err
	}
	borderAsset, err := BorderFor(req.Rarity)
	if err != nil {
		return err
	}

	portrait, err := c.load(req.InputPath, ErrIdentityNotFound)
	if err != nil {
		return err
	}
	gradient, err := c.load(filepath.Join(req.AssetDir, gradientAsset), ErrTextShadowNotFound)
	if err != nil {
		return err
	}
	border, err := c.load(filepath.Join(req.AssetDir, borderAsset), ErrRarityNotFound)
	if err != nil {
		return err
	}

	canvas := imaging.Overlay(portrait, gradient, image.Point{}, 1.0)
	canvas = imaging.Overlay(canvas, border, image.Point{}, 1.0)

	nameAnchor := layout.AnchorBottomLeft(layout.Square(c.Layout.Size), c.Layout.NameX, c.Layout.NameBottom)
	c.Layout.drawTextWithShadow(canvas, c.face, req.Title, c.Layout.TitleAnchor)
	c.Layout.drawTextWithShadow(canvas, c.face, req.Name, nameAnchor)

	if err := writePNG(req.OutputPath, canvas); err != nil {
		logger.Errorf("render", "write %s failed after %s: %v", req.OutputPath, time.Since(start).Round(time.Millisecond), err)
		return err
	}
	logger.Infof("render", "wrote %s in %s (rarity=%d, title lines=%d)",
		req.OutputPath, time.Since(start).Round(time.Millisecond), req.Rarity, lines)
	return nil
}

// load opens the raster at path and resizes it to the canvas size. Failures
// are reported as an AssetError of the given kind.
func (c *Compositor) load(path string, kind error) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &AssetError{Kind: kind, Path: path, Err: err}
	}
	// Gaussian keeps downscaled portraits free of aliasing.
	return imaging.Resize(img, c.Layout.Size, c.Layout.Size, imaging.Gaussian), nil
}

// writePNG encodes img next to path and renames it into place, so a failed
// encode never leaves a partial file at path.
func writePNG(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tiergen-*.png")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
