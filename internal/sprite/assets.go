package sprite

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// BirdFrames is the number of wing animation frames.
const BirdFrames = 3

// Asset file names inside an assets directory.
var (
	BirdFiles      = [BirdFrames]string{"bird1.png", "bird2.png", "bird3.png"}
	PipeFile       = "pipe.png"
	BaseFile       = "base.png"
	BackgroundFile = "bg.png"
)

// Sources are the unscaled source images, as stored on disk.
type Sources struct {
	Bird       [BirdFrames]image.Image
	Pipe       image.Image // cap at the top; used as-is for the bottom segment
	Base       image.Image
	Background image.Image
}

// Assets are the scaled images the game draws plus their collision masks.
type Assets struct {
	Bird       [BirdFrames]image.Image
	BirdMasks  [BirdFrames]*Mask
	PipeTop    image.Image
	PipeBottom image.Image
	TopMask    *Mask
	BottomMask *Mask
	Base       image.Image
	Background image.Image
}

// Scale is the factor applied to source images.
const Scale = 2

// Build scales the sources and derives the flipped top pipe and all masks.
func (s Sources) Build() *Assets {
	a := &Assets{
		PipeBottom: Scale2x(s.Pipe),
		Base:       Scale2x(s.Base),
		Background: Scale2x(s.Background),
	}
	a.PipeTop = imaging.FlipV(a.PipeBottom)
	a.TopMask = MaskFromImage(a.PipeTop)
	a.BottomMask = MaskFromImage(a.PipeBottom)
	for i, img := range s.Bird {
		a.Bird[i] = Scale2x(img)
		a.BirdMasks[i] = MaskFromImage(a.Bird[i])
	}
	return a
}

// Scale2x doubles an image with nearest-neighbour sampling so pixel art stays sharp.
func Scale2x(img image.Image) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*Scale, b.Dy()*Scale, imaging.NearestNeighbor)
}

// ReadSources opens every asset file in dir.
func ReadSources(dir string) (Sources, error) {
	var s Sources
	var err error

	for i, name := range BirdFiles {
		if s.Bird[i], err = open(dir, name); err != nil {
			return s, err
		}
	}
	if s.Pipe, err = open(dir, PipeFile); err != nil {
		return s, err
	}
	if s.Base, err = open(dir, BaseFile); err != nil {
		return s, err
	}
	if s.Background, err = open(dir, BackgroundFile); err != nil {
		return s, err
	}
	return s, nil
}

func open(dir, name string) (image.Image, error) {
	path := filepath.Join(dir, name)
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot load %s: %w", path, err)
	}
	return img, nil
}

// Save writes the sources as PNG files that ReadSources can load back.
func (s Sources) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sprite: cannot create %s: %w", dir, err)
	}

	files := map[string]image.Image{
		PipeFile:       s.Pipe,
		BaseFile:       s.Base,
		BackgroundFile: s.Background,
	}
	for i, name := range BirdFiles {
		files[name] = s.Bird[i]
	}

	for name, img := range files {
		path := filepath.Join(dir, name)
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("sprite: cannot save %s: %w", path, err)
		}
	}
	return nil
}

var defaultAssets = sync.OnceValue(func() *Assets {
	return Generate().Build()
})

// Default returns the shared generated assets.
func Default() *Assets {
	return defaultAssets()
}

// Load returns assets from dir, or the generated defaults when dir is empty.
func Load(dir string) (*Assets, error) {
	if dir == "" {
		return Default(), nil
	}
	src, err := ReadSources(dir)
	if err != nil {
		return nil, err
	}
	return src.Build(), nil
}
