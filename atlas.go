package burst

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within an atlas page.
type TextureRegion struct {
	Page    uint16 // atlas page index
	X, Y    uint16 // top-left corner of the sub-image rect within the page
	Width   uint16
	Height  uint16
	OffsetX int16 // horizontal trim offset from TexturePacker
	OffsetY int16 // vertical trim offset from TexturePacker
}

// Atlas maps sprite names used by ShapeSprite particles to images.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
	images  map[string]*ebiten.Image
}

// NewAtlas returns an empty atlas. Sprites can be added with Add.
func NewAtlas() *Atlas {
	return &Atlas{
		regions: make(map[string]TextureRegion),
		images:  make(map[string]*ebiten.Image),
	}
}

// Add registers img under name as a standalone sprite, replacing any region
// with the same name.
func (a *Atlas) Add(name string, img *ebiten.Image) {
	delete(a.regions, name)
	a.images[name] = img
}

// Has reports whether name is known to the atlas.
func (a *Atlas) Has(name string) bool {
	if _, ok := a.images[name]; ok {
		return true
	}
	_, ok := a.regions[name]
	return ok
}

// Region returns the TextureRegion for name and whether it exists.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Image returns the image for name. Unknown names return a 1x1 magenta
// placeholder and, in debug mode, log a warning.
func (a *Atlas) Image(name string) (img *ebiten.Image, offsetX, offsetY float32) {
	if img, ok := a.images[name]; ok {
		return img, 0, 0
	}
	r, ok := a.regions[name]
	if !ok || int(r.Page) >= len(a.Pages) || a.Pages[r.Page] == nil {
		if globalDebug {
			log.Printf("burst: atlas region %q not found, using magenta placeholder", name)
		}
		return ensureMagentaImage(), 0, 0
	}
	sub := a.Pages[r.Page].SubImage(image.Rect(
		int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height),
	)).(*ebiten.Image)
	a.images[name] = sub
	return sub, float32(r.OffsetX), float32(r.OffsetY)
}

// magenta placeholder singleton (no sync.Once; rendering is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists). Rotated frames are rejected.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("burst: failed to parse atlas JSON: %w", err)
	}

	atlas := NewAtlas()
	atlas.Pages = pages

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("burst: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page uint16, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("burst: failed to parse atlas frames: %w", err)
	}
	return addFrames(frames, page, atlas)
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("burst: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		if err := addFrames(tex.Frames, uint16(i), atlas); err != nil {
			return err
		}
	}
	return nil
}

func addFrames(frames map[string]jsonFrame, page uint16, atlas *Atlas) error {
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("burst: atlas frame %q is rotated, which is not supported", name)
		}
		atlas.regions[name] = TextureRegion{
			Page:    page,
			X:       uint16(f.Frame.X),
			Y:       uint16(f.Frame.Y),
			Width:   uint16(f.Frame.W),
			Height:  uint16(f.Frame.H),
			OffsetX: int16(f.SpriteSourceSize.X),
			OffsetY: int16(f.SpriteSourceSize.Y),
		}
	}
	return nil
}
