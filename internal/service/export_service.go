package service

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Swatch image geometry, in pixels.
const (
	swatchWidth   = 128
	swatchHeight  = 128
	headerHeight  = 24
	checkerSize   = 8
	labelPaddingX = 8
	labelPaddingY = 10
)

// ExportFormats lists the extensions Export understands.
var ExportFormats = []string{".png", ".gpl", ".json", ".toml"}

// ExportService writes palettes to image and interchange formats.
type ExportService struct {
	face font.Face
}

// NewExportService creates a new export service.
func NewExportService() *ExportService {
	return &ExportService{face: basicfont.Face7x13}
}

// Export writes the palette to path, choosing the format from the extension.
func (s *ExportService) Export(p *model.Palette, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return s.writePNG(p, path)
	case ".gpl":
		return os.WriteFile(path, []byte(GIMPPalette(p)), 0644)
	case ".json":
		return writeJSON(path, p)
	case ".toml":
		return writeCatalogTOML(path, &model.Catalog{Name: p.Catalog, Palettes: []*model.Palette{p}})
	default:
		return swerr.InvalidField("output", fmt.Sprintf("unsupported extension %q (want one of %s)", ext, strings.Join(ExportFormats, ", ")))
	}
}

func (s *ExportService) writePNG(p *model.Palette, path string) error {
	img, err := s.Render(p)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Render draws the palette as a strip of swatches under a title bar.
// Each swatch carries its hex code in a contrasting label color; translucent
// colors are composited over a checkerboard.
func (s *ExportService) Render(p *model.Palette) (*image.NRGBA, error) {
	if len(p.Colors) == 0 {
		return nil, swerr.ColorNotFound(1, p.Name)
	}

	width := swatchWidth * len(p.Colors)
	img := image.NewNRGBA(image.Rect(0, 0, width, headerHeight+swatchHeight))

	draw.Draw(img, image.Rect(0, 0, width, headerHeight), image.NewUniform(color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}), image.Point{}, draw.Src)
	s.drawText(img, p.Name+"  "+model.Stars(p.Favorites), labelPaddingX, headerHeight-8, color.White)

	for i, hex := range p.Colors {
		c, err := model.ParseHex(hex)
		if err != nil {
			return nil, swerr.InvalidField(fmt.Sprintf("color %d", i+1), err.Error())
		}
		rect := image.Rect(i*swatchWidth, headerHeight, (i+1)*swatchWidth, headerHeight+swatchHeight)
		if c.A < 0xff {
			drawChecker(img, rect)
		}
		draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Over)

		label := model.DisplayHex(hex)
		labelColor := color.Black
		if model.ContrastText(hex) == "#FFFFFF" {
			labelColor = color.White
		}
		s.drawText(img, label, rect.Min.X+labelPaddingX, rect.Max.Y-labelPaddingY, labelColor)
	}
	return img, nil
}

func (s *ExportService) drawText(dst draw.Image, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func drawChecker(dst draw.Image, rect image.Rectangle) {
	light := image.NewUniform(color.NRGBA{0xdd, 0xdd, 0xdd, 0xff})
	dark := image.NewUniform(color.NRGBA{0xaa, 0xaa, 0xaa, 0xff})
	for y := rect.Min.Y; y < rect.Max.Y; y += checkerSize {
		for x := rect.Min.X; x < rect.Max.X; x += checkerSize {
			src := light
			if ((x-rect.Min.X)/checkerSize+(y-rect.Min.Y)/checkerSize)%2 == 1 {
				src = dark
			}
			cell := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(rect)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}

// GIMPPalette renders the palette in GIMP's .gpl text format.
// Alpha is dropped since the format has no channel for it.
func GIMPPalette(p *model.Palette) string {
	var b strings.Builder
	b.WriteString("GIMP Palette\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Columns: %d\n", len(p.Colors))
	b.WriteString("#\n")
	for _, hex := range p.Colors {
		c, err := model.ParseHex(hex)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%3d %3d %3d\t%s\n", c.R, c.G, c.B, model.DisplayHex(hex))
	}
	return b.String()
}
