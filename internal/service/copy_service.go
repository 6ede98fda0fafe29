package service

import (
	"errors"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/atotto/clipboard"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(text)
}

// CopyService copies palette colors to a clipboard.
type CopyService struct {
	clipboard Clipboard
}

// NewCopyService creates a new copy service.
func NewCopyService(cb Clipboard) *CopyService {
	return &CopyService{clipboard: cb}
}

// CopyColor copies the color at zero-based index. The display form (#RRGGBB,
// uppercased) is what lands on the clipboard and is returned.
func (s *CopyService) CopyColor(p *model.Palette, index int) (string, error) {
	hex, ok := p.Color(index)
	if !ok {
		return "", swerr.ColorNotFound(index+1, p.Name)
	}
	text := model.DisplayHex(hex)
	if err := s.clipboard.WriteAll(text); err != nil {
		return "", err
	}
	return text, nil
}

// CopyAll copies every color of the palette, space separated.
func (s *CopyService) CopyAll(p *model.Palette) (string, error) {
	if len(p.Colors) == 0 {
		return "", swerr.ColorNotFound(1, p.Name)
	}
	hexes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexes[i] = model.DisplayHex(c)
	}
	text := strings.Join(hexes, " ")
	if err := s.clipboard.WriteAll(text); err != nil {
		return "", err
	}
	return text, nil
}
