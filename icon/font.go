package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultFontPath = "/System/Library/Fonts/PingFang.ttc"
	DefaultFontSize = 20

	dpi = 72
)

// Builtin is the font used whenever the preferred one is unavailable.
var Builtin fyne.Resource = fyne.NewStaticResource("goregular.ttf", goregular.TTF)

// ReadFont loads a font file from disk as a resource.
func ReadFont(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(filepath.Base(path), data), nil
}

// LoadFace parses a TrueType/OpenType font or collection and returns a face
// of the given point size. Collections use their first font.
func LoadFace(res fyne.Resource, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(res.Content())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", res.Name(), err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("parse %s: no fonts in collection", res.Name())
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", res.Name(), err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
}

// FallbackFace never fails. If the bundled font cannot be parsed the fixed
// 7x13 bitmap face is returned instead.
func FallbackFace(size float64) font.Face {
	face, err := LoadFace(Builtin, size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Face returns the face for the font at path, or the fallback face if path
// cannot be read or parsed. The fallback is only reported at debug level.
func Face(path string, size float64, logger zerolog.Logger) font.Face {
	if path != "" {
		res, err := ReadFont(path)
		if err == nil {
			face, perr := LoadFace(res, size)
			if perr == nil {
				logger.Debug().Str("font", path).Float64("size", size).Msg("using font")
				return face
			}
			err = perr
		}
		logger.Debug().Err(err).Str("font", path).Msg("font unavailable, using built-in")
	}
	return FallbackFace(size)
}
