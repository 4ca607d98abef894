package fonts

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the bundled Go Regular face at the given sizes. A face
// that cannot be parsed falls back to a fixed bitmap font.
func LoadDefaults(regular, title, small float64) {
	LoadFontWithSize(Regular, goregular.TTF, regular)
	LoadFontWithSize(Title, goregular.TTF, title)
	LoadFontWithSize(Small, goregular.TTF, small)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Warn("could not parse font, using fallback", "font", name, "error", err)
		fonts[name] = basicfont.Face7x13
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		log.Warn(fmt.Sprintf("font %s not loaded, using fallback", name))
		fonts[name] = basicfont.Face7x13
		return basicfont.Face7x13
	}
	return f
}
