package asset

import (
	_ "embed"
	"image"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed background.png
var Background string

//go:embed fish.png
var Fish string

// Font is used for the title menu and HUD
var Font = goregular.TTF

// DecodeImage decodes one of the embedded images, name is only used for
// the error message
func DecodeImage(name, data string) (image.Image, error) {
	img, _, err := image.Decode(strings.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode image: %s", name)
	}
	return img, nil
}
