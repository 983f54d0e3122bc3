package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	loadOnce    sync.Once
	boldSource  *text.GoTextFaceSource
	plainSource *text.GoTextFaceSource
)

func load() {
	var err error
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("Failed to load bold font: %v", err)
	}
	plainSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("Failed to load regular font: %v", err)
	}
}

// BoldFace returns the embedded Go Bold font at size px.
func BoldFace(size float64) *text.GoTextFace {
	loadOnce.Do(load)
	return &text.GoTextFace{Source: boldSource, Size: size}
}

// Face returns the embedded Go Regular font at size px.
func Face(size float64) *text.GoTextFace {
	loadOnce.Do(load)
	return &text.GoTextFace{Source: plainSource, Size: size}
}
