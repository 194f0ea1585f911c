package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/model"
)

type rect = layout.Rect

// AppIcon is the asset used as window and launcher icon
const AppIcon = model.AssetStrawberryPie

// LoadAppIcon resolves the application icon
func LoadAppIcon(p assets.Provider) fyne.Resource {
	return assets.Resolve(p, AppIcon)
}

// newAssetImage creates an image for ref sized to size x size
func newAssetImage(p assets.Provider, ref model.AssetRef, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(assets.Resolve(p, ref))
	img.FillMode = canvas.ImageFillContain
	if size > 0 {
		img.SetMinSize(fyne.NewSize(size, size))
	}
	return img
}

func toPos(r rect) fyne.Position {
	return fyne.NewPos(r.X, r.Y)
}

func toSize(r rect) fyne.Size {
	return fyne.NewSize(r.W, r.H)
}

// place moves and resizes obj to the frame
func place(obj fyne.CanvasObject, r rect) {
	obj.Move(toPos(r))
	obj.Resize(toSize(r))
}
