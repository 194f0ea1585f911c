package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/cooking/internal/config"
)

// CookingTheme applies the configured palette to Fyne's built-in widgets.
// The screen is always drawn light, whatever the system variant.
type CookingTheme struct {
	palette config.PaletteConfig
}

// NewCookingTheme creates a theme for the given palette
func NewCookingTheme(palette config.PaletteConfig) fyne.Theme {
	return &CookingTheme{palette: palette}
}

// Color returns theme colors
func (t *CookingTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Pink.NRGBA
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.palette.Background.NRGBA
	case theme.ColorNameForeground:
		return t.palette.Foreground.NRGBA
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return t.palette.LightGray.NRGBA
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return t.palette.DarkGray.NRGBA
	case theme.ColorNameShadow:
		return ShadowColor
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *CookingTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CookingTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CookingTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return BodyTextSize
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return ButtonCornerRadius
	}

	return theme.DefaultTheme().Size(name)
}
