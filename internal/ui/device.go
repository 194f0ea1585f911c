package ui

import (
	"fyne.io/fyne/v2"
)

// DeviceInfo answers the questions the layout math asks about the device
type DeviceInfo struct {
	canvas fyne.Canvas
}

// NewDeviceInfo creates a helper for the given window canvas
func NewDeviceInfo(c fyne.Canvas) *DeviceInfo {
	return &DeviceInfo{canvas: c}
}

// IsMobileDevice checks if the app is running on a mobile device
func (d *DeviceInfo) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// TopInset returns the height of the system bars above the interactive
// area, i.e. the status bar on phones. Desktop windows report 0.
func (d *DeviceInfo) TopInset() float32 {
	if d.canvas == nil {
		return 0
	}
	pos, _ := d.canvas.InteractiveArea()
	if pos.Y < 0 {
		return 0
	}
	return pos.Y
}

// IsLandscape returns true if device is in landscape orientation
func (d *DeviceInfo) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
