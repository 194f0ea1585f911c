package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/cooking/internal/action"
	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/logging"
	"github.com/ytget/cooking/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cooking"
	AppName = "Cooking"

	// EnvAssetsDir points at a directory of replacement images
	EnvAssetsDir = "COOKING_ASSETS"

	WindowWidth  = 400
	WindowHeight = 800
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		// Logging is not configured yet; the default handler still writes
		slog.Error("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	logging.Setup(cfg.LogLevel())

	slog.Info("Cooking starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCookingTheme(cfg.Palette))

	var provider assets.Provider = assets.NewEmbedded()
	if dir := os.Getenv(EnvAssetsDir); dir != "" {
		slog.Info("Loading assets from directory", "dir", dir)
		provider = assets.NewDir(dir, provider)
	}
	myApp.SetIcon(ui.LoadAppIcon(provider))

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	recorder := action.NewRecorder(action.DefaultHistorySize, nil, slog.Default())
	ui.NewCookingScreen(myWindow, cfg, provider, recorder)

	// Show and run
	myWindow.ShowAndRun()
}
