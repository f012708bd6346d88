package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"brandcarousel/internal/core/interaction"
	"brandcarousel/internal/core/model"
	"brandcarousel/internal/core/motion"
	"brandcarousel/internal/core/sched"
	"brandcarousel/internal/platform"
	"brandcarousel/internal/storage"
	"brandcarousel/internal/ui/carousel"
	"brandcarousel/internal/ui/preferences"
	"brandcarousel/internal/ui/showcase"
	"brandcarousel/internal/ui/tray"
	"brandcarousel/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const (
	appName            = "BrandCarousel"
	motionPollInterval = 5 * time.Second
)

func main() {
	catalogFlag := flag.String("catalog", "", "path to the brand catalog YAML")
	kiosk := flag.Bool("kiosk", false, "show the carousel fullscreen")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Info("main: already running, asking it to show", "error", err)
		if notifyErr := platform.NotifyRunning(appName); notifyErr != nil {
			logger.Warn("main: notify running instance", "error", notifyErr)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("main: settings unavailable, using defaults", "error", err)
	}

	catalogPath := resolveCatalogPath(*catalogFlag, settings, logger)
	items, err := storage.LoadCatalog(catalogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("main: no catalog yet, starting empty", "path", catalogPath)
		} else {
			logger.Error("main: catalog rejected, starting empty", "path", catalogPath, "error", err)
		}
		items = nil
	}

	fyneApp := app.NewWithID("com.brandcarousel.app")
	fyneApp.SetIcon(theme.GridIcon())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	motionToggle := motion.NewToggle(settings.ReduceMotion)
	motionPoller := motion.NewPoller(platform.NewMotionProvider(), motionPollInterval, logger)
	motionPoller.Start()
	defer motionPoller.Stop()
	sensor := motion.New(motion.NewSettingsSource(fyneApp), motionPoller, motionToggle)
	defer sensor.Close()

	desktopApp, hasTray := fyneApp.(desktop.App)
	brands := newCarousel(items, settings.CarouselConfig(), sensor, logger)
	showcaseWindow := showcase.New(fyneApp, showcase.Config{
		Fullscreen:  *kiosk,
		HideOnClose: hasTray,
	}, brands)
	go logInteraction(brands.Subscribe(16), logger)

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		rebuild := updated.CarouselConfig() != settings.CarouselConfig()
		settings = updated
		motionToggle.Set(settings.ReduceMotion)
		if trayManager != nil {
			trayManager.SetReduceMotion(settings.ReduceMotion)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Error("main: save settings", "error", err)
		}
		if rebuild {
			logger.Info("main: carousel timing changed, rebuilding")
			brands = newCarousel(brands.Items(), settings.CarouselConfig(), sensor, logger)
			showcaseWindow.SetCarousel(brands)
			go logInteraction(brands.Subscribe(16), logger)
		}
	})

	if hasTray {
		desktopApp.SetSystemTrayIcon(theme.GridIcon())
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				showcaseWindow.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnReduceMotion: func(enabled bool) {
				settings.ReduceMotion = enabled
				motionToggle.Set(enabled)
				prefsWindow.UpdateSettings(settings)
				if err := storage.SaveSettings(appName, settings); err != nil {
					logger.Error("main: save settings", "error", err)
				}
			},
			OnQuit: func() {
				brands.Destroy()
				fyneApp.Quit()
			},
		}, settings.ReduceMotion)
		trayManager.SetBrandCount(len(items))
	} else {
		logger.Info("main: system tray unsupported, closing the window quits")
		showcaseWindow.SetOnClosed(fyneApp.Quit)
	}

	if err := storage.WatchCatalog(ctx, catalogPath, logger, func(updated []model.Item) {
		fyne.Do(func() {
			brands.SetItems(updated)
			if trayManager != nil {
				trayManager.SetBrandCount(len(updated))
			}
		})
	}); err != nil {
		logger.Warn("main: catalog changes will not be picked up", "error", err)
	}

	go guard.Serve(ctx, func() {
		fyne.Do(showcaseWindow.Show)
	})

	showcaseWindow.Show()
	fyneApp.Run()
}

func newCarousel(items []model.Item, config model.CarouselConfig, sensor *motion.Sensor, logger *slog.Logger) *carousel.Carousel {
	return carousel.New(items, carousel.Options{
		Config:    config,
		Sensor:    sensor,
		Scheduler: sched.Dispatched(sched.Real(), fyne.Do),
		Resolver:  resources.NewResolver(logger, fyne.Do),
		Logger:    logger,
	})
}

func resolveCatalogPath(flagValue string, settings preferences.Settings, logger *slog.Logger) string {
	if flagValue != "" {
		return flagValue
	}
	if settings.CatalogPath != "" {
		return settings.CatalogPath
	}
	path, err := storage.DefaultCatalogPath(appName)
	if err != nil {
		logger.Warn("main: no config directory, using working directory catalog", "error", err)
		return "brands.yaml"
	}
	return path
}

func logInteraction(events <-chan interaction.Event, logger *slog.Logger) {
	for event := range events {
		switch event.Type {
		case interaction.EventSuspended:
			logger.Debug("carousel: autoplay suspended",
				"pointer", event.Snapshot.PointerOver,
				"focus", event.Snapshot.FocusWithin,
				"manual", event.Snapshot.ManualPending)
		case interaction.EventResumed:
			logger.Debug("carousel: autoplay resumed")
		case interaction.EventActiveChanged:
			logger.Info("carousel: active brand changed", "id", event.Snapshot.ActiveID)
		}
	}
}
