package app

import (
	"testing"

	"github.com/silbinarywolf/fish-fiesta/internal/config"
	"github.com/silbinarywolf/fish-fiesta/internal/input"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer/headless"
	"github.com/silbinarywolf/fish-fiesta/internal/state"
)

// windowSettingsDriver records the window settings it was given
type windowSettingsDriver struct {
	headless.App
	width, height     int
	title             string
	decorated         bool
	vsync             bool
	runnableUnfocused bool
}

func (driver *windowSettingsDriver) SetWindowSize(width, height int) {
	driver.width, driver.height = width, height
}

func (driver *windowSettingsDriver) SetWindowTitle(title string) {
	driver.title = title
}

func (driver *windowSettingsDriver) SetWindowDecorated(v bool) {
	driver.decorated = v
}

func (driver *windowSettingsDriver) SetVsyncEnabled(v bool) {
	driver.vsync = v
}

func (driver *windowSettingsDriver) SetRunnableOnUnfocused(v bool) {
	driver.runnableUnfocused = v
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	app, err := New(cfg, &headless.App{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return app
}

func TestLayoutUsesWindowSize(t *testing.T) {
	app := newTestApp(t)
	w, h := app.Layout(100, 100)
	if w != 1600 || h != 900 {
		t.Errorf("expected 1600x900, got %dx%d", w, h)
	}
}

func TestBackgroundFillsWindow(t *testing.T) {
	app := newTestApp(t)
	if app.backgroundScale.ScaleX != 5 || app.backgroundScale.ScaleY != 5 {
		t.Errorf("expected 320x180 background scaled by 5, got %+v", app.backgroundScale)
	}
}

func TestDrawMenu(t *testing.T) {
	app := newTestApp(t)
	screen := &headless.Screen{}
	app.Draw(screen)
	// background, title, play, quit
	if screen.Draws != 4 {
		t.Errorf("expected 4 draw calls in menu, got %d", screen.Draws)
	}
}

func TestDrawPlaying(t *testing.T) {
	app := newTestApp(t)
	if err := app.World().HandleKey(input.KeyEnter); err != nil {
		t.Fatal(err)
	}
	if app.World().State.Mode != state.ModePlaying {
		t.Fatalf("expected to be playing, got %v", app.World().State.Mode)
	}
	screen := &headless.Screen{}
	app.Draw(screen)
	// background, fish, score, play time
	if screen.Draws != 4 {
		t.Errorf("expected 4 draw calls while playing, got %d", screen.Draws)
	}
}

func TestMenuOption(t *testing.T) {
	text, options := menuOption("Play!", true)
	if text != ">Play!" {
		t.Errorf("expected selected marker, got %q", text)
	}
	if options.Color == nil {
		t.Error("expected a colour")
	}
	text, _ = menuOption("Quit!", false)
	if text != "Quit!" {
		t.Errorf("expected plain label, got %q", text)
	}
}

func TestConfigureWindow(t *testing.T) {
	type testCase struct {
		RunInBackground bool
		Borderless      bool
	}
	tests := []testCase{
		{RunInBackground: true, Borderless: true},
		{RunInBackground: false, Borderless: false},
	}
	for _, test := range tests {
		cfg := config.Default()
		cfg.Seed = 1
		cfg.RunInBackground = test.RunInBackground
		cfg.Borderless = test.Borderless
		driver := &windowSettingsDriver{}
		app, err := New(cfg, driver)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		app.configureWindow()
		if driver.runnableUnfocused != test.RunInBackground {
			t.Errorf("expected runnable on unfocused %v, got %v", test.RunInBackground, driver.runnableUnfocused)
		}
		if driver.decorated == test.Borderless {
			t.Errorf("expected decorated %v for borderless %v", !test.Borderless, test.Borderless)
		}
		if driver.width != 1600 || driver.height != 900 {
			t.Errorf("expected 1600x900 window, got %dx%d", driver.width, driver.height)
		}
		if driver.title != cfg.WindowTitle || !driver.vsync {
			t.Errorf("expected title %q with vsync, got %q vsync %v", cfg.WindowTitle, driver.title, driver.vsync)
		}
	}
}

func TestBackgroundScaleFollowsArea(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.WindowWidth = 640
	cfg.WindowHeight = 360
	app, err := New(cfg, &headless.App{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if area := app.World().Area(); area.Width != 640 || area.Height != 360 {
		t.Fatalf("expected 640x360 area, got %+v", area)
	}
	if app.backgroundScale.ScaleX != 2 || app.backgroundScale.ScaleY != 2 {
		t.Errorf("expected 320x180 background scaled by 2, got %+v", app.backgroundScale)
	}
}
