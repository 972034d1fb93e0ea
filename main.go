package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/frame-player/internal/catalog"
	"github.com/ytget/frame-player/internal/config"
	"github.com/ytget/frame-player/internal/logger"
	"github.com/ytget/frame-player/internal/playback"
	"github.com/ytget/frame-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.frame-player"
	AppName = "Frame Player"
)

// startupFPS resolves the effective startup frame rate: a non-zero flag value
// overrides the saved default, zero keeps it.
func startupFPS(flagValue, saved int) int {
	if flagValue == 0 {
		return saved
	}
	return flagValue
}

func main() {
	fpsFlag := flag.Int("fps", 0, "initial playback rate in frames per second (1-60); 0 uses the saved default")
	loopFlag := flag.Bool("loop", false, "start with looping enabled")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	logFileFlag := flag.String("log-file", "", "also write logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <root-directory>\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Plays frame sequences from <root-directory>/<character>/<animation>/.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	rootDir := flag.Arg(0)
	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "%s: not a directory: %s\n", AppName, rootDir)
		os.Exit(1)
	}

	logLevel := "info"
	if *debugFlag {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, *logFileFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%s: logger init failed: %v\n", AppName, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Infof("%s v%s starting, root=%s", AppName, version, rootDir)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	player := playback.NewPlayer()
	player.SetFPS(settings.GetDefaultFPS())
	player.SetLoop(settings.GetDefaultLoop())

	// Command-line flags take precedence over saved defaults
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			player.SetFPS(startupFPS(*fpsFlag, settings.GetDefaultFPS()))
		case "loop":
			player.SetLoop(*loopFlag)
		}
	})

	scanner := catalog.NewScanner(rootDir)

	// An unreadable or empty root is a startup error, not a UI state
	characters, err := scanner.ListCharacters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read root directory: %v\n", AppName, err)
		os.Exit(1)
	}
	if len(characters) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no character directories found under %s\n", AppName, rootDir)
		os.Exit(1)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, scanner, player)

	// Show and run
	myWindow.ShowAndRun()
}
