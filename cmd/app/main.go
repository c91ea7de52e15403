// Interactive Image Processing Preview
// Author: Ervins Strauhmanis
// License: MIT

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"interactive-image-processing/internal/controls"
	"interactive-image-processing/internal/highgui"
	"interactive-image-processing/internal/imageio"
	"interactive-image-processing/internal/preview"
)

const (
	AppName    = "Interactive Image Processing"
	AppVersion = "1.0.0"

	windowTitle = "Image Processor"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Debug("Starting " + AppName)

	path, ok := readImagePath()
	if !ok {
		// Missing path is a silent early exit.
		logger.Debug("No image path provided")
		os.Exit(1)
	}

	loader := imageio.NewLoader(logger)
	img, err := loader.LoadImage(path)
	if err != nil {
		// Unreadable or undecodable input exits silently as well.
		logger.WithError(err).Debug("Unable to load image")
		os.Exit(1)
	}
	defer img.Close()

	defs := controls.Definitions(img.Cols(), img.Rows())
	window := highgui.NewWindow(windowTitle, defs, logger)
	defer window.Close()

	loop := preview.NewLoop(img, window, window, loader, logger)
	if err := loop.Run(); err != nil {
		logger.WithError(err).Fatal("Frame processing failed")
	}

	logger.Info("Application shutting down gracefully")
}

// readImagePath reads one file path from standard input, stripping
// surrounding whitespace and quotes.
func readImagePath() (string, bool) {
	fmt.Print("Image path: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	return path, path != ""
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
