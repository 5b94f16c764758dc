package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// fallbackWidth is used when neither a flag, the settings, nor the terminal
// gives a width.
const fallbackWidth = 100

type sizeOptions struct {
	width  int
	height int
}

// resolve fills unset dimensions from settings and then the terminal. An
// unknown height stays unbounded.
func (o sizeOptions) resolve(app *AppContext) (int, int) {
	width, height := o.width, o.height
	if width <= 0 {
		width = app.Settings.Viewport.Width
	}
	if height <= 0 {
		height = app.Settings.Viewport.Height
	}

	if width <= 0 || height <= 0 {
		if tw, th, err := terminalSize(); err == nil {
			if width <= 0 {
				width = tw
			}
			if height <= 0 {
				height = th
			}
		}
	}

	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = -1
	}
	return width, height
}

func terminalSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

func validateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("layout file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("layout file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("layout path %s is a directory", abs)
	}

	return nil
}
