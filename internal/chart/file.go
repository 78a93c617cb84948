package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Renderer writes a chart to w.
type Renderer interface {
	Render(w io.Writer, c *Chart) error
}

// ForPath picks a renderer from the extension of path.
func ForPath(path string) (Renderer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return PlotRenderer{Format: ext}, nil
	case "html", "htm":
		return HTMLRenderer{}, nil
	case "txt":
		return ASCIIRenderer{}, nil
	case "gif":
		return GIFRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// RenderFile renders c into the file at path, creating parent directories.
func RenderFile(path string, c *Chart) error {
	r, err := ForPath(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return r.Render(w, c) })
}

// RenderAnimationFile encodes a as a GIF at path.
func RenderAnimationFile(path string, a *Animation) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".gif" {
		return fmt.Errorf("%w: animations need .gif, got %q", ErrFormat, ext)
	}
	return writeFile(path, func(w io.Writer) error { return GIFRenderer{}.RenderAnimation(w, a) })
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f)
}
