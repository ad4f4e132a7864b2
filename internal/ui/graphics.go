package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
)

// TerminalCapabilities represents which graphics protocols the terminal supports.
type TerminalCapabilities struct {
	SupportsKitty  bool
	SupportsSixel  bool
	SupportsITerm2 bool
}

// DetectTerminalCapabilities detects which graphics protocols the terminal supports.
func DetectTerminalCapabilities() TerminalCapabilities {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	return TerminalCapabilities{
		SupportsKitty:  strings.Contains(term, "kitty") || os.Getenv("KITTY_WINDOW_ID") != "",
		SupportsSixel:  detectSixelSupport(),
		SupportsITerm2: termProgram == "iTerm.app",
	}
}

// detectSixelSupport checks if the terminal supports Sixel graphics.
// This is a simplified check - we look for common Sixel-capable terminals.
func detectSixelSupport() bool {
	term := os.Getenv("TERM")

	// Xterm with Sixel support
	if strings.Contains(term, "xterm") && os.Getenv("XTERM_VERSION") != "" {
		return true
	}

	// MLTerm
	if strings.Contains(term, "mlterm") {
		return true
	}

	// WezTerm
	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		return true
	}

	// Foot terminal
	if strings.Contains(term, "foot") {
		return true
	}

	return false
}

// RenderImageArt renders a decoded image as colored ASCII art sized for
// the given character box. ASCII is the universal fallback; protocol
// rendering (Kitty, Sixel, iTerm2) would slot in here per the detected
// capabilities.
func RenderImageArt(img image.Image, targetWidth, targetHeight int) string {
	if targetWidth <= 0 {
		targetWidth = 48
	}
	if targetHeight <= 0 {
		targetHeight = 16
	}

	// Downscale before conversion; image2ascii walks every sampled pixel
	// and full-size photos make that slow.
	maxPixelWidth := uint(targetWidth * 8)
	if img.Bounds().Dx() > int(maxPixelWidth) {
		img = resize.Thumbnail(maxPixelWidth, maxPixelWidth, img, resize.Bilinear)
	}

	converter := convert.NewImageConverter()
	opts := convert.DefaultOptions
	opts.FixedWidth = targetWidth
	opts.FixedHeight = targetHeight
	opts.Colored = true
	opts.Ratio = 0.5 // terminal character aspect ratio

	return converter.Image2ASCIIString(img, &opts)
}

// RenderImageBytes decodes and renders an image fetched from the API.
func RenderImageBytes(data []byte, targetWidth, targetHeight int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return RenderImageArt(img, targetWidth, targetHeight), nil
}

// RenderImageFile decodes and renders a local image file, used for
// pending-upload previews.
func RenderImageFile(path string, targetWidth, targetHeight int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return RenderImageArt(img, targetWidth, targetHeight), nil
}
