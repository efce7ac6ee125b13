package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 16

// trayIconPNG draws the 16x16 eighth-note status icon. White on
// transparent so it reads as a template image in the menu bar.
func trayIconPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	white := color.RGBA{255, 255, 255, 255}

	set := func(x, y int) { img.SetRGBA(x, y, white) }

	// Stem
	for y := 2; y <= 13; y++ {
		set(8, y)
	}
	// Note head
	for _, x := range []int{6, 7, 9, 10} {
		set(x, 11)
		set(x, 12)
	}
	for _, x := range []int{7, 8, 9} {
		set(x, 13)
	}
	// Flag
	for _, x := range []int{9, 10, 11} {
		set(x, 2)
	}
	set(10, 3)
	set(11, 3)
	set(11, 4)
	set(11, 5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Errorf("Cannot encode tray icon: %v", err)
		return nil
	}
	return buf.Bytes()
}
