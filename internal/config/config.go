// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	PixelsPerUnit = 38.0 // сколько пикселей в одном шаге тайла
	GridRadius    = 12   // сколько колец тайлов рисовать под маркером
	StrokeWidth   = 1.0
	NodeStroke    = 1.5

	HUDOffsetX    = 12
	HUDOffsetY    = 20
	HUDLineHeight = 16

	MaxPreviewRadius = 9 // клавиши 1..9
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TileColor       = color.RGBA{70, 100, 120, 220}
	TileStrokeColor = color.RGBA{40, 60, 75, 255}
	CursorColor     = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	NodeStrokeColor = color.RGBA{255, 255, 255, 255}
)
