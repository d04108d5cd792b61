package domain

import (
	"strings"
	"unicode/utf16"
)

// Color is the cell styling assigned to a piece of slot text.
type Color struct {
	Name       string `json:"name"`
	Background string `json:"bg"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

var palette = [...]Color{
	{Name: "amber", Background: "#fef3c7", Border: "#f59e0b", Text: "#92400e"},
	{Name: "blue", Background: "#dbeafe", Border: "#3b82f6", Text: "#1e40af"},
	{Name: "emerald", Background: "#d1fae5", Border: "#10b981", Text: "#065f46"},
	{Name: "pink", Background: "#fce7f3", Border: "#ec4899", Text: "#be185d"},
	{Name: "violet", Background: "#e0e7ff", Border: "#8b5cf6", Text: "#5b21b6"},
	{Name: "red", Background: "#fed7d7", Border: "#f56565", Text: "#c53030"},
	{Name: "green", Background: "#c6f6d5", Border: "#48bb78", Text: "#2f855a"},
	{Name: "rose", Background: "#fbb6ce", Border: "#ed64a6", Text: "#b83280"},
	{Name: "light-blue", Background: "#bee3f8", Border: "#4299e1", Text: "#2b6cb0"},
	{Name: "yellow", Background: "#faf089", Border: "#ecc94b", Text: "#b7791f"},
}

func PaletteSize() int {
	return len(palette)
}

// TextHash is the 32-bit "h*31 + c" hash over UTF-16 code units of the normalized text.
func TextHash(text string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(normalizeColorText(text))) {
		h = h*31 + int32(c)
	}
	return h
}

// PaletteIndex maps text to a palette slot. Equal texts, ignoring case and surrounding space,
// always share a slot.
func PaletteIndex(text string) int {
	h := int64(TextHash(text))
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(palette)))
}

// ColorForText returns the color of a cell's text, or false for empty text.
func ColorForText(text string) (Color, bool) {
	if normalizeColorText(text) == "" {
		return Color{}, false
	}
	return palette[PaletteIndex(text)], true
}

func normalizeColorText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
