package pdfwriter

import (
	"strings"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

// WrapText breaks text into lines that each fit within maxWidth at the
// given font/size, breaking on word boundaries and falling back to a
// character-level split for single words wider than maxWidth.
//
// Grounded on the teacher's internal/pdf/utils.go WrapText/wrapLongWord
// (a greedy word-wrap with a binary fallback for oversized words),
// adapted to the four standard Times families instead of the teacher's
// custom/TTF font registry lookup.
func WrapText(text string, font model.Font, fontSize, maxWidth float64) []string {
	if text == "" {
		return []string{""}
	}
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		if TextWidth(font, fontSize, word) > maxWidth {
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			lines = append(lines, wrapLongWord(word, font, fontSize, maxWidth)...)
			continue
		}

		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if TextWidth(font, fontSize, testLine) <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func wrapLongWord(word string, font model.Font, fontSize, maxWidth float64) []string {
	var lines []string
	runes := []rune(word)
	start := 0

	for start < len(runes) {
		end := start + 1
		for end <= len(runes) {
			if TextWidth(font, fontSize, string(runes[start:end])) > maxWidth {
				break
			}
			end++
		}
		if end > start+1 {
			end--
		}
		if end == start {
			end = start + 1
		}
		lines = append(lines, string(runes[start:end]))
		start = end
	}
	return lines
}
