package dashboard

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return truncateToWidth(s, width)
	}
	return truncateToWidth(s, width-3) + "..."
}

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	current := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if current+rw > width {
			break
		}
		b.WriteRune(r)
		current += rw
	}
	return b.String()
}

func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		runes := []rune(raw)
		start := 0
		for start < len(runes) {
			if runewidth.StringWidth(string(runes[start:])) <= width {
				lines = append(lines, string(runes[start:]))
				break
			}
			curWidth := 0
			lastSpace := -1
			end := start
			for ; end < len(runes); end++ {
				rw := runewidth.RuneWidth(runes[end])
				if curWidth+rw > width {
					break
				}
				curWidth += rw
				if unicode.IsSpace(runes[end]) {
					lastSpace = end
				}
			}
			split := end
			if lastSpace >= start {
				split = lastSpace
			}
			if split == start {
				split = end
				if split == start {
					split = start + 1
				}
			}
			line := strings.TrimRightFunc(string(runes[start:split]), unicode.IsSpace)
			lines = append(lines, line)
			start = split
			for start < len(runes) && unicode.IsSpace(runes[start]) {
				start++
			}
		}
	}
	return lines
}

func wrapLabelValue(label, value string, width int) []string {
	if width <= 0 {
		return []string{label + value}
	}
	labelWidth := runewidth.StringWidth(label)
	if labelWidth >= width {
		return wrapText(label+value, width)
	}
	valueLines := wrapText(value, width-labelWidth)
	if len(valueLines) == 0 {
		return []string{label}
	}
	lines := make([]string, 0, len(valueLines))
	lines = append(lines, label+valueLines[0])
	indent := strings.Repeat(" ", labelWidth)
	for _, line := range valueLines[1:] {
		lines = append(lines, indent+line)
	}
	return lines
}
