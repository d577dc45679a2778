package diff

import (
	"bufio"
	"strings"

	"github.com/fatih/color"
)

var (
	addedFmt   = color.New(color.FgGreen).SprintFunc()
	removedFmt = color.New(color.FgRed).SprintFunc()
	hunkFmt    = color.New(color.FgCyan).SprintFunc()
)

// Colorize renders a unified diff (as produced by Unified) with per-line
// coloring: additions green, removals red, hunk headers cyan. Lines that
// are neither are passed through unchanged.
func Colorize(unified string) string {
	if unified == "" {
		return unified
	}

	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(unified))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			b.WriteString(line)
		case strings.HasPrefix(line, "@@"):
			b.WriteString(hunkFmt(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedFmt(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedFmt(line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
