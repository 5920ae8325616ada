package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art centred in width columns, followed
// by the name of the catalog being browsed.
func RenderBanner(width int, catalog string) string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	artW := 0
	for _, l := range lines {
		artW = max(artW, lipgloss.Width(l))
	}
	pad := ""
	if width > artW {
		pad = strings.Repeat(" ", (width-artW)/2)
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(pad)
		b.WriteString(bannerStyle.Render(l))
		b.WriteByte('\n')
	}
	if catalog != "" {
		b.WriteString(pad)
		b.WriteString(secondaryStyle.Render(catalog + " recipes"))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the column count of stdout, or 80 when it is not a
// terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
