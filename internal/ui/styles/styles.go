// Package styles provides the lipgloss styles used for terminal messages.
//
// Every message grh prints belongs to one of eight tones. Colors use the
// basic 16-color ANSI palette so they follow the user's terminal theme;
// downsampling and the plain-text fallback happen in the output writer.
package styles

import "charm.land/lipgloss/v2"

// Tone is the emphasis category of a message.
type Tone int

const (
	Reset Tone = iota
	Bright
	Dim
	Red
	Green
	Yellow
	Blue
	Cyan
)

var toneNames = [...]string{"reset", "bright", "dim", "red", "green", "yellow", "blue", "cyan"}

func (t Tone) String() string {
	if t < 0 || int(t) >= len(toneNames) {
		return "unknown"
	}
	return toneNames[t]
}

// Basic ANSI colors
var (
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
	blue   = lipgloss.Color("4")
	cyan   = lipgloss.Color("6")
)

var toneStyles = map[Tone]lipgloss.Style{
	Reset:  lipgloss.NewStyle(),
	Bright: lipgloss.NewStyle().Bold(true),
	Dim:    lipgloss.NewStyle().Faint(true),
	Red:    lipgloss.NewStyle().Foreground(red),
	Green:  lipgloss.NewStyle().Foreground(green),
	Yellow: lipgloss.NewStyle().Foreground(yellow),
	Blue:   lipgloss.NewStyle().Foreground(blue),
	Cyan:   lipgloss.NewStyle().Foreground(cyan),
}

// Style returns the style for a tone. Unknown tones render unstyled.
func Style(t Tone) lipgloss.Style {
	if s, ok := toneStyles[t]; ok {
		return s
	}
	return toneStyles[Reset]
}

// Render renders text in the given tone.
func Render(t Tone, text string) string {
	return Style(t).Render(text)
}
