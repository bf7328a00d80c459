package render

import "github.com/gdamore/tcell/v2"

// Fixed role colors for the frame. The set is closed: header chrome is cyan,
// added lines green, removed lines red, everything else the terminal default.
var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleAdded   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRemoved = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
)

// sgrForeground maps the basic SGR foreground parameters embedded in command
// output onto cell colors. Anything outside this table is ignored.
var sgrForeground = map[string]tcell.Color{
	"30": tcell.ColorBlack,
	"31": tcell.ColorMaroon,
	"32": tcell.ColorGreen,
	"33": tcell.ColorOlive,
	"34": tcell.ColorNavy,
	"35": tcell.ColorPurple,
	"36": tcell.ColorTeal,
	"37": tcell.ColorSilver,
	"90": tcell.ColorGray,
	"91": tcell.ColorRed,
	"92": tcell.ColorLime,
	"93": tcell.ColorYellow,
	"94": tcell.ColorBlue,
	"95": tcell.ColorFuchsia,
	"96": tcell.ColorAqua,
	"97": tcell.ColorWhite,
}
