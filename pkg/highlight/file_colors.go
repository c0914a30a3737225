package highlight

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cs":   tcell.ColorLime,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sql":  tcell.ColorSpringGreen,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"rb":   tcell.ColorRed,
	"rs":   tcell.ColorOrange,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"png":  tcell.ColorMediumPurple,
	"jpg":  tcell.ColorMediumPurple,
	"log":  tcell.ColorRosyBrown,
}

// ColorOf picks a colour for a file name by its extension.
func ColorOf(name string) tcell.Color {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if color, ok := fileColors[strings.ToLower(ext)]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}
