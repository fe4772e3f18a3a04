package catalog

// Icon identifies the glyph shown for a category.
type Icon string

// Icons used by the built-in catalog. IconDefault is the fallback for
// names with no mapping.
const (
	IconKeyboard  Icon = "keyboard"
	IconMonitor   Icon = "monitor"
	IconVolume    Icon = "volume"
	IconWifi      Icon = "wifi"
	IconBattery   Icon = "battery"
	IconAppWindow Icon = "app-window"
	IconDefault   Icon = "wrench"
)

// iconNames maps the symbolic icon names carried by catalog data to icons.
// Lookup is explicit rather than dynamic so an unmapped name degrades to a
// known fallback.
var iconNames = map[string]Icon{
	"Keyboard":  IconKeyboard,
	"Monitor":   IconMonitor,
	"Volume2":   IconVolume,
	"Wifi":      IconWifi,
	"Battery":   IconBattery,
	"AppWindow": IconAppWindow,
}

var iconGlyphs = map[Icon]string{
	IconKeyboard:  "⌨",
	IconMonitor:   "🖥",
	IconVolume:    "🔊",
	IconWifi:      "📶",
	IconBattery:   "🔋",
	IconAppWindow: "🗔",
	IconDefault:   "🔧",
}

// ParseIcon resolves a symbolic icon name from catalog data. Unknown names
// resolve to IconDefault.
func ParseIcon(name string) Icon {
	if icon, ok := iconNames[name]; ok {
		return icon
	}
	return IconDefault
}

// Glyph returns the terminal glyph for an icon.
func (i Icon) Glyph() string {
	if glyph, ok := iconGlyphs[i]; ok {
		return glyph
	}
	return iconGlyphs[IconDefault]
}
