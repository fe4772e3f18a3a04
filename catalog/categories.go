package catalog

import "github.com/fixitquick/fixitquick"

var builtinCategories = []*fixitquick.Category{
	{
		ID:          "keyboard",
		Name:        "Keyboard Issues",
		Icon:        "Keyboard",
		Description: "Solutions for function keys, special keys, and keyboard shortcuts",
	},
	{
		ID:          "display",
		Name:        "Display Problems",
		Icon:        "Monitor",
		Description: "Screen resolution, brightness, and connection issues",
	},
	{
		ID:          "audio",
		Name:        "Audio Fixes",
		Icon:        "Volume2",
		Description: "Sound not working, microphone issues, and volume controls",
	},
	{
		ID:          "wifi",
		Name:        "Wi-Fi & Internet",
		Icon:        "Wifi",
		Description: "Connection problems, slow internet, and networking issues",
	},
	{
		ID:          "battery",
		Name:        "Battery & Power",
		Icon:        "Battery",
		Description: "Battery life, charging problems, and power settings",
	},
	{
		ID:          "software",
		Name:        "Software Issues",
		Icon:        "AppWindow",
		Description: "Applications not working, updates, and installation help",
	},
}
