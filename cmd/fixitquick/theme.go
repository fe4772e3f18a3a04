package main

import "fmt"

// ThemeCmd shows or changes the color theme preference.
type ThemeCmd struct {
	Dark   bool `help:"Enable dark mode." xor:"mode"`
	Light  bool `help:"Enable light mode." xor:"mode"`
	Toggle bool `help:"Flip the current theme." xor:"mode"`
}

func (c *ThemeCmd) Run(deps *Dependencies) error {
	switch {
	case c.Dark:
		deps.Theme.SetDarkMode(deps.Ctx, true)
	case c.Light:
		deps.Theme.SetDarkMode(deps.Ctx, false)
	case c.Toggle:
		deps.Theme.Toggle(deps.Ctx)
	}

	if deps.Theme.DarkMode(deps.Ctx) {
		fmt.Fprintln(deps.Stdout, "Theme: dark")
	} else {
		fmt.Fprintln(deps.Stdout, "Theme: light")
	}
	return nil
}
