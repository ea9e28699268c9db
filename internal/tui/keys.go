package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the client. The sign-in screens use the
// first block, the main loop all of them.
type keyMap struct {
	up, down, enter, esc, version key.Binding

	tab, backtab, quit, logout key.Binding
	sync, reload               key.Binding
	edit, toggle, delete       key.Binding
	copy, copyPlan, newItem    key.Binding
}

func binding(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

var keys = keyMap{
	up:      binding("↑", "up", "up", "k"),
	down:    binding("↓", "down", "down", "j"),
	enter:   binding("enter", "select", "enter"),
	esc:     binding("esc", "back", "esc"),
	version: binding("v", "version", "v"),

	tab:      binding("tab", "next tab", "tab"),
	backtab:  binding("shift+tab", "previous tab", "shift+tab"),
	quit:     binding("q", "quit", "q", "ctrl+c"),
	logout:   binding("L", "log out", "L"),
	sync:     binding("s", "sync now", "s"),
	reload:   binding("r", "reload", "r"),
	edit:     binding("e", "edit", "e"),
	toggle:   binding("x", "toggle", "x", " "),
	delete:   binding("d", "delete", "d"),
	copy:     binding("c", "copy", "c"),
	copyPlan: binding("p", "copy plan", "p"),
	newItem:  binding("n", "new goal", "n"),
}
