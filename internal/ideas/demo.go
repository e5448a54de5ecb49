package ideas

// Demo returns the built-in starter set so the app renders something
// before any file is loaded.
func Demo() Set {
	return Set{
		Center: "terminal tools",
		Ideas: []Idea{
			{ID: "tui", Phrase: "TUI dashboards", Category: "interface", Description: "Full-screen dashboards built from cell grids instead of pixels."},
			{ID: "pipes", Phrase: "composable pipes", Category: "workflow", Description: "Small programs chained through stdin and stdout."},
			{ID: "fuzzy", Phrase: "fuzzy finders", Category: "navigation", Description: "Incremental filtering over files, history, and symbols."},
			{ID: "mux", Phrase: "terminal multiplexers", Category: "workflow", Description: "Persistent sessions, panes, and window layouts."},
			{ID: "braille", Phrase: "braille plotting", Category: "graphics", Description: "2x4 sub-cell dots for high-resolution terminal charts."},
			{ID: "ssh", Phrase: "remote sessions", Category: "network", Description: "Running interfaces over a plain byte stream."},
			{ID: "repl", Phrase: "interactive REPLs", Category: "interface", Description: "Immediate feedback loops for exploration."},
			{ID: "themes", Phrase: "adaptive themes", Category: "graphics", Description: "Palettes that degrade gracefully across color profiles."},
			{ID: "keymaps", Phrase: "modal keymaps", Category: "navigation", Description: "Vi-style modes that keep hands on the home row."},
			{ID: "logs", Phrase: "live log viewers", Category: "workflow", Description: "Tailing, filtering, and highlighting streams in place."},
			{ID: "mouse", Phrase: "mouse reporting", Category: "interface", Description: "Cell-level pointer events in an alt-screen program."},
			{ID: "notify", Phrase: "desktop notifications", Category: "network", Description: "Escape sequences that reach outside the terminal."},
		},
	}
}
