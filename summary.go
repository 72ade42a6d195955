package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"suah.dev/mpicons/catalog"
	"suah.dev/mpicons/generator"
)

var (
	accent = lipgloss.Color("#3cc51f")
	muted  = lipgloss.Color("#7A7E83")
	amber  = lipgloss.Color("#F59E0B")
)

func printSummary(w io.Writer, dir string, results []generator.Result) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(accent)
	note := r.NewStyle().Foreground(amber)
	dim := r.NewStyle().Foreground(muted)

	tabs, pages := 0, 0
	for _, res := range results {
		switch res.Kind {
		case catalog.KindTabBar:
			tabs++
		case catalog.KindPage:
			pages++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, title.Render("All icons created"))
	fmt.Fprintf(w, "Location: %s/\n", dir)
	fmt.Fprintf(w, "Count:    %d tab-bar + %d page = %d\n", tabs, pages, tabs+pages)
	fmt.Fprintln(w)
	fmt.Fprintln(w, note.Render("These are plain placeholders. Replace them with designed icons."))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, dim.Render("1. Recompile the project in WeChat DevTools"))
	fmt.Fprintln(w, dim.Render("2. Image resources should now load without errors"))
	fmt.Fprintln(w, dim.Render("3. Swap in the final icon designs when they are ready"))
}
