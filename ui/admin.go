package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/venra/site/cache"
)

const adminContentID = "admin-section-content"

// AdminCachePage is the page cache dashboard.
func AdminCachePage(stats cache.Stats) g.Node {
	return Page(
		PageProps{Title: "Admin Dashboard", Path: "/admin/cache"},
		Main(
			Class("min-h-screen bg-neutral-50 py-12"),
			container(AdminCacheSection(stats)),
		),
	)
}

// AdminCacheSection is swapped in by the dashboard's buttons.
func AdminCacheSection(stats cache.Stats) g.Node {
	return Div(
		ID("admin-section"),
		H1(Class("text-4xl font-bold mb-8"), g.Text("Admin Dashboard")),
		Div(Class("text-neutral-600 text-sm mb-6"), g.Text("Rendered pages and the share card are served from this cache.")),
		Div(
			ID(adminContentID),
			Class("mt-6"),
			CacheStatsPanel("Page Cache", stats, "/admin/cache/clear", "/admin/cache/refresh"),
		),
	)
}

// Generic cache stats panel component
func CacheStatsPanel(title string, stats cache.Stats, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-neutral-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-5 gap-4 mb-4"),
			statCard("Hits", "%d", stats.Hits),
			statCard("Misses", "%d", stats.Misses),
			statCard("Hit Rate", "%.1f%%", stats.HitRate),
			statCard("Current Items", "%d", stats.Items),
			statCard("Memory Used", "%.0f KB", stats.CostKB),
		),
		Div(
			Class("flex gap-4"),
			styledButton("Clear Cache", ButtonDanger,
				hx.Post(clearEndpoint),
				hx.Target("#"+adminContentID),
				hx.Swap("innerHTML"),
			),
			styledButton("Refresh Stats", ButtonPrimary,
				hx.Get(refreshEndpoint),
				hx.Target("#"+adminContentID),
				hx.Swap("innerHTML"),
			),
		),
	)
}

func statCard(label, format string, value any) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
