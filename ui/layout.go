package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/venra/site/analytics"
	"github.com/venra/site/config"
)

const (
	siteName        = "Venra"
	siteDescription = "Venra makes it ridiculously easy to collect HOA dues from homeowners, without manual tracking or spreadsheets."
)

const tailwindTheme = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        primary: {50:'#eef4ff',100:'#dae6ff',300:'#a3c0ff',500:'#4f7cff',600:'#2f5bf5',700:'#2345d8',800:'#1f3aaf'},
        accent: {500:'#8b5cf6',600:'#7c3aed'},
      },
      boxShadow: {
        soft: '0 4px 20px -2px rgba(15, 23, 42, 0.08)',
        glow: '0 8px 30px -4px rgba(47, 91, 245, 0.25)',
      },
    },
  },
}`

// ---- Page Layout ----

// PageProps describes one full page.
type PageProps struct {
	Title       string
	Description string
	Path        string
}

func Page(props PageProps, content ...g.Node) g.Node {
	title := siteName
	if props.Title != "" {
		title = props.Title + " | " + siteName
	}
	description := props.Description
	if description == "" {
		description = siteDescription
	}

	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			analytics.Head(),
			Meta(g.Attr("property", "og:title"), Content(title)),
			Meta(g.Attr("property", "og:description"), Content(description)),
			Meta(g.Attr("property", "og:type"), Content("website")),
			Meta(g.Attr("property", "og:url"), Content(config.BaseURL+props.Path)),
			Meta(g.Attr("property", "og:image"), Content(config.BaseURL+"/og-image.webp")),
			Meta(Name("twitter:card"), Content("summary_large_image")),
			Link(Rel("canonical"), Href(config.BaseURL+props.Path)),
			Script(Src(config.TailwindCDN)),
			Script(g.Raw(tailwindTheme)),
			Script(
				Type("text/javascript"),
				Src(config.HTMXCDN),
				Defer(),
			),
			Script(g.Raw(scrollScript())),
		},
		Body: []g.Node{
			Class("min-h-screen bg-white antialiased"),
			analytics.Body(),
			g.Group(content),
		},
	})
}

// scrollScript defines the smooth scroll used by the header navigation.
// The sticky header covers the top of the viewport.
func scrollScript() string {
	return fmt.Sprintf(`function scrollToSection(id){var el=document.getElementById(id);if(!el){return}`+
		`var top=el.getBoundingClientRect().top+window.scrollY-%d;window.scrollTo({top:top,behavior:'smooth'})}`,
		config.HeaderOffset)
}
