package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/venra/site/config"
	"github.com/venra/site/content"
)

func PrivacyPage(site *content.Site) g.Node {
	return LegalPage("/privacy", site.Privacy)
}

func TermsPage(site *content.Site) g.Node {
	return LegalPage("/terms", site.Terms)
}

// LegalPage renders a static legal document.
func LegalPage(path string, doc content.LegalDocument) g.Node {
	sections := make([]g.Node, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, legalSection(s))
	}

	return Page(
		PageProps{Title: doc.Title, Path: path},
		Div(
			Class("min-h-screen bg-neutral-50"),
			Div(
				Class("container mx-auto px-6 py-12"),
				backHomeLink(),
				Div(
					Class("prose max-w-3xl mx-auto"),
					H1(Class("text-3xl font-bold mb-8"), g.Text(doc.Title)),
					P(Class("text-neutral-600 mb-6"), g.Text("Last updated: "+config.LegalLastUpdated)),
					g.Group(sections),
				),
			),
		),
	)
}

func legalSection(s content.LegalSection) g.Node {
	var bullets g.Node
	if len(s.Bullets) > 0 {
		items := make([]g.Node, 0, len(s.Bullets))
		for _, b := range s.Bullets {
			items = append(items, Li(g.Text(b)))
		}
		bullets = Ul(Class("list-disc pl-6 mb-4"), g.Group(items))
	}
	return Section(
		Class("mb-8"),
		H2(Class("text-2xl font-semibold mb-4"), g.Text(s.Heading)),
		P(Class("mb-4"), g.Text(s.Intro)),
		bullets,
	)
}
