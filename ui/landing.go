package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/venra/site/content"
)

const (
	faqListID   = "faq-list"
	gradient    = "bg-gradient-to-br from-primary-600 via-primary-700 to-accent-600"
	gridPattern = "absolute inset-0 opacity-30 bg-[linear-gradient(rgba(255,255,255,0.1)_1px,transparent_1px),linear-gradient(90deg,rgba(255,255,255,0.1)_1px,transparent_1px)] bg-[size:40px_40px]"
)

// LandingPage renders the marketing page with every FAQ entry collapsed.
func LandingPage(site *content.Site) g.Node {
	return Page(
		PageProps{Path: "/"},
		siteHeader(),
		Div(
			Class("pt-20"),
			hero(site.Hero),
			featureGrid(site.Features),
			stepsRow(site.Steps),
			pricing(site.Pricing),
			trustPanel(site.Trust),
			Section(
				ID("faq"),
				Class("py-20 bg-neutral-50"),
				container(
					sectionHeading(site.FAQ.Title, "mb-16"),
					FAQList(site.FAQ, content.NewAccordion(len(site.FAQ.Items))),
				),
			),
			finalCTA(site.CTA),
			siteFooter(site.Footer),
		),
	)
}

func logo(class string) g.Node {
	return Div(
		Class("flex items-center"),
		icon("building", "h-8 w-8 "+class),
		Span(Class("ml-2 text-xl font-bold"), g.Text(siteName)),
	)
}

func navButton(label, section string) g.Node {
	return Button(
		Type("button"),
		Class("text-neutral-600 hover:text-primary-600 transition-colors"),
		g.Attr("onclick", fmt.Sprintf("scrollToSection('%s')", section)),
		g.Text(label),
	)
}

func siteHeader() g.Node {
	return Div(
		Class("fixed top-0 left-0 right-0 bg-white/80 backdrop-blur-sm shadow-soft z-40"),
		container(
			Div(
				Class("flex items-center justify-between h-20 text-neutral-900"),
				logo("text-primary-600"),
				Nav(
					Class("hidden md:flex items-center space-x-8"),
					navButton("Features", "features"),
					navButton("Pricing", "pricing"),
					navButton("FAQ", "faq"),
					waitlistButton("Join Waitlist", ButtonPrimary),
				),
			),
		),
	)
}

func hero(h content.Hero) g.Node {
	bullets := make([]g.Node, 0, len(h.Bullets))
	for _, b := range h.Bullets {
		bullets = append(bullets, Div(
			Class("flex items-center"),
			Div(Class("bg-white/20 backdrop-blur-sm rounded-full p-1.5"), icon("check-circle", "h-5 w-5 text-white")),
			Span(Class("ml-3 text-white"), g.Text(b)),
		))
	}

	return Header(
		Class(gradient+" text-white relative overflow-hidden min-h-[calc(100vh-5rem)]"),
		Div(Class(gridPattern)),
		Div(
			Class("container mx-auto px-6 py-16 relative"),
			Div(
				Class("flex flex-col items-center text-center max-w-4xl mx-auto"),
				Span(Class("inline-block px-4 py-2 bg-white/10 backdrop-blur-sm rounded-full text-sm font-medium mb-4"), g.Text(h.Badge)),
				H1(Class("text-4xl lg:text-6xl font-bold leading-tight mb-6"), g.Text(h.Title)),
				P(Class("text-xl mb-8 text-white/90 leading-relaxed max-w-2xl"), g.Text(h.Subtitle)),
				Div(Class("flex flex-col items-center space-y-4 mb-8"), g.Group(bullets)),
				waitlistButton(h.CTA, ButtonHero, icon("arrow-right", "ml-2 h-5 w-5")),
			),
			Div(
				Class("mt-16 max-w-5xl mx-auto"),
				Div(
					Class("bg-white rounded-2xl shadow-soft overflow-hidden transform hover:scale-[1.02] transition-transform duration-300"),
					Img(Src(h.Screenshot.Src), Alt(h.Screenshot.Alt), Class("w-full h-auto"), g.Attr("loading", "lazy")),
				),
			),
		),
	)
}

// card is the shared template of the feature grid and the steps row.
func card(c content.Card, background, iconBackground string) g.Node {
	return Div(
		Class(background+" p-6 rounded-xl shadow-soft hover:shadow-glow transition-shadow"),
		Div(Class(iconBackground+" rounded-lg p-3 inline-block mb-4"), icon(c.Icon, "h-6 w-6 text-primary-600")),
		H3(Class("text-xl font-semibold mb-2 text-neutral-900"), g.Text(c.Title)),
		P(Class("text-neutral-600"), g.Text(c.Description)),
	)
}

func featureGrid(s content.Section) g.Node {
	cards := make([]g.Node, 0, len(s.Items))
	for _, c := range s.Items {
		cards = append(cards, card(c, "bg-white", "bg-primary-50"))
	}
	return Section(
		ID("features"),
		Class("py-20 bg-neutral-50"),
		container(
			sectionHeading(s.Title, "mb-4"),
			P(Class("text-neutral-600 text-center mb-16 max-w-2xl mx-auto"), g.Text(s.Subtitle)),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}

func stepsRow(s content.Section) g.Node {
	cards := make([]g.Node, 0, len(s.Items))
	for _, c := range s.Items {
		cards = append(cards, card(c, "bg-neutral-50", "bg-primary-100"))
	}
	return Section(
		Class("py-20 bg-white"),
		container(
			sectionHeading(s.Title, "mb-16"),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"), g.Group(cards)),
		),
	)
}

func pricing(p content.Pricing) g.Node {
	plans := make([]g.Node, 0, len(p.Plans))
	for _, plan := range p.Plans {
		plans = append(plans, planCard(p, plan))
	}
	return Section(
		ID("pricing"),
		Class("py-20 bg-neutral-50"),
		container(
			sectionHeading(p.Title, "mb-6"),
			Div(
				Class("text-center mb-12"),
				Div(
					Class("inline-flex items-center bg-primary-50 rounded-full px-6 py-2 shadow-soft"),
					icon("check-circle", "h-5 w-5 text-primary-600 mr-2"),
					Span(Class("text-primary-800 font-medium"), g.Text(p.Badge)),
				),
			),
			Div(Class("grid md:grid-cols-3 gap-8"), g.Group(plans)),
		),
	)
}

func planCard(p content.Pricing, plan content.Plan) g.Node {
	cardClass := "bg-white"
	periodClass := "text-neutral-500"
	button := ButtonPlan
	if plan.Popular {
		cardClass = "bg-primary-600 text-white scale-105"
		periodClass = "text-primary-100"
		button = ButtonLight
	}

	return Div(
		Class("rounded-xl "+cardClass+" p-8 shadow-soft hover:shadow-glow transition-all relative"),
		g.Attr("data-homes", plan.Homes),
		g.If(plan.Popular, Span(
			Class("absolute -top-4 left-1/2 transform -translate-x-1/2 bg-accent-500 text-white text-sm font-semibold px-4 py-1 rounded-full shadow-soft"),
			g.Text("Most Popular"),
		)),
		H3(Class("text-2xl font-bold mb-4"), g.Text(plan.Name)),
		Div(
			Class("mb-6"),
			Span(Class("text-4xl font-bold"), g.Text("$"+strconv.Itoa(plan.Price))),
			Span(Class(periodClass), g.Text("/month")),
		),
		Ul(
			Class("mb-8 space-y-4"),
			planPerk("users", "Up to "+plan.Homes+" homes"),
			planPerk("credit-card", p.TransactionFee),
			planPerk("clock", p.Perk),
		),
		waitlistButton(p.CTA, button),
	)
}

func planPerk(iconName, text string) g.Node {
	return Li(Class("flex items-center"), icon(iconName, "h-5 w-5 mr-2"), g.Text(text))
}

func trustPanel(t content.Trust) g.Node {
	items := make([]g.Node, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, Div(
			Class("flex items-start"),
			Div(Class("bg-[#F6F5FF] rounded-lg p-3"), icon(item.Icon, "h-6 w-6 text-[#635BFF]")),
			Div(
				Class("ml-4"),
				H3(Class("text-lg font-semibold text-neutral-900"), g.Text(item.Title)),
				P(Class("text-neutral-600"), g.Text(item.Description)),
			),
		))
	}

	facts := make([]g.Node, 0, len(t.Facts))
	for _, f := range t.Facts {
		facts = append(facts, Div(
			Class("flex justify-between items-center border-b border-neutral-200 pb-6"),
			Span(Class("text-neutral-600"), g.Text(f.Label)),
			Span(Class("text-xl font-semibold"), g.Text(f.Value)),
		))
	}

	return Section(
		Class("py-20 bg-white"),
		container(
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl font-bold mb-4"),
					g.Text(t.Title+" "),
					Span(Class("text-[#635BFF]"), g.Text(t.Highlight)),
				),
				P(Class("text-neutral-600 text-xl max-w-3xl mx-auto"), g.Text(t.Subtitle)),
			),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(Class("bg-neutral-50 rounded-2xl p-8 shadow-soft"), Div(Class("space-y-8"), g.Group(items))),
				Div(
					Class("bg-neutral-50 rounded-2xl p-8 shadow-soft"),
					Div(Class("flex justify-center mb-12"), Img(Src(t.Logo.Src), Alt(t.Logo.Alt), Class("h-12"))),
					Div(
						Class("space-y-6"),
						g.Group(facts),
						Div(
							Class("flex items-center justify-center pt-4"),
							icon("shield", "h-5 w-5 text-[#635BFF] mr-2"),
							Span(Class("text-neutral-600"), g.Text(t.Footnote)),
						),
					),
				),
			),
		),
	)
}

// FAQList renders the accordion. Each question asks the server for the
// list after toggling, passing the currently open index.
func FAQList(faq content.FAQ, acc content.Accordion) g.Node {
	items := make([]g.Node, 0, len(faq.Items))
	for i, item := range faq.Items {
		items = append(items, faqItem(i, item, acc))
	}
	return Div(
		ID(faqListID),
		Class("max-w-3xl mx-auto space-y-4"),
		g.Group(items),
	)
}

func faqItem(i int, item content.FAQItem, acc content.Accordion) g.Node {
	open := acc.IsOpen(i)
	answerID := fmt.Sprintf("faq-answer-%d", i)
	chevron := "h-5 w-5 text-neutral-500 transition-transform"
	panel := "px-6 overflow-hidden transition-all duration-200 ease-in-out max-h-0"
	if open {
		chevron += " transform rotate-180"
		panel = "px-6 overflow-hidden transition-all duration-200 ease-in-out max-h-40 pb-4"
	}

	return Div(
		Class("border border-neutral-200 rounded-xl shadow-soft hover:shadow-glow transition-shadow"),
		Button(
			Type("button"),
			Class("w-full px-6 py-4 text-left flex items-center justify-between focus:outline-none"),
			Aria("expanded", strconv.FormatBool(open)),
			Aria("controls", answerID),
			hx.Get(fmt.Sprintf("/faq/%d?open=%d", i, acc.Open)),
			hx.Target("#"+faqListID),
			hx.Swap("outerHTML"),
			H3(Class("text-lg font-semibold text-neutral-900"), g.Text(item.Question)),
			icon("chevron-down", chevron),
		),
		Div(
			ID(answerID),
			Class(panel),
			g.If(!open, Aria("hidden", "true")),
			P(Class("text-neutral-600"), g.Text(item.Answer)),
		),
	)
}

func finalCTA(c content.CTA) g.Node {
	return Section(
		Class("py-20 "+gradient+" relative overflow-hidden"),
		Div(Class(gridPattern)),
		Div(
			Class("container mx-auto px-6 text-center relative"),
			H2(Class("text-3xl md:text-4xl font-bold text-white mb-6"), g.Text(c.Title)),
			P(Class("text-xl text-white/90 mb-8 max-w-2xl mx-auto"), g.Text(c.Subtitle)),
			waitlistButton(c.Button, ButtonHero, icon("arrow-right", "ml-2 h-5 w-5")),
			P(Class("text-white/90 mt-4"), g.Text(c.Note)),
		),
	)
}

func siteFooter(f content.Footer) g.Node {
	return Footer(
		Class("bg-neutral-900 text-white py-12"),
		container(
			Div(
				Class("flex flex-col md:flex-row items-center justify-between"),
				Div(Class("mb-4 md:mb-0"), logo("")),
				Div(
					Class("flex items-center space-x-6"),
					A(Href("/privacy"), Class("text-neutral-400 hover:text-white transition-colors"), g.Text("Privacy Policy")),
					A(Href("/terms"), Class("text-neutral-400 hover:text-white transition-colors"), g.Text("Terms of Service")),
					P(Class("text-neutral-400"), g.Text(f.Copyright)),
				),
			),
		),
	)
}
