package ui

import (
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func container(content ...g.Node) g.Node {
	return Div(
		Class("container mx-auto px-6"),
		g.Group(content),
	)
}

func sectionHeading(text string, class string) g.Node {
	return H2(Class("text-3xl font-bold text-center text-neutral-900 "+class), g.Text(text))
}

// ---- Button Components ----

type ButtonVariant string

const (
	ButtonPrimary ButtonVariant = "primary"
	ButtonLight   ButtonVariant = "light"
	ButtonHero    ButtonVariant = "hero"
	ButtonPlan    ButtonVariant = "plan"
	ButtonDanger  ButtonVariant = "danger"
)

func getButtonClass(variant ButtonVariant) string {
	switch variant {
	case ButtonLight:
		return "w-full py-3 rounded-lg font-semibold bg-white text-primary-600 hover:bg-primary-50 transition-colors shadow-soft"
	case ButtonPlan:
		return "w-full py-3 rounded-lg font-semibold bg-primary-600 text-white hover:bg-primary-700 transition-colors shadow-soft"
	case ButtonDanger:
		return "bg-red-600 text-white px-4 py-2 rounded-lg hover:bg-red-700 transition-colors"
	case ButtonHero:
		return "bg-white text-primary-600 px-8 py-4 rounded-lg font-semibold text-lg hover:bg-primary-50 transition-colors inline-flex items-center shadow-soft"
	default:
		return "bg-primary-600 text-white px-6 py-2 rounded-lg hover:bg-primary-700 transition-colors"
	}
}

func styledButton(text string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Type("button"), Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

// waitlistButton opens the signup modal. A second click while the modal
// is mounted does nothing.
func waitlistButton(text string, variant ButtonVariant, extra ...g.Node) g.Node {
	return styledButton(text, variant,
		hx.Get("/modal/waitlist"),
		hx.Target("body"),
		hx.Swap("beforeend"),
		g.Attr("hx-on::before-request", "if(document.getElementById('"+waitlistModalID+"')){event.preventDefault()}"),
		g.Group(extra),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Role("alert"),
		Class("bg-red-50 border border-red-200 text-red-700 px-4 py-3 rounded-lg text-sm"),
		g.Text(message),
	)
}

func ErrorPage(code int, message string) g.Node {
	title := http.StatusText(code)
	if title == "" {
		title = "Error"
	}
	return Page(
		PageProps{Title: fmt.Sprintf("Error %d", code)},
		Div(
			Class("min-h-screen bg-neutral-50 flex items-center"),
			container(
				Div(
					Class("max-w-xl mx-auto text-center"),
					H1(Class("text-4xl font-bold mb-4 text-neutral-900"), g.Textf("%d %s", code, title)),
					P(Class("text-neutral-600 mb-8"), g.Text(message)),
					backHomeLink(),
				),
			),
		),
	)
}

func backHomeLink() g.Node {
	return A(
		Href("/"),
		Class("inline-flex items-center text-primary-600 hover:text-primary-700 mb-8"),
		icon("arrow-left", "h-5 w-5 mr-2"),
		g.Text("Back to Home"),
	)
}

// EmptyResponse returns an empty div for HTMX responses that don't need content
func EmptyResponse() g.Node {
	return Div()
}
