package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/venra/site/lead"
	"github.com/venra/site/waitlist"
)

const (
	waitlistModalID = "waitlist-modal"
	tierOptionsID   = "tier-options"
)

// WaitlistModal renders the modal for the snapshot's state. The fragment is
// appended to <body> and removes itself on close. A closed snapshot renders
// nothing. message is shown above the form when not empty.
func WaitlistModal(snap waitlist.Snapshot, message string) g.Node {
	switch snap.State {
	case waitlist.Editing:
		return modalShell(true, waitlistForm(snap.Form, message))
	case waitlist.Submitted:
		return modalShell(false, waitlistConfirmation())
	}
	return nil
}

// modalShell is the overlay. The backdrop closes the modal only while the
// form is shown. Escape closes it in either state; the listener lives on a
// child so it goes away with the modal.
func modalShell(backdropCloses bool, body g.Node) g.Node {
	return Div(
		ID(waitlistModalID),
		Class("fixed inset-0 bg-neutral-900/50 backdrop-blur-sm flex items-center justify-center z-50"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "waitlist-title"),
		g.If(backdropCloses, g.Attr("onclick", "if(event.target===this){this.remove()}")),
		Div(
			hx.Get("/modal/waitlist/close"),
			hx.Trigger("keyup[key=='Escape'] from:body"),
			hx.Target("#"+waitlistModalID),
			hx.Swap("delete"),
		),
		Div(
			Class("bg-white rounded-2xl p-8 max-w-md w-full mx-4 relative shadow-soft"),
			TabIndex("-1"),
			closeButton(),
			body,
		),
	)
}

func closeButton() g.Node {
	return Button(
		Type("button"),
		Class("absolute top-4 right-4 text-neutral-400 hover:text-neutral-600 transition-colors"),
		Aria("label", "Close"),
		g.Attr("onclick", "this.closest('#"+waitlistModalID+"').remove()"),
		icon("x", "h-6 w-6"),
	)
}

func waitlistForm(form waitlist.Form, message string) g.Node {
	return g.Group{
		H2(ID("waitlist-title"), Class("text-2xl font-bold mb-6 text-neutral-900"), g.Text("Join the Waitlist")),
		Form(
			ID("waitlist-form"),
			hx.Post("/api/waitlist"),
			g.Attr("hx-sync", "this:queue all"),
			hx.Target("#"+waitlistModalID),
			hx.Swap("outerHTML"),
			Div(
				Class("space-y-4"),
				g.If(message != "", ValidationError(message)),
				FormGroup("Name", "name", TextInput("text", "name", form.Name, "name", AutoFocus())),
				FormGroup("Email", "email", TextInput("email", "email", form.Email, "email")),
				FormGroup("Phone Number", "phone", PhoneInput(form.Phone)),
				FormGroup("HOA Community Name", "communityName",
					TextInput("text", "communityName", form.CommunityName, "organization")),
				Div(
					Label(Class("block text-sm font-medium text-neutral-700 mb-3"), g.Text("Community Size")),
					TierOptions(form.HOASize),
				),
				Button(
					Type("submit"),
					Class("w-full bg-primary-600 text-white py-3 rounded-lg font-semibold hover:bg-primary-700 transition-colors"),
					g.Text("Join Waitlist"),
				),
			),
		),
	}
}

// PhoneInput is re-rendered by the server on every keystroke with the
// formatted value.
func PhoneInput(value string) g.Node {
	return TextInput("tel", "phone", value, "tel",
		Placeholder("(555) 555-5555"),
		hx.Post("/modal/waitlist/phone"),
		hx.Trigger("input changed"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-sync", "this:replace"),
	)
}

// TierOptions is the single-select community size group. The selection
// travels with the form in a hidden input.
func TierOptions(selected string) g.Node {
	buttons := make([]g.Node, 0, len(lead.Tiers))
	for _, tier := range lead.Tiers {
		buttons = append(buttons, tierButton(tier, tier.Homes == selected))
	}
	return Div(
		ID(tierOptionsID),
		Role("radiogroup"),
		Class("grid grid-cols-3 gap-3"),
		Input(Type("hidden"), Name(string(waitlist.FieldHOASize)), Value(selected)),
		g.Group(buttons),
	)
}

func tierButton(tier lead.Tier, selected bool) g.Node {
	class := "flex flex-col items-center p-3 border rounded-lg transition-all border-neutral-200 hover:border-primary-300 hover:bg-primary-50/50"
	iconClass := "h-5 w-5 mb-1 text-neutral-500"
	checked := "false"
	if selected {
		class = "flex flex-col items-center p-3 border rounded-lg transition-all border-primary-500 bg-primary-50 text-primary-700"
		iconClass = "h-5 w-5 mb-1 text-primary-600"
		checked = "true"
	}
	return Button(
		Type("button"),
		Role("radio"),
		Aria("checked", checked),
		g.Attr("data-homes", tier.Homes),
		Class(class),
		hx.Post("/modal/waitlist/tier/"+tier.Homes),
		hx.Include("#"+tierOptionsID),
		hx.Target("#"+tierOptionsID),
		hx.Swap("outerHTML"),
		icon("users", iconClass),
		Span(Class("text-sm font-medium"), g.Text(tier.Name)),
		Span(Class("text-xs text-neutral-500"), g.Text(tier.Description)),
	)
}

func waitlistConfirmation() g.Node {
	return Div(
		Class("text-center"),
		Div(
			Class("bg-primary-100 rounded-full p-4 w-16 h-16 mx-auto mb-4"),
			icon("check-circle", "h-8 w-8 text-primary-600"),
		),
		H2(ID("waitlist-title"), Class("text-2xl font-bold mb-4 text-neutral-900"), g.Text("Thank You!")),
		P(
			Class("text-neutral-600 mb-6"),
			g.Text("You've been added to our waitlist. We'll notify you when Venra launches!"),
		),
		styledButton("Close", ButtonPrimary,
			AutoFocus(),
			g.Attr("onclick", "this.closest('#"+waitlistModalID+"').remove()"),
		),
	)
}
