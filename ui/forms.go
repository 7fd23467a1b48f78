package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

const inputClass = "w-full px-4 py-2 border border-neutral-200 rounded-lg focus:ring-2 focus:ring-primary-500 focus:border-transparent transition-shadow"

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Label(For(fieldID), Class("block text-sm font-medium text-neutral-700 mb-1"), g.Text(labelText)),
		input,
	)
}

// TextInput renders a required input whose id and name are the same.
func TextInput(inputType, id, value, autocomplete string, attrs ...g.Node) g.Node {
	return Input(
		Type(inputType),
		ID(id),
		Name(id),
		Value(value),
		AutoComplete(autocomplete),
		Required(),
		Class(inputClass),
		g.Group(attrs),
	)
}
