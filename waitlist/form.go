package waitlist

import (
	"github.com/venra/site/lead"
	"github.com/venra/site/phone"
)

// Field names a form input. The values match the form's input names.
type Field string

const (
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldPhone         Field = "phone"
	FieldCommunityName Field = "communityName"
	FieldHOASize       Field = "hoaSize"
)

// requiredFields is the order in which missing fields are reported.
var requiredFields = []Field{FieldName, FieldEmail, FieldPhone, FieldCommunityName}

// Form is the intake form as the user sees it. HOASize holds the selected
// tier's homes label, "" when no tier is selected.
type Form struct {
	Name          string `form:"name"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	CommunityName string `form:"communityName"`
	HOASize       string `form:"hoaSize"`
}

// Value returns the current value of f.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldCommunityName:
		return f.CommunityName
	case FieldHOASize:
		return f.HOASize
	}
	return ""
}

// Missing lists the required fields that are empty. Whitespace counts as
// a value, as it does for the browser's required check.
func (f Form) Missing() []Field {
	var missing []Field
	for _, field := range requiredFields {
		if f.Value(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Complete reports whether every required field has a value.
func (f Form) Complete() bool {
	return len(f.Missing()) == 0
}

// Lead converts the form to the record that is inserted.
func (f Form) Lead() lead.Lead {
	return lead.Lead{
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		CommunityName: f.CommunityName,
		HOASize:       lead.ParseHOASize(f.HOASize),
	}
}

// Normalize applies the same input rules Edit does to values posted in one
// request: the phone is formatted and an unknown tier is dropped.
func (f Form) Normalize() Form {
	f.Phone = phone.Format(f.Phone)
	if _, ok := lead.TierByHomes(f.HOASize); !ok {
		f.HOASize = ""
	}
	return f
}
