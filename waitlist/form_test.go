package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormMissing(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want []Field
	}{
		{"empty", Form{}, []Field{FieldName, FieldEmail, FieldPhone, FieldCommunityName}},
		{"whitespace counts as a value", Form{Name: "  ", Email: "a@b.co", Phone: "555", CommunityName: "Oak"}, nil},
		{"tier is optional", Form{Name: "Jane", Email: "a@b.co", Phone: "555", CommunityName: "Oak"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Missing())
			assert.Equal(t, tt.want == nil, tt.form.Complete())
		})
	}
}

func TestFormLead(t *testing.T) {
	f := Form{Name: "Jane Doe", Email: "jane@example.com", Phone: "(202) 555-1234", CommunityName: "Oak Ridge HOA", HOASize: "50"}
	l := f.Lead()
	assert.Equal(t, "Oak Ridge HOA", l.CommunityName)
	require.NotNil(t, l.HOASize)
	assert.Equal(t, 50, *l.HOASize)

	f.HOASize = ""
	assert.Nil(t, f.Lead().HOASize)
}

func TestFormValue(t *testing.T) {
	f := Form{Name: "n", Email: "e", Phone: "p", CommunityName: "c", HOASize: "10"}
	assert.Equal(t, "n", f.Value(FieldName))
	assert.Equal(t, "e", f.Value(FieldEmail))
	assert.Equal(t, "p", f.Value(FieldPhone))
	assert.Equal(t, "c", f.Value(FieldCommunityName))
	assert.Equal(t, "10", f.Value(FieldHOASize))
	assert.Equal(t, "", f.Value(Field("other")))
}
