// Package lead holds the waitlist lead record and the stores that accept it.
package lead

import (
	"strconv"
)

// Lead is a prospective customer captured by the waitlist form. It is
// written once and never read back.
type Lead struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CommunityName string `json:"community_name"`
	// HOASize is nil when no community size tier was selected.
	HOASize *int `json:"hoa_size"`
}

// Tier is one of the fixed community-size bands offered by the form.
type Tier struct {
	Name        string
	Homes       string
	Description string
}

// Tiers is the closed set of community sizes, in display order.
var Tiers = []Tier{
	{Name: "Starter", Homes: "10", Description: "Up to 10 homes"},
	{Name: "Growth", Homes: "25", Description: "Up to 25 homes"},
	{Name: "Scale", Homes: "50", Description: "Up to 50 homes"},
}

// TierByHomes looks up a tier by its homes-count label.
func TierByHomes(homes string) (Tier, bool) {
	for _, t := range Tiers {
		if t.Homes == homes {
			return t, true
		}
	}
	return Tier{}, false
}

// ParseHOASize parses a tier label into a homes count. Unset or
// unparseable labels yield nil, which is stored as NULL.
func ParseHOASize(label string) *int {
	n, err := strconv.Atoi(label)
	if err != nil {
		return nil
	}
	return &n
}

// hoaSizeArg converts HOASize into a driver argument.
func (l Lead) hoaSizeArg() any {
	if l.HOASize == nil {
		return nil
	}
	return *l.HOASize
}
