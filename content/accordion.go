package content

import "strconv"

// Closed is the Open value of an accordion with no entry expanded.
const Closed = -1

// Accordion tracks the single expanded FAQ entry.
type Accordion struct {
	Open int
	Size int
}

func NewAccordion(size int) Accordion {
	return Accordion{Open: Closed, Size: size}
}

// ParseAccordion restores an accordion from the open index the browser
// sent back. Anything that is not a valid index means no entry is open.
func ParseAccordion(open string, size int) Accordion {
	a := NewAccordion(size)
	if i, err := strconv.Atoi(open); err == nil && a.valid(i) {
		a.Open = i
	}
	return a
}

// Toggle expands entry i and collapses any other. Toggling the expanded
// entry collapses it. Out of range indexes change nothing.
func (a Accordion) Toggle(i int) Accordion {
	if !a.valid(i) {
		return a
	}
	if a.Open == i {
		a.Open = Closed
	} else {
		a.Open = i
	}
	return a
}

func (a Accordion) IsOpen(i int) bool {
	return a.Open == i && a.valid(i)
}

func (a Accordion) valid(i int) bool {
	return i >= 0 && i < a.Size
}
