// Package waitlist holds the signup modal: the intake form, its single
// tier selection and the submission lifecycle.
package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/venra/site/lead"
	"github.com/venra/site/phone"
)

// State is the modal lifecycle state.
type State int

const (
	Closed State = iota
	Editing
	Submitted
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Editing:
		return "editing"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Open reports whether the modal is mounted.
func (s State) Open() bool {
	return s == Editing || s == Submitted
}

var (
	ErrNotEditing   = errors.New("waitlist: modal is not accepting input")
	ErrIncomplete   = errors.New("waitlist: required fields are empty")
	ErrUnknownField = errors.New("waitlist: unknown field")
	// ErrDiscarded is returned when an insert finished after the modal
	// was closed. The record may still have been written.
	ErrDiscarded = errors.New("waitlist: result discarded, modal closed during submission")
)

// IncompleteError lists the empty required fields. It matches ErrIncomplete.
type IncompleteError struct {
	Missing []Field
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return ErrIncomplete.Error() + ": " + strings.Join(names, ", ")
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// Snapshot is a copy of the modal for rendering.
type Snapshot struct {
	State State
	Form  Form
}

// Modal is safe for concurrent use. Submit releases the lock while the
// insert is pending so Close and Edit stay responsive.
type Modal struct {
	mu     sync.Mutex
	state  State
	form   Form
	epoch  uint64
	logger *zap.Logger
}

// NewModal returns a closed modal. A nil logger discards diagnostics.
func NewModal(logger *zap.Logger) *Modal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Modal{logger: logger}
}

// FromForm rebuilds an editing modal from values posted by the browser.
func FromForm(form Form, logger *zap.Logger) *Modal {
	m := NewModal(logger)
	m.Open()
	m.form = form.Normalize()
	return m
}

// Open moves Closed to Editing with an empty form. It is a no-op when the
// modal is already open.
func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Open() {
		return
	}
	m.state = Editing
	m.form = Form{}
	m.epoch++
}

// Close unmounts the modal from either open state and clears the form.
// A pending submission started before Close is discarded when it returns.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Open() {
		return
	}
	m.state = Closed
	m.form = Form{}
	m.epoch++
}

// Edit sets one field. The phone is passed through the formatter and the
// tier goes through SelectTier.
func (m *Modal) Edit(field Field, value string) error {
	if field == FieldHOASize {
		return m.SelectTier(value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Editing {
		return ErrNotEditing
	}
	switch field {
	case FieldName:
		m.form.Name = value
	case FieldEmail:
		m.form.Email = value
	case FieldPhone:
		m.form.Phone = phone.Format(value)
	case FieldCommunityName:
		m.form.CommunityName = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// SelectTier marks the tier with the given homes label as the only
// selection. Selecting the current tier again changes nothing and labels
// outside lead.Tiers are ignored.
func (m *Modal) SelectTier(homes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Editing {
		return ErrNotEditing
	}
	if _, ok := lead.TierByHomes(homes); ok {
		m.form.HOASize = homes
	}
	return nil
}

// Submit issues exactly one insert with the current values.
//
// On success the modal moves to Submitted and keeps its fields. On failure
// it stays in Editing with the fields unchanged, the failure is logged once
// and returned. There is no in-flight guard: calling Submit again while an
// insert is pending issues a second insert.
func (m *Modal) Submit(ctx context.Context, store lead.Store) error {
	m.mu.Lock()
	if m.state != Editing {
		m.mu.Unlock()
		return ErrNotEditing
	}
	form := m.form
	if missing := form.Missing(); len(missing) > 0 {
		m.mu.Unlock()
		return &IncompleteError{Missing: missing}
	}
	epoch := m.epoch
	m.mu.Unlock()

	err := store.Insert(ctx, form.Lead())

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.logger.Error("waitlist insert failed",
			zap.Error(err),
			zap.String("community", form.CommunityName),
			zap.Stringer("state", m.state),
		)
		return err
	}
	if m.epoch != epoch {
		return ErrDiscarded
	}
	m.state = Submitted
	return nil
}

// Snapshot returns the current state and a copy of the form.
func (m *Modal) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Form: m.form}
}

// State returns the current state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
