package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venra/site/local"
	"github.com/venra/site/metrics"
	"github.com/venra/site/phone"
	"github.com/venra/site/ui"
	"github.com/venra/site/waitlist"
)

// HandleWaitlistModal opens the modal. The fragment is appended to the body
// by the page's open buttons.
func (s *Site) HandleWaitlistModal(c *fiber.Ctx) error {
	if !isHTMX(c) {
		return c.Redirect("/")
	}
	modal := waitlist.NewModal(local.Logger(c))
	modal.Open()
	s.Metrics.ObserveModalOpen()
	return render(c, ui.WaitlistModal(modal.Snapshot(), ""))
}

// HandleWaitlistClose answers the Escape listener. htmx deletes the modal
// itself, so the body stays empty.
func (s *Site) HandleWaitlistClose(c *fiber.Ctx) error {
	return render(c, ui.EmptyResponse())
}

// HandleWaitlistPhone re-renders the phone input with the formatted value.
func (s *Site) HandleWaitlistPhone(c *fiber.Ctx) error {
	return render(c, ui.PhoneInput(phone.Format(c.FormValue(string(waitlist.FieldPhone)))))
}

// HandleWaitlistTier selects a community size and re-renders the option group.
func (s *Site) HandleWaitlistTier(c *fiber.Ctx) error {
	form, err := parseWaitlistForm(c)
	if err != nil {
		return err
	}
	modal := waitlist.FromForm(form, local.Logger(c))
	if err := modal.SelectTier(c.Params("homes")); err != nil {
		return err
	}
	return render(c, ui.TierOptions(modal.Snapshot().Form.HOASize))
}

// HandleWaitlistSubmit stores the lead. A failed insert leaves the modal as
// it is: nothing is swapped and the user is not told.
func (s *Site) HandleWaitlistSubmit(c *fiber.Ctx) error {
	form, err := parseWaitlistForm(c)
	if err != nil {
		return err
	}
	modal := waitlist.FromForm(form, local.Logger(c))

	ctx := c.UserContext()
	if s.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.StoreTimeout)
		defer cancel()
	}

	start := time.Now()
	err = modal.Submit(ctx, s.Store)

	var incomplete *waitlist.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		s.Metrics.ObserveSubmission(metrics.ResultIncomplete)
		return render(c, ui.WaitlistModal(modal.Snapshot(), missingFieldsMessage(incomplete.Missing)))
	case errors.Is(err, waitlist.ErrDiscarded):
		s.Metrics.ObserveSubmission(metrics.ResultDiscarded)
		return c.SendStatus(fiber.StatusNoContent)
	case err != nil:
		// Submit has already logged the failure.
		s.Metrics.ObserveInsert(s.Backend, time.Since(start).Seconds())
		s.Metrics.ObserveSubmission(metrics.ResultStoreError)
		return c.SendStatus(fiber.StatusNoContent)
	}

	s.Metrics.ObserveInsert(s.Backend, time.Since(start).Seconds())
	s.Metrics.ObserveSubmission(metrics.ResultSubmitted)

	snap := modal.Snapshot()
	if s.Notifier != nil {
		s.Notifier.NotifyNewLead(snap.Form.Lead())
	}
	local.Logger(c).Info("waitlist lead stored",
		zap.String("community", snap.Form.CommunityName),
		zap.String("backend", s.Backend),
	)
	return render(c, ui.WaitlistModal(snap, ""))
}
