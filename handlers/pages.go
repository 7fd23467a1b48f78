package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/venra/site/content"
	"github.com/venra/site/ui"
)

func (s *Site) HandleHome(c *fiber.Ctx) error {
	return s.renderCached(c, "/", func() g.Node { return ui.LandingPage(s.Content) })
}

func (s *Site) HandlePrivacyPolicy(c *fiber.Ctx) error {
	return s.renderCached(c, "/privacy", func() g.Node { return ui.PrivacyPage(s.Content) })
}

func (s *Site) HandleTermsOfService(c *fiber.Ctx) error {
	return s.renderCached(c, "/terms", func() g.Node { return ui.TermsPage(s.Content) })
}

// HandleFAQToggle toggles one FAQ entry and returns the list. The open
// query value is the entry that was expanded before the click.
func (s *Site) HandleFAQToggle(c *fiber.Ctx) error {
	index, err := ParseIntParam(c, "index")
	if err != nil {
		return err
	}
	acc := content.ParseAccordion(c.Query("open"), len(s.Content.FAQ.Items)).Toggle(index)
	return render(c, ui.FAQList(s.Content.FAQ, acc))
}

// HandleShareImage serves the social share card.
func (s *Site) HandleShareImage(c *fiber.Ctx) error {
	if s.ShareImage == nil {
		return fiber.ErrNotFound
	}
	load := s.ShareImage
	var (
		img []byte
		err error
	)
	if s.Pages != nil {
		img, err = s.Pages.GetOrLoad("/og-image.webp", load)
	} else {
		img, err = load()
	}
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(img)
}
