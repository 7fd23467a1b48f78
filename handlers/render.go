package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if component == nil {
		return nil
	}
	return component.Render(c.Response().BodyWriter())
}

// renderCached serves a page from the page cache, rendering it on a miss.
func (s *Site) renderCached(c *fiber.Ctx, key string, page func() g.Node) error {
	if s.Pages == nil {
		return render(c, page())
	}
	body, err := s.Pages.GetOrLoad(key, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := page().Render(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}
