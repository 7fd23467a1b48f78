package handlers

import (
	"encoding/xml"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// sitemapPages are the crawlable pages. Fragments are left out.
var sitemapPages = []SitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/privacy", ChangeFreq: "yearly", Priority: "0.3"},
	{Loc: "/terms", ChangeFreq: "yearly", Priority: "0.3"},
}

// HandleSitemap lists the site's pages under baseURL.
func HandleSitemap(baseURL string) fiber.Handler {
	baseURL = strings.TrimRight(baseURL, "/")
	return func(c *fiber.Ctx) error {
		sitemap := Sitemap{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, page := range sitemapPages {
			page.Loc = baseURL + page.Loc
			sitemap.URLs = append(sitemap.URLs, page)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return c.XML(sitemap)
	}
}
