// Package content holds the landing page and legal page copy. It is read
// once from the embedded site.yaml.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/venra/site/lead"
)

//go:embed site.yaml
var siteYAML []byte

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Card is one entry of the feature grid, the steps row or the trust panel.
type Card struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type Hero struct {
	Badge      string   `yaml:"badge"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Bullets    []string `yaml:"bullets"`
	CTA        string   `yaml:"cta"`
	Screenshot Image    `yaml:"screenshot"`
}

type Section struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Items    []Card `yaml:"items"`
}

// Plan is a pricing card. Homes is the tier label the plan maps to.
type Plan struct {
	Name    string `yaml:"name"`
	Price   int    `yaml:"price"`
	Homes   string `yaml:"homes"`
	Popular bool   `yaml:"popular"`
}

type Pricing struct {
	Title          string `yaml:"title"`
	Badge          string `yaml:"badge"`
	TransactionFee string `yaml:"transaction_fee"`
	Perk           string `yaml:"perk"`
	CTA            string `yaml:"cta"`
	Plans          []Plan `yaml:"plans"`
}

type Fact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Trust struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Subtitle  string `yaml:"subtitle"`
	Items     []Card `yaml:"items"`
	Logo      Image  `yaml:"logo"`
	Facts     []Fact `yaml:"facts"`
	Footnote  string `yaml:"footnote"`
}

type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQ struct {
	Title string    `yaml:"title"`
	Items []FAQItem `yaml:"items"`
}

type CTA struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Button   string `yaml:"button"`
	Note     string `yaml:"note"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
}

// LegalSection is a numbered heading with an intro paragraph and an
// optional bullet list.
type LegalSection struct {
	Heading string   `yaml:"heading"`
	Intro   string   `yaml:"intro"`
	Bullets []string `yaml:"bullets"`
}

type LegalDocument struct {
	Title    string         `yaml:"title"`
	Sections []LegalSection `yaml:"sections"`
}

// Site is all static copy.
type Site struct {
	Hero     Hero          `yaml:"hero"`
	Features Section       `yaml:"features"`
	Steps    Section       `yaml:"steps"`
	Pricing  Pricing       `yaml:"pricing"`
	Trust    Trust         `yaml:"trust"`
	FAQ      FAQ           `yaml:"faq"`
	CTA      CTA           `yaml:"cta"`
	Footer   Footer        `yaml:"footer"`
	Privacy  LegalDocument `yaml:"privacy"`
	Terms    LegalDocument `yaml:"terms"`
}

var (
	loadOnce sync.Once
	site     *Site
	loadErr  error
)

// Load parses the embedded copy once and returns it.
func Load() (*Site, error) {
	loadOnce.Do(func() {
		site, loadErr = Parse(siteYAML)
	})
	return site, loadErr
}

// MustLoad is Load for callers that cannot continue without content.
func MustLoad() *Site {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes and validates site copy.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if len(s.Features.Items) == 0 || len(s.Steps.Items) == 0 {
		return fmt.Errorf("site content: features and steps must not be empty")
	}
	if len(s.FAQ.Items) == 0 {
		return fmt.Errorf("site content: no FAQ entries")
	}
	if len(s.Pricing.Plans) == 0 {
		return fmt.Errorf("site content: no pricing plans")
	}
	for _, p := range s.Pricing.Plans {
		if _, ok := lead.TierByHomes(p.Homes); !ok {
			return fmt.Errorf("site content: plan %q has homes %q outside the signup tiers", p.Name, p.Homes)
		}
	}
	for _, doc := range []LegalDocument{s.Privacy, s.Terms} {
		if doc.Title == "" || len(doc.Sections) == 0 {
			return fmt.Errorf("site content: legal document %q is empty", doc.Title)
		}
	}
	return nil
}
