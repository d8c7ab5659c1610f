package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidContent = errors.New("site: invalid content")

	//go:embed content.yaml
	defaultContent []byte
)

// Content is everything the pages show that is not markup.
type Content struct {
	Brand struct {
		Name        string `yaml:"name"`
		Tagline     string `yaml:"tagline"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"brand"`

	Event struct {
		Title      string `yaml:"title"`
		Dates      string `yaml:"dates"`
		Duration   string `yaml:"duration"`
		Location   string `yaml:"location"`
		Lead       string `yaml:"lead"`
		Highlights string `yaml:"highlights"`
		Currency   string `yaml:"currency"`
	} `yaml:"event"`

	Links Links `yaml:"links"`

	Pillars  []Card   `yaml:"pillars"`
	Included []string `yaml:"included"`
	Lodge    Card     `yaml:"lodge"`
	Pricing  []Tier   `yaml:"pricing"`
	FAQs     []FAQ    `yaml:"faqs"`
}

type Links struct {
	Register  string `yaml:"register"`
	Instagram string `yaml:"instagram"`
	Linktree  string `yaml:"linktree"`
	Email     string `yaml:"email"`
}

// Mailto returns the mailto: link for the contact address.
func (l Links) Mailto() string { return "mailto:" + l.Email }

type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Tier is one room price. Amount is in whole units of the event currency.
type Tier struct {
	Name      string `yaml:"name"`
	Amount    int64  `yaml:"amount"`
	PerPerson bool   `yaml:"per_person"`
	Note      string `yaml:"note"`
	Highlight bool   `yaml:"highlight"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// DefaultContent parses the embedded content document.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent decodes and validates a YAML content document. Unknown keys
// are rejected so typos do not silently drop copy.
func ParseContent(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Join(ErrInvalidContent, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first missing piece of required copy.
func (c *Content) Validate() error {
	switch {
	case c.Brand.Title == "":
		return fmt.Errorf("%w: brand.title is empty", ErrInvalidContent)
	case c.Event.Title == "":
		return fmt.Errorf("%w: event.title is empty", ErrInvalidContent)
	case c.Event.Currency == "":
		return fmt.Errorf("%w: event.currency is empty", ErrInvalidContent)
	case c.Links.Register == "":
		return fmt.Errorf("%w: links.register is empty", ErrInvalidContent)
	case len(c.Pricing) == 0:
		return fmt.Errorf("%w: no pricing tiers", ErrInvalidContent)
	}
	for i, t := range c.Pricing {
		if t.Name == "" || t.Amount <= 0 {
			return fmt.Errorf("%w: pricing[%d] needs a name and a positive amount", ErrInvalidContent, i)
		}
	}
	return nil
}

var printer = message.NewPrinter(language.English)

// Price formats a tier the way the pricing cards show it, e.g.
// "USD $1,070" or "USD $980 / person".
func (c *Content) Price(t Tier) string {
	s := printer.Sprintf("%s $%d", c.Event.Currency, t.Amount)
	if t.PerPerson {
		s += " / person"
	}
	return s
}
