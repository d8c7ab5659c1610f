package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interalchemy/rewilding/modules/site"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	c, err := site.DefaultContent()
	require.NoError(t, err)

	assert.Equal(t, "Rewilding in the Amazon", c.Event.Title)
	assert.Equal(t, "Jan 26–31, 2026", c.Event.Dates)
	assert.Equal(t, "/rewilding/register", c.Links.Register)
	assert.Equal(t, "mailto:interalchemyrewilding@gmail.com", c.Links.Mailto())
	assert.Len(t, c.Pricing, 4)
	assert.Len(t, c.Included, 8)
	assert.Len(t, c.FAQs, 6)
	assert.Len(t, c.Pillars, 3)
}

func TestContentPrice(t *testing.T) {
	t.Parallel()

	c, err := site.DefaultContent()
	require.NoError(t, err)

	want := []string{"USD $1,070", "USD $2,080", "USD $1,040", "USD $980 / person"}
	for i, tier := range c.Pricing {
		assert.Equal(t, want[i], c.Price(tier), tier.Name)
	}
}

func TestParseContent(t *testing.T) {
	t.Parallel()

	valid := `
brand: {title: Brand}
event: {title: Retreat, currency: EUR}
links: {register: /register}
pricing:
  - {name: Solo, amount: 12500}
`

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "minimal", doc: valid},
		{name: "empty document", doc: "", wantErr: true},
		{name: "malformed yaml", doc: "brand: [", wantErr: true},
		{name: "unknown key", doc: valid + "extra: true\n", wantErr: true},
		{name: "missing title", doc: "event: {title: Retreat, currency: EUR}\nlinks: {register: /r}\npricing: [{name: A, amount: 1}]", wantErr: true},
		{name: "no pricing", doc: "brand: {title: B}\nevent: {title: R, currency: EUR}\nlinks: {register: /r}", wantErr: true},
		{name: "zero amount", doc: "brand: {title: B}\nevent: {title: R, currency: EUR}\nlinks: {register: /r}\npricing: [{name: A, amount: 0}]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := site.ParseContent([]byte(tt.doc))
			if tt.wantErr {
				assert.ErrorIs(t, err, site.ErrInvalidContent)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "EUR $12,500", c.Price(c.Pricing[0]))
		})
	}
}
