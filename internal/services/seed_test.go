package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/linkhub/internal/models"
)

const seedYAML = `
brand:
  name: Casa
  effect: aurora
  category_order: [Roleta, Destaques]
social_links:
  - id: 5b8d3c8e-9f4a-4c1e-8a52-0d0f3b1c2a01
    name: Instagram
    url: https://instagram.com/casa
    icon: instagram
  - name: Telegram
    url: https://t.me/casa
links:
  - id: 0f1a2b3c-4d5e-4f60-8172-8394a5b6c7d8
    title: Bonus
    url: https://bonus.example
    category: Destaques
    type: gold
    position: 5
  - title: Cassino
    url: https://cassino.example
    category: Destaques
  - title: Roleta ao vivo
    url: https://roleta.example
    category: Roleta
    badge: NOVO
`

func TestParseSeed(t *testing.T) {
	file, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.NotNil(t, file.Brand)
	assert.Equal(t, "Casa", file.Brand.Name)
	assert.Equal(t, []string{"Roleta", "Destaques"}, file.Brand.CategoryOrder)
	require.Len(t, file.Links, 3)
	assert.Equal(t, "0f1a2b3c-4d5e-4f60-8172-8394a5b6c7d8", file.Links[0].ID.String())
	assert.Equal(t, models.LinkTypeGold, file.Links[0].Type)
	require.NotNil(t, file.Links[2].Badge)
	assert.Equal(t, "NOVO", *file.Links[2].Badge)
	assert.Len(t, file.SocialLinks, 2)
}

func TestParseSeed_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseSeed(strings.NewReader("links:\n  - title: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParseSeed_Empty(t *testing.T) {
	file, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, file.Brand)
	assert.Empty(t, file.Links)
}

func TestSeedService_Import(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seeder := NewSeedService(f.svc, f.links, f.socials, f.brand)

	file, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	res, err := seeder.Import(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Links: 3, SocialLinks: 2, Brand: true}, res)

	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bonus", "Cassino"}, titles(all, "Destaques"))
	assert.Equal(t, []int{1, 2}, positions(all, "Destaques"))
	assert.Equal(t, []int{1}, positions(all, "Roleta"))

	cats, err := f.svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Roleta", cats[0].Name)

	socials, err := f.svc.ListSocials(ctx)
	require.NoError(t, err)
	require.Len(t, socials, 2)
	assert.Equal(t, "Instagram", socials[0].Name)
	assert.Equal(t, 2, socials[1].Position)

	preview, err := f.svc.RenormalizePlan(ctx)
	require.NoError(t, err)
	assert.Empty(t, preview.Links)
	assert.Empty(t, preview.Socials)
}

func TestSeedService_ImportTwiceUpsertsRowsWithIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seeder := NewSeedService(f.svc, f.links, f.socials, f.brand)

	file, err := ParseSeed(strings.NewReader(`
links:
  - id: 0f1a2b3c-4d5e-4f60-8172-8394a5b6c7d8
    title: Bonus
    url: https://bonus.example
`))
	require.NoError(t, err)

	_, err = seeder.Import(ctx, file)
	require.NoError(t, err)
	file.Links[0].Title = "Bonus 2"
	_, err = seeder.Import(ctx, file)
	require.NoError(t, err)

	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bonus 2", all[0].Title)
	assert.Equal(t, models.DefaultCategory, all[0].Category)
}
