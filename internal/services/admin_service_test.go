package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
	"github.com/example/linkhub/internal/store"
	"github.com/example/linkhub/internal/store/storetest"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (n *recordingNotifier) SendToAdmin(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return n.err
}

type fixture struct {
	svc      *AdminService
	links    *store.LinkStore
	socials  *store.SocialStore
	brand    *store.BrandStore
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := storetest.NewDB(t)
	f := &fixture{
		links:    store.NewLinkStore(db),
		socials:  store.NewSocialStore(db),
		brand:    store.NewBrandStore(db),
		notifier: &recordingNotifier{},
	}
	f.svc = NewAdminService(f.links, f.socials, f.brand, f.notifier)
	return f
}

func (f *fixture) create(t *testing.T, title, category string, position int) *models.Link {
	t.Helper()
	link, err := f.svc.CreateLink(context.Background(), LinkInput{
		Title:    title,
		URL:      "https://" + title + ".example",
		Category: category,
		Position: position,
	})
	require.NoError(t, err)
	return link
}

// titles returns the titles of category in display order.
func titles(links []models.Link, category string) []string {
	items := ordering.LinkItems(links)
	byID := make(map[uuid.UUID]string, len(links))
	for _, l := range links {
		byID[l.ID] = l.Title
	}
	var out []string
	for _, item := range ordering.InCategory(items, category) {
		out = append(out, byID[item.ID])
	}
	return out
}

func positions(links []models.Link, category string) []int {
	var out []int
	for _, item := range ordering.InCategory(ordering.LinkItems(links), category) {
		out = append(out, item.Position)
	}
	return out
}

func TestAdminService_CreateLinkAppendsByDefault(t *testing.T) {
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "b", "Destaques", 0)
	c := f.create(t, "c", "Destaques", 0)

	assert.Equal(t, 3, c.Position)
	assert.Equal(t, models.LinkTypeGlass, c.Type)
	assert.Len(t, f.notifier.messages, 3)
}

func TestAdminService_CreateLinkSplicesAtPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "b", "Destaques", 0)
	f.create(t, "c", "Destaques", 0)

	n := f.create(t, "n", "Destaques", 2)
	assert.Equal(t, 2, n.Position)

	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "n", "b", "c"}, titles(all, "Destaques"))
	assert.Equal(t, []int{1, 2, 3, 4}, positions(all, "Destaques"))
}

func TestAdminService_CreateLinkClampsPosition(t *testing.T) {
	f := newFixture(t)
	f.create(t, "a", "Slots", 0)

	assert.Equal(t, 2, f.create(t, "far", "Slots", 99).Position)
	assert.Equal(t, 1, f.create(t, "first", " ", 0).Position, "blank category starts its own list")
}

func TestAdminService_UpdateLinkRepositions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.create(t, "a", "Destaques", 0)
	f.create(t, "b", "Destaques", 0)
	c := f.create(t, "c", "Destaques", 0)

	pos := 1
	updated, err := f.svc.UpdateLink(ctx, c.ID, LinkPatch{Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Position)

	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, titles(all, "Destaques"))
	assert.Equal(t, []int{1, 2, 3}, positions(all, "Destaques"))

	title := "  renamed "
	badge := ""
	updated, err = f.svc.UpdateLink(ctx, a.ID, LinkPatch{Title: &title, Badge: &badge})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Nil(t, updated.Badge)
	assert.Equal(t, 2, updated.Position)
}

func TestAdminService_UpdateLinkIntoOtherCategoryLeavesGap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	b := f.create(t, "b", "Destaques", 0)
	f.create(t, "c", "Destaques", 0)
	f.create(t, "r", "Roleta", 0)

	cat, pos := "Roleta", 1
	_, err := f.svc.UpdateLink(ctx, b.ID, LinkPatch{Category: &cat, Position: &pos})
	require.NoError(t, err)

	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "r"}, titles(all, "Roleta"))
	assert.Equal(t, []int{1, 2}, positions(all, "Roleta"))
	assert.Equal(t, []int{1, 3}, positions(all, "Destaques"))
}

func TestAdminService_UpdateLinkUnknown(t *testing.T) {
	f := newFixture(t)
	title := "x"
	_, err := f.svc.UpdateLink(context.Background(), uuid.New(), LinkPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdminService_MoveLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.create(t, "a", "Destaques", 0)
	b := f.create(t, "b", "Destaques", 0)
	f.create(t, "c", "Destaques", 0)

	all, err := f.svc.MoveLink(ctx, b.ID, ordering.Up)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, titles(all, "Destaques"))

	all, err = f.svc.MoveLink(ctx, b.ID, ordering.Up)
	require.NoError(t, err, "moving the first link up is a no-op")
	assert.Equal(t, []string{"b", "a", "c"}, titles(all, "Destaques"))

	all, err = f.svc.MoveLink(ctx, a.ID, ordering.Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, titles(all, "Destaques"))

	all, err = f.svc.MoveLink(ctx, uuid.New(), ordering.Down)
	require.NoError(t, err, "moving an unknown link is a no-op")
	assert.Equal(t, []string{"b", "c", "a"}, titles(all, "Destaques"))
	assert.Equal(t, []int{1, 2, 3}, positions(all, "Destaques"))
}

func TestAdminService_MoveCategorySwapsLabels(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "b", "Destaques", 0)
	f.create(t, "r", "Roleta", 0)
	f.create(t, "s", "Slots", 0)

	all, err := f.svc.MoveCategory(ctx, "Slots", ordering.Left)
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, titles(all, "Roleta"))
	assert.Equal(t, []string{"r"}, titles(all, "Slots"))
	assert.Equal(t, []string{"a", "b"}, titles(all, "Destaques"))

	all, err = f.svc.MoveCategory(ctx, "Destaques", ordering.Left)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(all, "Destaques"))
}

func TestAdminService_RenameCategoryMerges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "r1", "Roleta", 0)
	f.create(t, "r2", "Roleta", 0)
	_, err := f.svc.SetCategoryOrder(ctx, []string{"Roleta", "Destaques"})
	require.NoError(t, err)

	all, err := f.svc.RenameCategory(ctx, "Roleta", "Destaques")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "r1", "r2"}, titles(all, "Destaques"))
	assert.Equal(t, []int{1, 2, 3}, positions(all, "Destaques"))

	brand, err := f.svc.GetBrand(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Destaques"}, brand.CategoryOrder)
}

func TestAdminService_RenameCategoryKeepsOrderSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "r", "Roleta", 0)
	_, err := f.svc.SetCategoryOrder(ctx, []string{"Roleta", "Destaques"})
	require.NoError(t, err)

	_, err = f.svc.RenameCategory(ctx, "Roleta", "Cassino")
	require.NoError(t, err)

	cats, err := f.svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CategorySummary{{Name: "Cassino", Count: 1}, {Name: "Destaques", Count: 1}}, cats)
}

func TestAdminService_RenormalizeLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, l := range []models.Link{
		{Title: "a", URL: "https://a.example", Category: "Destaques", Position: 4},
		{Title: "b", URL: "https://b.example", Category: "Destaques", Position: 9},
		{Title: "r", URL: "https://r.example", Category: "Roleta", Position: 3},
	} {
		l := l
		require.NoError(t, f.links.Insert(ctx, &l))
	}

	preview, err := f.svc.RenormalizePlan(ctx)
	require.NoError(t, err)
	assert.Len(t, preview.Links, 3)
	assert.Empty(t, preview.Socials)
	layout := map[string][]int{}
	for _, c := range preview.Layout {
		for _, item := range c.Items {
			layout[c.Name] = append(layout[c.Name], item.Position)
		}
	}
	assert.Equal(t, map[string][]int{"Destaques": {1, 2}, "Roleta": {1}}, layout)

	stored, err := f.links.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, positions(stored, "Destaques"), "a preview writes nothing")

	all, err := f.svc.RenormalizeLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, positions(all, "Destaques"))
	assert.Equal(t, []int{1}, positions(all, "Roleta"))

	again, err := f.svc.RenormalizeLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, positions(all, "Destaques"), positions(again, "Destaques"))
}

func TestAdminService_SetCategoryOrderDeduplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "r", "Roleta", 0)

	cats, err := f.svc.SetCategoryOrder(ctx, []string{" Roleta", "Roleta", "Destaques"})
	require.NoError(t, err)
	assert.Equal(t, []CategorySummary{{Name: "Roleta", Count: 1}, {Name: "Destaques", Count: 1}}, cats)
}

func TestAdminService_DeleteLinkLeavesGap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	b := f.create(t, "b", "Destaques", 0)
	f.create(t, "c", "Destaques", 0)

	require.NoError(t, f.svc.DeleteLink(ctx, b.ID))
	all, err := f.svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, positions(all, "Destaques"))

	assert.ErrorIs(t, f.svc.DeleteLink(ctx, b.ID), store.ErrNotFound)
}

func TestAdminService_NotifierFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("telegram down")
	link := f.create(t, "a", "Destaques", 0)
	assert.Equal(t, 1, link.Position)
}

func TestAdminService_Socials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ig, err := f.svc.CreateSocial(ctx, SocialInput{Name: "Instagram", URL: "https://instagram.com/x", Icon: "instagram"})
	require.NoError(t, err)
	tg, err := f.svc.CreateSocial(ctx, SocialInput{Name: "Telegram", URL: "https://t.me/x", Icon: "telegram"})
	require.NoError(t, err)
	yt, err := f.svc.CreateSocial(ctx, SocialInput{Name: "YouTube", URL: "https://youtube.com/x", Position: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, yt.Position)

	names := func(list []models.SocialLink) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, s.Name)
		}
		return out
	}

	list, err := f.svc.ListSocials(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"YouTube", "Instagram", "Telegram"}, names(list))

	list, err = f.svc.MoveSocial(ctx, tg.ID, ordering.Up)
	require.NoError(t, err)
	assert.Equal(t, []string{"YouTube", "Telegram", "Instagram"}, names(list))

	list, err = f.svc.MoveSocial(ctx, uuid.New(), ordering.Up)
	require.NoError(t, err, "moving an unknown social link is a no-op")
	assert.Equal(t, []string{"YouTube", "Telegram", "Instagram"}, names(list))

	pos := 1
	_, err = f.svc.UpdateSocial(ctx, ig.ID, SocialPatch{Position: &pos})
	require.NoError(t, err)
	list, err = f.svc.ListSocials(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Instagram", "YouTube", "Telegram"}, names(list))

	require.NoError(t, f.svc.DeleteSocial(ctx, yt.ID))
	list, err = f.svc.RenormalizeSocials(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Position)
	assert.Equal(t, 2, list[1].Position)
}

func TestAdminService_UpdateBrandKeepsCategoryOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.SetCategoryOrder(ctx, []string{"Roleta"})
	require.NoError(t, err)

	brand, err := f.svc.UpdateBrand(ctx, BrandInput{Name: "Casa", Effect: models.EffectAurora, Verified: true})
	require.NoError(t, err)
	assert.Equal(t, "Casa", brand.Name)
	assert.Equal(t, models.EffectAurora, brand.Effect)
	assert.True(t, brand.Verified)
	assert.NotEmpty(t, brand.Tagline)
	assert.Equal(t, []string{"Roleta"}, brand.CategoryOrder)
}

// racingLinks changes a row between the read and the reorder write, the way a
// second operator would.
type racingLinks struct {
	*store.LinkStore
	race func(ctx context.Context)
}

func (r *racingLinks) ApplyPlacements(ctx context.Context, placements []ordering.Placement) error {
	if r.race != nil {
		r.race(ctx)
		r.race = nil
	}
	return r.LinkStore.ApplyPlacements(ctx, placements)
}

func TestAdminService_MoveLinkConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.create(t, "a", "Destaques", 0)
	b := f.create(t, "b", "Destaques", 0)

	racing := &racingLinks{LinkStore: f.links}
	racing.race = func(ctx context.Context) {
		require.NoError(t, f.links.Update(ctx, a.ID, map[string]any{"position": 7}))
	}
	svc := NewAdminService(racing, f.socials, f.brand, nil)

	_, err := svc.MoveLink(ctx, b.ID, ordering.Up)
	require.ErrorIs(t, err, store.ErrConflict)

	got, err := f.links.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Position, "rejected reorder must not be partially applied")
}

// failingApply lets every write through except the reorder batch.
type failingApply struct {
	*store.LinkStore
	err error
}

func (f *failingApply) ApplyPlacements(context.Context, []ordering.Placement) error {
	return f.err
}

func TestAdminService_CreateLinkStopsAfterFailedReorder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	f.create(t, "b", "Destaques", 0)
	sent := len(f.notifier.messages)

	cause := errors.New("connection reset")
	svc := NewAdminService(&failingApply{LinkStore: f.links, err: cause}, f.socials, f.brand, f.notifier)

	_, err := svc.CreateLink(ctx, LinkInput{Title: "n", URL: "https://n.example", Category: "Destaques", Position: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	all, err := f.links.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "n"}, titles(all, "Destaques"), "the inserted row stays where it was appended")
	assert.Equal(t, []int{1, 2, 3}, positions(all, "Destaques"))
	assert.Len(t, f.notifier.messages, sent, "no notification for a failed create")
}

func TestAdminService_UpdateLinkStopsAfterFailedReorder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "a", "Destaques", 0)
	b := f.create(t, "b", "Destaques", 0)

	cause := errors.New("connection reset")
	svc := NewAdminService(&failingApply{LinkStore: f.links, err: cause}, f.socials, f.brand, f.notifier)

	title, pos := "b2", 1
	_, err := svc.UpdateLink(ctx, b.ID, LinkPatch{Title: &title, Position: &pos})
	assert.ErrorIs(t, err, cause)

	got, err := f.links.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b2", got.Title, "the field update is kept")
	assert.Equal(t, 1, got.Position)

	all, err := f.links.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, positions(all, "Destaques"), "the duplicate is left for renormalize")
}
