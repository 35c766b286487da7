package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/store/storetest"
)

func TestBrandStore_DefaultsThenUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewBrandStore(storetest.NewDB(t))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBrandSettings(), got)

	got.Name = "Casa do Bônus"
	got.Verified = true
	got.Effect = models.EffectAurora
	got.CategoryOrder = []string{"Slots", "Roleta"}
	require.NoError(t, s.Upsert(ctx, &got))

	got.Tagline = "Novo"
	require.NoError(t, s.Upsert(ctx, &got))

	saved, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BrandSettingsID, saved.ID)
	assert.Equal(t, "Casa do Bônus", saved.Name)
	assert.Equal(t, "Novo", saved.Tagline)
	assert.True(t, saved.Verified)
	assert.Equal(t, models.EffectAurora, saved.Effect)
	assert.Equal(t, []string{"Slots", "Roleta"}, saved.CategoryOrder)
}
