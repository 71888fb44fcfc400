package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gbcc/internal/game"
)

var (
	_ AssetService    = (*DefaultAssetService)(nil)
	_ AssetService    = (*MockAssetService)(nil)
	_ SpriteService   = (*DefaultSpriteService)(nil)
	_ SpriteService   = (*MockSpriteService)(nil)
	_ VariableService = (*DefaultVariableService)(nil)
	_ VariableService = (*MockVariableService)(nil)
	_ EntityService   = (*DefaultEntityService)(nil)
	_ EntityService   = (*MockEntityService)(nil)
)

func TestDefaultSpriteServiceAllocatesMonotonically(t *testing.T) {
	s := NewDefaultSpriteService()
	require.Equal(t, 0, s.AllocateSlot())
	require.Equal(t, 1, s.AllocateSlot())
	require.Equal(t, 2, s.AllocateSlot())
}

func TestDefaultAssetServiceRegisterAndResolve(t *testing.T) {
	s := NewDefaultAssetService()
	s.RegisterAsset("sprites/hero.png")
	path, ok := s.ResolveAsset("sprites/hero.png")
	require.True(t, ok)
	require.Equal(t, "sprites/hero.png", path)
	require.True(t, s.ValidateAsset("sprites/hero.png"))
	require.False(t, s.ValidateAsset("sprites/missing.png"))
}

func TestDefaultEntityServiceQueryByTag(t *testing.T) {
	s := NewDefaultEntityService()
	s.RegisterEntity(game.Entity{Name: "goblin1", Tag: "enemy"})
	s.RegisterEntity(game.Entity{Name: "goblin2", Tag: "enemy"})
	s.RegisterEntity(game.Entity{Name: "hero", Tag: "player"})

	enemies := s.QueryByTag("enemy")
	require.Len(t, enemies, 2)
}

func TestMockAssetServiceTracksValidationCalls(t *testing.T) {
	m := NewMockAssetService()
	m.RegisterAsset("a.png")
	m.ValidateAsset("a.png")
	m.ValidateAsset("a.png")
	require.Equal(t, 2, m.ValidationCalls)
	require.Equal(t, []string{"a.png"}, m.RegisteredPaths)
}

func TestTestGameServicesResetClearsAllMocks(t *testing.T) {
	svc := NewTestGameServices()
	svc.Assets.RegisterAsset("a.png")
	svc.Sprites.RegisterSprite(game.Sprite{Name: "hero"})
	svc.Variables.RegisterVariable(game.GBVar{Name: "hp"})
	svc.Entities.RegisterEntity(game.Entity{Name: "hero"})

	require.NotEmpty(t, svc.Assets.GetAssetPaths())
	require.NotEmpty(t, svc.Sprites.GetSprites())
	require.NotEmpty(t, svc.Variables.GetVariables())
	require.NotEmpty(t, svc.Entities.GetEntities())

	svc.Reset()

	require.Empty(t, svc.Assets.GetAssetPaths())
	require.Empty(t, svc.Sprites.GetSprites())
	require.Empty(t, svc.Variables.GetVariables())
	require.Empty(t, svc.Entities.GetEntities())
}
