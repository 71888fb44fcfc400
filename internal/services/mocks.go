package services

import "gbcc/internal/game"

// MockAssetService records every call for test assertions instead of doing
// real bookkeeping.
type MockAssetService struct {
	RegisteredPaths []string
	ValidationCalls int
	ValidateResult  bool
}

func NewMockAssetService() *MockAssetService { return &MockAssetService{ValidateResult: true} }

func (m *MockAssetService) RegisterAsset(path string) {
	m.RegisteredPaths = append(m.RegisteredPaths, path)
}

func (m *MockAssetService) GetAssetPaths() []string { return m.RegisteredPaths }

func (m *MockAssetService) ResolveAsset(path string) (string, bool) {
	for _, p := range m.RegisteredPaths {
		if p == path {
			return p, true
		}
	}
	return "", false
}

func (m *MockAssetService) ValidateAsset(path string) bool {
	m.ValidationCalls++
	return m.ValidateResult
}

func (m *MockAssetService) Reset() {
	m.RegisteredPaths = nil
	m.ValidationCalls = 0
	m.ValidateResult = true
}

// MockSpriteService records registrations and hands out slots from a
// caller-inspectable counter.
type MockSpriteService struct {
	RegisteredSprites []game.Sprite
	AllocatedSlots    []int
	nextSlot          int
}

func NewMockSpriteService() *MockSpriteService { return &MockSpriteService{} }

func (m *MockSpriteService) AllocateSlot() int {
	slot := m.nextSlot
	m.nextSlot++
	m.AllocatedSlots = append(m.AllocatedSlots, slot)
	return slot
}

func (m *MockSpriteService) RegisterSprite(s game.Sprite) {
	m.RegisteredSprites = append(m.RegisteredSprites, s)
}

func (m *MockSpriteService) GetSprites() []game.Sprite { return m.RegisteredSprites }

func (m *MockSpriteService) Reset() {
	m.RegisteredSprites = nil
	m.AllocatedSlots = nil
	m.nextSlot = 0
}

// MockVariableService records registrations.
type MockVariableService struct {
	RegisteredVariables []game.GBVar
}

func NewMockVariableService() *MockVariableService { return &MockVariableService{} }

func (m *MockVariableService) RegisterVariable(v game.GBVar) {
	m.RegisteredVariables = append(m.RegisteredVariables, v)
}

func (m *MockVariableService) GetVariables() []game.GBVar { return m.RegisteredVariables }

func (m *MockVariableService) Reset() { m.RegisteredVariables = nil }

// MockEntityService records registrations and supports the same
// linear-scan tag query as DefaultEntityService.
type MockEntityService struct {
	RegisteredEntities []game.Entity
}

func NewMockEntityService() *MockEntityService { return &MockEntityService{} }

func (m *MockEntityService) RegisterEntity(e game.Entity) {
	m.RegisteredEntities = append(m.RegisteredEntities, e)
}

func (m *MockEntityService) GetEntities() []game.Entity { return m.RegisteredEntities }

func (m *MockEntityService) QueryByTag(tag string) []game.Entity {
	var out []game.Entity
	for _, e := range m.RegisteredEntities {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockEntityService) Reset() { m.RegisteredEntities = nil }

// TestGameServices aggregates the four mocks behind the same contracts the
// production builder consumes, so DSL-capture tests (outside this core) can
// swap in overrides per service and reset all of them between cases.
type TestGameServices struct {
	Assets    AssetService
	Sprites   SpriteService
	Variables VariableService
	Entities  EntityService

	assetMock    *MockAssetService
	spriteMock   *MockSpriteService
	variableMock *MockVariableService
	entityMock   *MockEntityService
}

// NewTestGameServices returns a TestGameServices with every mock installed.
func NewTestGameServices() *TestGameServices {
	am := NewMockAssetService()
	sm := NewMockSpriteService()
	vm := NewMockVariableService()
	em := NewMockEntityService()
	return &TestGameServices{
		Assets: am, Sprites: sm, Variables: vm, Entities: em,
		assetMock: am, spriteMock: sm, variableMock: vm, entityMock: em,
	}
}

// Reset clears every mock's recorded state, restoring the defaults.
func (t *TestGameServices) Reset() {
	t.assetMock.Reset()
	t.spriteMock.Reset()
	t.variableMock.Reset()
	t.entityMock.Reset()
}
