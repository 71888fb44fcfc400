package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gbcc/internal/game"
	"gbcc/internal/numeric"
)

func fourColorPalette() []numeric.GBCColor {
	return []numeric.GBCColor{numeric.ColorBlack, numeric.ColorWhite, numeric.ColorDarkGray, numeric.ColorLightGray}
}

func gameWithSprites(n int) *game.Game {
	g := game.New("demo")
	g.Scenes["title"] = &game.Scene{Name: "title"}
	g.SceneOrder = []string{"title"}
	g.StartScene = "title"
	for i := 0; i < n; i++ {
		g.Sprites = append(g.Sprites, game.Sprite{Name: spriteName(i), OAMSlot: i})
	}
	return g
}

func spriteName(i int) string {
	return "sprite_" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}

func TestOAMApproachingLimitWarning(t *testing.T) {
	r := Validate(gameWithSprites(38))
	require.True(t, r.IsValid())
	require.Condition(t, func() bool {
		for _, w := range r.Warnings {
			if w.Category == CategoryOAMLimit {
				return true
			}
		}
		return false
	})
}

func TestOAMAtLimitWarning(t *testing.T) {
	r := Validate(gameWithSprites(40))
	require.True(t, r.IsValid())
	require.Len(t, r.Warnings, 1)
	require.Contains(t, r.Warnings[0].Message, "at OAM limit")
}

func TestOAMExceedsLimitError(t *testing.T) {
	r := Validate(gameWithSprites(45))
	require.False(t, r.IsValid())
	require.Equal(t, CategoryOAMLimit, r.Errors[0].Category)
}

func TestOAMPoolAloneExceedsLimit(t *testing.T) {
	g := game.New("demo")
	g.Scenes["title"] = &game.Scene{Name: "title"}
	g.SceneOrder = []string{"title"}
	g.StartScene = "title"
	g.Pools = []game.Pool{{Name: "bullets", Count: 50}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Contains(t, r.Errors[0].Message, "bullets")
	require.Contains(t, r.Errors[0].Message, "exceeds OAM limit")
}

func TestOAMBudgetOverrideFromConfigIsHonored(t *testing.T) {
	g := gameWithSprites(12)
	g.Config.OAMBudget = 10

	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryOAMLimit, r.Errors[0].Category)
	require.Contains(t, r.Errors[0].Message, "OAM budget of 10 slots")
}

func TestOAMBudgetOverrideRaisingLimitAvoidsError(t *testing.T) {
	g := gameWithSprites(45)
	g.Config.OAMBudget = 60

	r := Validate(g)
	require.True(t, r.IsValid())
}

func TestDuplicateVariableNameError(t *testing.T) {
	g := game.New("demo")
	g.Variables = []game.GBVar{{Name: "hp"}, {Name: "hp"}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryDuplicateName, r.Errors[0].Category)
}

func TestStateMachineEmptyIsError(t *testing.T) {
	g := game.New("demo")
	g.StateMachines = []game.StateMachine{{Owner: "hero", States: nil}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryStateMachine, r.Errors[0].Category)
}

func TestStateMachineUnreachableStateWarning(t *testing.T) {
	g := game.New("demo")
	g.StateMachines = []game.StateMachine{{
		Owner: "hero",
		States: []*game.State{
			{Name: "idle", Transitions: []game.Transition{{Target: "walk"}}},
			{Name: "walk"},
			{Name: "dead"}, // unreachable
		},
	}}
	r := Validate(g)
	require.True(t, r.IsValid())
	require.Len(t, r.Warnings, 1)
	require.Contains(t, r.Warnings[0].Message, "dead")
}

func TestStateMachineUndeclaredTransitionTargetError(t *testing.T) {
	g := game.New("demo")
	g.StateMachines = []game.StateMachine{{
		Owner:  "hero",
		States: []*game.State{{Name: "idle", Transitions: []game.Transition{{Target: "ghost"}}}},
	}}
	r := Validate(g)
	require.False(t, r.IsValid())
}

func TestPaletteMustHaveFourColors(t *testing.T) {
	g := game.New("demo")
	g.Palettes = []game.Palette{{Name: "bg0", Colors: fourColorPalette()[:3]}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryPalette, r.Errors[0].Category)
}

func TestPhysicsMassMustBePositive(t *testing.T) {
	g := game.New("demo")
	g.Entities = []game.Entity{{Name: "hero", Physics: &game.PhysicsComponent{Mass: 0}}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryPhysics, r.Errors[0].Category)
}

func TestPhysicsWarningsForOutOfRangeFields(t *testing.T) {
	g := game.New("demo")
	g.Entities = []game.Entity{{Name: "hero", Physics: &game.PhysicsComponent{
		Mass:        1,
		MaxVelocity: game.Vec2{X: 200, Y: 0},
		Friction:    2.0,
		Gravity:     5.0,
	}}}
	r := Validate(g)
	require.True(t, r.IsValid())
	require.Len(t, r.Warnings, 3)
}

func TestTweenDurationMustBeAtLeastOneFrame(t *testing.T) {
	g := game.New("demo")
	g.Variables = []game.GBVar{{Name: "fade", Type: game.VarType{Kind: game.KindU8}}}
	g.Tweens = []game.TweenDef{{Name: "fadein", Target: "fade", Duration: 0}}
	r := Validate(g)
	require.False(t, r.IsValid())
	require.Equal(t, CategoryTween, r.Errors[0].Category)
}

func TestPNGHeaderValidation(t *testing.T) {
	data := validPNGHeader(16, 32)
	h := ValidatePNGHeader(data, "hero.png")
	require.True(t, h.Valid)
	require.Equal(t, 16, h.Width)
	require.Equal(t, 32, h.Height)
}

func TestPNGHeaderRejectsBadSignature(t *testing.T) {
	data := validPNGHeader(16, 16)
	data[0] = 0x00
	h := ValidatePNGHeader(data, "hero.png")
	require.False(t, h.Valid)
}

func TestPNGHeaderRejectsNonDivisibleDimensions(t *testing.T) {
	data := validPNGHeader(10, 16)
	h := ValidatePNGHeader(data, "hero.png")
	require.False(t, h.Valid)
}

func validPNGHeader(width, height int) []byte {
	data := make([]byte, 8+8+13)
	copy(data[0:8], []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	putBE32(data[8:12], 13)
	copy(data[12:16], []byte("IHDR"))
	putBE32(data[16:20], uint32(width))
	putBE32(data[20:24], uint32(height))
	return data
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
