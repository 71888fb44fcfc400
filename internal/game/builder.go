package game

import (
	"fmt"
	"sync"

	"gbcc/internal/ir"
)

// Builder accumulates declarations into a Game under construction. It is
// the interface-only DSL-capture surface (§4, C4): the author-facing
// description format is out of scope for this core, but whatever builds
// that description arrives here, at the shape defined by this package.
//
// The Game a Builder produces has no ambient dependencies once built — only
// construction itself may rely on a scoped "current builder" (see
// WithBuilder below), following the teacher's own scoped-acquisition idiom
// for resources that must always be released, on every exit path, win or
// lose.
type Builder struct {
	game *Game
	errs []error
}

// NewBuilder starts a Builder for a named game.
func NewBuilder(name string) *Builder {
	return &Builder{game: New(name)}
}

var (
	currentBuilderMu sync.Mutex
	currentBuilder   *Builder
)

// WithBuilder establishes b as the ambient "current builder" for the
// duration of fn, then releases it — on success, on a returned error, and
// on panic alike. Builder-derived helpers outside this package that need
// implicit access to the in-progress Game (an author-facing DSL, not this
// core) can call CurrentBuilder() inside fn.
func WithBuilder(b *Builder, fn func()) {
	currentBuilderMu.Lock()
	prev := currentBuilder
	currentBuilder = b
	currentBuilderMu.Unlock()
	defer func() {
		currentBuilderMu.Lock()
		currentBuilder = prev
		currentBuilderMu.Unlock()
	}()
	fn()
}

// CurrentBuilder returns the ambient builder established by WithBuilder, or
// nil outside of one.
func CurrentBuilder() *Builder {
	currentBuilderMu.Lock()
	defer currentBuilderMu.Unlock()
	return currentBuilder
}

func (b *Builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

// SetGBCSupport toggles the GBC config flag.
func (b *Builder) SetGBCSupport(v bool) *Builder {
	b.game.Config.GBCSupport = v
	return b
}

// SetOAMBudget overrides the hardware OAM slot budget the validator checks
// against. A non-positive value leaves the validator's own default in
// effect.
func (b *Builder) SetOAMBudget(v int) *Builder {
	b.game.Config.OAMBudget = v
	return b
}

// Variable declares a GBVar. Build() does not check for duplicate names;
// the validator reports them as DUPLICATE_NAME errors.
func (b *Builder) Variable(name string, initial int64, typ VarType) *Builder {
	b.game.Variables = append(b.game.Variables, GBVar{Name: name, Initial: initial, Type: typ})
	return b
}

// Sprite declares a sprite. width/height must be one of the hardware-valid
// combinations; Build() rejects violations as a DSL-time range error.
func (b *Builder) Sprite(name, asset string, width, height, oamSlot int) *Builder {
	b.game.Sprites = append(b.game.Sprites, Sprite{Name: name, Asset: asset, Width: width, Height: height, OAMSlot: oamSlot})
	return b
}

// Pool declares a sprite pool reserving count OAM slots.
func (b *Builder) Pool(name, spriteRef string, count int) *Builder {
	b.game.Pools = append(b.game.Pools, Pool{Name: name, SpriteRef: spriteRef, Count: count})
	return b
}

// Scene declares a scene. Calling Scene twice with the same name is a
// build-time duplicate error.
func (b *Builder) Scene(name string, onEnter, onFrame, onExit []ir.Stmt) *Builder {
	if _, exists := b.game.Scenes[name]; exists {
		b.fail("game: duplicate scene %q", name)
		return b
	}
	b.game.SceneOrder = append(b.game.SceneOrder, name)
	b.game.Scenes[name] = &Scene{Name: name, OnEnter: onEnter, OnFrame: onFrame, OnExit: onExit}
	return b
}

// StartScene sets the scene activated on boot. Required by Build().
func (b *Builder) StartScene(name string) *Builder {
	b.game.StartScene = name
	return b
}

// Entity declares an entity with the given components.
func (b *Builder) Entity(e Entity) *Builder {
	b.game.Entities = append(b.game.Entities, e)
	return b
}

// StateMachine declares a finite state machine owned by the named entity.
func (b *Builder) StateMachine(owner string, states []*State) *Builder {
	b.game.StateMachines = append(b.game.StateMachines, StateMachine{Owner: owner, States: states})
	return b
}

// TileMap declares a tilemap. widthTiles*heightTiles must match
// len(tileData); Build() rejects mismatches.
func (b *Builder) TileMap(t TileMap) *Builder {
	b.game.TileMaps = append(b.game.TileMaps, t)
	return b
}

// Palette declares a GBC palette; Build() rejects a palette whose Colors
// slice is not exactly length 4 (the §3.4 invariant; the validator
// additionally checks colour range).
func (b *Builder) Palette(p Palette) *Builder {
	b.game.Palettes = append(b.game.Palettes, p)
	return b
}

// SetPhysicsWorld installs the global physics configuration.
func (b *Builder) SetPhysicsWorld(w PhysicsWorld) *Builder {
	b.game.PhysicsWorld = &w
	return b
}

// SetCamera installs the camera.
func (b *Builder) SetCamera(c Camera) *Builder {
	b.game.Camera = &c
	return b
}

// Dialog declares a dialog box.
func (b *Builder) Dialog(name string) *Builder {
	b.game.Dialogs = append(b.game.Dialogs, Dialog{Name: name})
	return b
}

// SoundEffect declares a sound effect descriptor.
func (b *Builder) SoundEffect(s SoundEffect) *Builder {
	b.game.SoundEffects = append(b.game.SoundEffects, s)
	return b
}

// MusicTrack declares a music track.
func (b *Builder) MusicTrack(name, asset string) *Builder {
	b.game.Music = append(b.game.Music, Music{Name: name, Asset: asset})
	return b
}

// InputBuffer declares a named input buffer. window must be in 1..=255;
// Build() rejects violations as a DSL-time range error (§7).
func (b *Builder) InputBuffer(name, button string, window int) *Builder {
	b.game.InputBuffers = append(b.game.InputBuffers, InputBuffer{Name: name, Button: button, Window: window})
	return b
}

// TweenDecl declares a reusable named tween.
func (b *Builder) TweenDecl(t TweenDef) *Builder {
	b.game.Tweens = append(b.game.Tweens, t)
	return b
}

// AnimationDecl declares a named animation.
func (b *Builder) AnimationDecl(a Animation) *Builder {
	b.game.Animations = append(b.game.Animations, a)
	return b
}

// Build finalizes the Game, performing the DSL-time checks that fail fast
// rather than surfacing as validator diagnostics (§7): input-buffer window
// bounds, palette length, tilemap collision-data length, sprite size, and
// startScene presence. Hardware-budget and reachability checks remain the validator's
// job (internal/validate).
func (b *Builder) Build() (*Game, error) {
	if b.game.StartScene == "" {
		b.fail("game: startScene is required")
	} else if _, ok := b.game.Scenes[b.game.StartScene]; !ok {
		b.fail("game: startScene %q does not name a declared scene", b.game.StartScene)
	}

	for _, ib := range b.game.InputBuffers {
		if ib.Window < 1 || ib.Window > 255 {
			b.fail("game: input buffer %q window %d out of range 1..=255", ib.Name, ib.Window)
		}
	}

	for _, p := range b.game.Palettes {
		if len(p.Colors) != 4 {
			b.fail("game: palette %q must have exactly 4 colours, got %d", p.Name, len(p.Colors))
		}
	}

	for _, tm := range b.game.TileMaps {
		want := tm.WidthTiles * tm.HeightTiles
		if len(tm.TileData) != want {
			b.fail("game: tilemap %q tileData length %d does not match %dx%d", tm.Name, len(tm.TileData), tm.WidthTiles, tm.HeightTiles)
		}
		if tm.CollisionData != nil && len(tm.CollisionData) != want {
			b.fail("game: tilemap %q collisionData length %d does not match %dx%d", tm.Name, len(tm.CollisionData), tm.WidthTiles, tm.HeightTiles)
		}
	}

	for _, s := range b.game.Sprites {
		wOK := s.Width == 8 || s.Width == 16 || s.Width == 32
		hOK := s.Height == 8 || s.Height == 16
		if !wOK || !hOK {
			b.fail("game: sprite %q size %dx%d is not one of {8,16,32}x{8,16}", s.Name, s.Width, s.Height)
		}
	}

	for _, a := range b.game.Animations {
		for _, f := range a.Frames {
			if f < 0 || f > 255 {
				b.fail("game: animation %q frame index %d out of range 0..=255", a.Name, f)
			}
		}
	}

	if len(b.errs) > 0 {
		return nil, joinErrors(b.errs)
	}
	return b.game, nil
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := fmt.Sprintf("game: %d build errors:", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
