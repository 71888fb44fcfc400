// Package codegen deterministically emits a single C translation unit from
// a validated game.Game, targeting the downstream SDK's C toolchain. The
// generator never consults a validate.Result — callers are expected to gate
// Generate on Validate(g).IsValid() themselves, since code generation and
// validation are separate concerns (§4.4/§4.6).
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"gbcc/internal/game"
	"gbcc/internal/ir"
)

// generator holds the mutable state threaded through one Generate call: the
// output buffer and the deterministic name->id assignments that the rest of
// the translation unit references (input buffers, inline tweens).
type generator struct {
	game *game.Game
	buf  *strings.Builder

	bufferIndex       map[string]int
	tweenIndexInline  map[*ir.Tween]int
	nextInlineTweenID int
}

// Generate renders g as a complete C translation unit. Identical input
// produces byte-identical output: every iteration below walks an
// already-ordered slice (declaration order); the Scenes map is walked through
// its SceneOrder key list, never by raw Go map iteration.
func Generate(g *game.Game) string {
	gen := &generator{
		game:              g,
		buf:               &strings.Builder{},
		bufferIndex:       make(map[string]int, len(g.InputBuffers)),
		tweenIndexInline:  make(map[*ir.Tween]int),
		nextInlineTweenID: len(g.Tweens),
	}
	for i, ib := range g.InputBuffers {
		gen.bufferIndex[ib.Name] = i
	}

	gen.emitPreamble()
	gen.emitConstants()
	gen.emitStorage()
	gen.emitStateEnums()
	gen.emitEasingConstants()
	gen.emitAnimations()
	gen.emitEntityUpdates()
	gen.emitPhysicsWorldUpdate()
	gen.emitSceneDispatch()
	gen.emitCameraTransitionDriver()
	gen.emitDialogDriver()
	gen.emitSoundMusic()
	gen.emitTweenDriver()
	gen.emitMainLoop()

	return gen.buf.String()
}

func (g *generator) emitPreamble() {
	fmt.Fprintf(g.buf, "// Generated translation unit for %q.\n", g.game.Name)
	fmt.Fprintln(g.buf, "// This file is produced by the compile-time IR pipeline; do not edit by hand.")
	fmt.Fprintln(g.buf, `#include <gb/gb.h>`)
	fmt.Fprintln(g.buf, `#include <string.h>`)
	if g.game.Config.GBCSupport {
		fmt.Fprintln(g.buf, `#include <gbc/gbc.h>`)
	}
	fmt.Fprintln(g.buf)
}

func (g *generator) emitConstants() {
	if pw := g.game.PhysicsWorld; pw != nil {
		fmt.Fprintf(g.buf, "#define PHYSICS_GRAVITY %d\n", toFixed88(pw.Gravity))
		fmt.Fprintf(g.buf, "#define PHYSICS_FRICTION %d\n", toFixed88(pw.Friction))
		fmt.Fprintf(g.buf, "#define PHYSICS_BOUNCE %d\n", toFixed88(pw.Bounce))
	}

	for _, ib := range g.game.InputBuffers {
		fmt.Fprintf(g.buf, "#define BUFFER_WINDOW_%s %d\n", strings.ToUpper(sanitizeName(ib.Name)), ib.Window)
	}

	for _, t := range g.game.Tweens {
		fmt.Fprintf(g.buf, "#define TWEEN_DURATION_%s %d\n", strings.ToUpper(sanitizeName(t.Name)), t.Duration)
	}

	for _, p := range g.game.Palettes {
		fmt.Fprintf(g.buf, "static const UINT16 PALETTE_%s[4] = {", strings.ToUpper(sanitizeName(p.Name)))
		colors := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			colors[i] = strconv.Itoa(c.ToInt())
		}
		fmt.Fprintf(g.buf, "%s};\n", strings.Join(colors, ", "))
	}

	for _, tm := range g.game.TileMaps {
		fmt.Fprintf(g.buf, "static const UINT8 TILEMAP_%s[%d] = {", strings.ToUpper(sanitizeName(tm.Name)), len(tm.TileData))
		tiles := make([]string, len(tm.TileData))
		for i, v := range tm.TileData {
			tiles[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(g.buf, "%s};\n", strings.Join(tiles, ", "))
		if tm.CollisionData != nil {
			fmt.Fprintf(g.buf, "static const UINT8 COLLISION_%s[%d] = {", strings.ToUpper(sanitizeName(tm.Name)), len(tm.CollisionData))
			cells := make([]string, len(tm.CollisionData))
			for i, v := range tm.CollisionData {
				cells[i] = strconv.Itoa(v)
			}
			fmt.Fprintf(g.buf, "%s};\n", strings.Join(cells, ", "))
		}
	}
	fmt.Fprintln(g.buf)
}

func (g *generator) emitStorage() {
	for _, v := range g.game.Variables {
		fmt.Fprintf(g.buf, "static %s;\n", varDecl(v))
	}
	for _, e := range g.game.Entities {
		if _, ok := g.game.StateMachineByOwner(e.Name); ok {
			fmt.Fprintf(g.buf, "static UINT8 _%s_state;\n", e.Name)
			fmt.Fprintf(g.buf, "static UINT8 _%s_next;\n", e.Name)
			fmt.Fprintf(g.buf, "static UINT8 _%s_changed;\n", e.Name)
		}
		if e.Physics != nil {
			fmt.Fprintf(g.buf, "static INT16 _%s_x;\n", e.Name)
			fmt.Fprintf(g.buf, "static INT16 _%s_y;\n", e.Name)
			fmt.Fprintf(g.buf, "static INT16 _%s_velocity_x;\n", e.Name)
			fmt.Fprintf(g.buf, "static INT16 _%s_velocity_y;\n", e.Name)
		}
	}
	for _, s := range g.game.Sprites {
		fmt.Fprintf(g.buf, "static UINT8 _%s_visible;\n", s.Name)
		fmt.Fprintf(g.buf, "static INT16 _%s_x;\n", s.Name)
		fmt.Fprintf(g.buf, "static INT16 _%s_y;\n", s.Name)
	}
	for _, tm := range g.game.TileMaps {
		fmt.Fprintf(g.buf, "static UINT8 _%s_visible;\n", tm.Name)
	}
	for i := range g.game.InputBuffers {
		fmt.Fprintf(g.buf, "static UINT8 %s;\n", bufferSymbol(i))
	}
	fmt.Fprintln(g.buf, "static UINT8 _joypad;")
	fmt.Fprintln(g.buf, "static UINT8 _prev_joypad;")
	fmt.Fprintln(g.buf, "static UINT16 _frame_count;")
	fmt.Fprintln(g.buf, "static UINT8 _pending_scene;")
	fmt.Fprintln(g.buf, "static UINT8 _current_scene;")
	fmt.Fprintln(g.buf, "static INT16 _camera_x;")
	fmt.Fprintln(g.buf, "static INT16 _camera_y;")
	fmt.Fprintln(g.buf)
}

func varDecl(v game.GBVar) string {
	if v.Type.Kind == game.KindArray {
		return fmt.Sprintf("%s %s[%d]", cTypeName(toIRType(v.Type.Elem)), v.Name, v.Type.Len)
	}
	return fmt.Sprintf("%s %s", cTypeName(toIRType(v.Type.Kind)), v.Name)
}

func toIRType(k game.VarKind) ir.ValueType {
	switch k {
	case game.KindU8:
		return ir.TypeU8
	case game.KindU16:
		return ir.TypeU16
	case game.KindI8:
		return ir.TypeI8
	case game.KindI16:
		return ir.TypeI16
	default:
		return ir.TypeU8
	}
}

func (g *generator) emitStateEnums() {
	for _, sm := range g.game.StateMachines {
		for i, s := range sm.States {
			fmt.Fprintf(g.buf, "#define STATE_%s_%s %d\n", strings.ToUpper(sm.Owner), strings.ToUpper(s.Name), i)
		}
	}
	for i, name := range g.game.OrderedSceneNames() {
		fmt.Fprintf(g.buf, "#define SCENE_%s %d\n", strings.ToUpper(sanitizeName(name)), i)
	}
	fmt.Fprintln(g.buf)
}

func (g *generator) emitMainLoop() {
	fmt.Fprintln(g.buf, "void main(void) {")
	fmt.Fprintf(g.buf, "    _current_scene = SCENE_%s;\n", strings.ToUpper(sanitizeName(g.game.StartScene)))
	fmt.Fprintln(g.buf, "    while (1) {")
	g.emitInputBufferDecrement()
	fmt.Fprintln(g.buf, "        _prev_joypad = _joypad;")
	fmt.Fprintln(g.buf, "        _joypad = joypad();")
	fmt.Fprintln(g.buf, "        _scene_frame_dispatch();")
	for _, e := range g.game.Entities {
		if _, ok := g.game.StateMachineByOwner(e.Name); ok {
			fmt.Fprintf(g.buf, "        %s_update();\n", e.Name)
		}
	}
	if g.game.PhysicsWorld != nil {
		fmt.Fprintln(g.buf, "        _physics_world_update();")
	}
	fmt.Fprintln(g.buf, "        _camera_update();")
	fmt.Fprintln(g.buf, "        _tween_update();")
	fmt.Fprintln(g.buf, "        _scene_transition_dispatch();")
	fmt.Fprintln(g.buf, "        _frame_count++;")
	fmt.Fprintln(g.buf, "        wait_vbl_done();")
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
}
