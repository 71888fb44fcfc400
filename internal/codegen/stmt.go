package codegen

import (
	"fmt"
	"strings"

	"gbcc/internal/ir"
)

// stmts renders a statement list as indented C lines, recursing through
// nested bodies (If, CameraTransition callbacks). indent is the current
// brace depth in units of 4 spaces.
func (g *generator) stmts(list []ir.Stmt, indent int) string {
	var b strings.Builder
	pad := strings.Repeat("    ", indent)
	for _, s := range list {
		b.WriteString(g.stmt(s, pad, indent))
	}
	return b.String()
}

func (g *generator) stmt(s ir.Stmt, pad string, indent int) string {
	switch n := s.(type) {
	case *ir.Assign:
		return fmt.Sprintf("%s%s = %s;\n", pad, g.expr(n.Target), g.expr(n.Value))
	case *ir.CompoundAssign:
		return fmt.Sprintf("%s%s %s= %s;\n", pad, g.expr(n.Target), compoundOpSymbol(n.Op), g.expr(n.Value))
	case *ir.If:
		var b strings.Builder
		fmt.Fprintf(&b, "%sif (%s) {\n", pad, g.expr(n.Cond.Expr))
		b.WriteString(g.stmts(n.Then, indent+1))
		if len(n.Else) > 0 {
			fmt.Fprintf(&b, "%s} else {\n", pad)
			b.WriteString(g.stmts(n.Else, indent+1))
		}
		fmt.Fprintf(&b, "%s}\n", pad)
		return b.String()
	case *ir.SceneChange:
		return fmt.Sprintf("%s_pending_scene = SCENE_%s;\n", pad, strings.ToUpper(sanitizeName(n.Name)))
	case *ir.CallFunction:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = g.expr(a)
		}
		return fmt.Sprintf("%s%s(%s);\n", pad, n.Name, strings.Join(args, ", "))
	case *ir.SpriteShow:
		return fmt.Sprintf("%s_%s_visible = 1;\n", pad, n.Sprite)
	case *ir.SpriteHide:
		return fmt.Sprintf("%s_%s_visible = 0;\n", pad, n.Sprite)
	case *ir.SpriteMove:
		return fmt.Sprintf("%s_%s_x = %s; %s_%s_y = %s;\n", pad, n.Sprite, g.expr(n.X), pad, n.Sprite, g.expr(n.Y))
	case *ir.SpritePlay:
		return fmt.Sprintf("%ssprite_play_animation(%s, ANIM_%s);\n", pad, n.Sprite, strings.ToUpper(sanitizeName(n.Animation)))
	case *ir.PhysicsWorldUpdate:
		return fmt.Sprintf("%s_physics_world_update();\n", pad)
	case *ir.CollisionResponse:
		return fmt.Sprintf("%s// Collision response: %s <-> %s\n", pad, n.TagA, n.TagB)
	case *ir.StateStart:
		return fmt.Sprintf("%s_%s_state = STATE_%s_%s; _%s_next = _%s_state; _%s_changed = 1;\n",
			pad, n.Owner, strings.ToUpper(n.Owner), strings.ToUpper(n.State), n.Owner, n.Owner, n.Owner)
	case *ir.StateUpdate:
		return fmt.Sprintf("%s%s_update();\n", pad, n.Owner)
	case *ir.Tween:
		id, ok := g.tweenIndexInline[n]
		if !ok {
			id = g.nextInlineTweenID
			g.tweenIndexInline[n] = id
			g.nextInlineTweenID++
		}
		return fmt.Sprintf("%stween_start(&_tweens[%d], &%s, %s, %s, %d, EASE_%s);\n",
			pad, id, n.Target, g.expr(n.From), g.expr(n.To), n.Duration, easingName(n.Easing))
	case *ir.DialogSay:
		return fmt.Sprintf("%sdialog_say(&_%s_dialog_state, %q);\n", pad, n.Dialog, n.Text)
	case *ir.DialogChoice:
		opts := make([]string, len(n.Options))
		for i, o := range n.Options {
			opts[i] = fmt.Sprintf("%q", o)
		}
		return fmt.Sprintf("%sdialog_choice(&_%s_dialog_state, (const char*[]){%s}, %d);\n", pad, n.Dialog, strings.Join(opts, ", "), len(n.Options))
	case *ir.DialogTick:
		return fmt.Sprintf("%sdialog_tick(&_%s_dialog_state);\n", pad, n.Dialog)
	case *ir.SoundPlay:
		return fmt.Sprintf("%ssound_play(&SOUND_%s, %d);\n", pad, strings.ToUpper(sanitizeName(n.Sound)), n.Priority)
	case *ir.SoundStop:
		return fmt.Sprintf("%ssound_stop(&SOUND_%s);\n", pad, strings.ToUpper(sanitizeName(n.Sound)))
	case *ir.MusicPlay:
		return fmt.Sprintf("%smusic_play(&MUSIC_%s);\n", pad, strings.ToUpper(sanitizeName(n.Music)))
	case *ir.MusicStop:
		return fmt.Sprintf("%smusic_stop();\n", pad)
	case *ir.MusicPause:
		return fmt.Sprintf("%smusic_pause();\n", pad)
	case *ir.MusicResume:
		return fmt.Sprintf("%smusic_resume();\n", pad)
	case *ir.MusicFadeOut:
		return fmt.Sprintf("%smusic_fade_out(%d);\n", pad, n.Frames)
	case *ir.TilemapShow:
		return fmt.Sprintf("%s_%s_visible = 1;\n", pad, n.Tilemap)
	case *ir.TilemapHide:
		return fmt.Sprintf("%s_%s_visible = 0;\n", pad, n.Tilemap)
	case *ir.CameraSnap:
		return fmt.Sprintf("%s_camera_x = %s; _camera_y = %s;\n", pad, g.expr(n.X), g.expr(n.Y))
	case *ir.CameraFollow:
		return fmt.Sprintf("%s_camera_follow_target = &%s;\n", pad, n.Target)
	case *ir.CameraShake:
		return fmt.Sprintf("%scamera_shake(%d, %d);\n", pad, n.Intensity, n.Duration)
	case *ir.CameraTransition:
		var b strings.Builder
		fmt.Fprintf(&b, "%stransition_start(TRANSITION_%s, %d);\n", pad, transitionKindName(n.Kind), n.Duration)
		if len(n.Callback) > 0 {
			fmt.Fprintf(&b, "%sif (transition_kind == 0) {\n", pad)
			b.WriteString(g.stmts(n.Callback, indent+1))
			fmt.Fprintf(&b, "%s}\n", pad)
		}
		return b.String()
	case *ir.InputBufferDecrement:
		if id, ok := g.bufferIndex[n.Buffer]; ok {
			sym := bufferSymbol(id)
			return fmt.Sprintf("%sif (%s > 0) %s--;\n", pad, sym, sym)
		}
		return ""
	case *ir.InputBufferFill:
		if id, ok := g.bufferIndex[n.Buffer]; ok {
			ib, _ := g.game.InputBufferByName(n.Buffer)
			return fmt.Sprintf("%s%s = %d;\n", pad, bufferSymbol(id), ib.Window)
		}
		return ""
	default:
		panic(fmt.Sprintf("codegen: unknown statement node %T", s))
	}
}

func compoundOpSymbol(op ir.CompoundOp) string {
	switch op {
	case ir.CompoundAdd:
		return "+"
	case ir.CompoundSub:
		return "-"
	case ir.CompoundMul:
		return "*"
	case ir.CompoundDiv:
		return "/"
	case ir.CompoundAnd:
		return "&"
	case ir.CompoundOr:
		return "|"
	case ir.CompoundXor:
		return "^"
	default:
		panic(fmt.Sprintf("codegen: unknown compound operator %d", op))
	}
}

func easingName(e ir.Easing) string {
	switch e {
	case ir.EaseLinear:
		return "LINEAR"
	case ir.EaseInQuad:
		return "IN_QUAD"
	case ir.EaseOutQuad:
		return "OUT_QUAD"
	case ir.EaseInOutQuad:
		return "IN_OUT_QUAD"
	default:
		panic(fmt.Sprintf("codegen: unknown easing %d", e))
	}
}

func transitionKindName(k ir.TransitionKind) string {
	switch k {
	case ir.TransitionFadeIn:
		return "FADE_IN"
	case ir.TransitionFadeOut:
		return "FADE_OUT"
	case ir.TransitionFlash:
		return "FLASH"
	case ir.TransitionWipeIn:
		return "WIPE_IN"
	case ir.TransitionWipeOut:
		return "WIPE_OUT"
	case ir.TransitionIrisIn:
		return "IRIS_IN"
	case ir.TransitionIrisOut:
		return "IRIS_OUT"
	default:
		panic(fmt.Sprintf("codegen: unknown transition kind %d", k))
	}
}
