package codegen

import (
	"fmt"
	"strings"
)

// emitSceneDispatch emits one enter/frame/exit function per scene and the
// two dispatch functions the main loop calls (§4.6 emission layer 8).
// Scene transitions requested by IR (_pending_scene, set by SceneChange)
// are applied at the frame boundary: the current scene's exit runs, then
// the pending scene's enter, then the switch completes.
func (g *generator) emitSceneDispatch() {
	for _, name := range g.game.OrderedSceneNames() {
		scene := g.game.Scenes[name]

		fmt.Fprintf(g.buf, "void _scene_%s_enter(void) {\n", name)
		g.buf.WriteString(g.stmts(scene.OnEnter, 1))
		fmt.Fprintln(g.buf, "}")

		fmt.Fprintf(g.buf, "void _scene_%s_frame(void) {\n", name)
		g.buf.WriteString(g.stmts(scene.OnFrame, 1))
		fmt.Fprintln(g.buf, "}")

		fmt.Fprintf(g.buf, "void _scene_%s_exit(void) {\n", name)
		g.buf.WriteString(g.stmts(scene.OnExit, 1))
		fmt.Fprintln(g.buf, "}")
		fmt.Fprintln(g.buf)
	}

	fmt.Fprintln(g.buf, "void _scene_frame_dispatch(void) {")
	fmt.Fprintln(g.buf, "    _pending_scene = _current_scene;")
	fmt.Fprintln(g.buf, "    switch (_current_scene) {")
	for _, name := range g.game.OrderedSceneNames() {
		fmt.Fprintf(g.buf, "    case SCENE_%s: _scene_%s_frame(); break;\n", strings.ToUpper(sanitizeName(name)), name)
	}
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)

	fmt.Fprintln(g.buf, "void _scene_transition_dispatch(void) {")
	fmt.Fprintln(g.buf, "    if (_pending_scene == _current_scene) return;")
	fmt.Fprintln(g.buf, "    switch (_current_scene) {")
	for _, name := range g.game.OrderedSceneNames() {
		fmt.Fprintf(g.buf, "    case SCENE_%s: _scene_%s_exit(); break;\n", strings.ToUpper(sanitizeName(name)), name)
	}
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "    switch (_pending_scene) {")
	for _, name := range g.game.OrderedSceneNames() {
		fmt.Fprintf(g.buf, "    case SCENE_%s: _scene_%s_enter(); break;\n", strings.ToUpper(sanitizeName(name)), name)
	}
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "    _current_scene = _pending_scene;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
