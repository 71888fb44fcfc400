package codegen

import "fmt"

// emitCameraTransitionDriver emits the shared transition-kind state and the
// _camera_update function that advances it and clears transition_kind once
// the duration is reached (§4.6 emission layer 9). _camera_update runs no
// callbacks: per-transition callback bodies are inlined at the call site by
// stmt(), not here; this driver only advances the generic progress counter
// every camera transition shares.
func (g *generator) emitCameraTransitionDriver() {
	fmt.Fprintln(g.buf, "#define TRANSITION_NONE 0")
	fmt.Fprintln(g.buf, "#define TRANSITION_FADE_IN 1")
	fmt.Fprintln(g.buf, "#define TRANSITION_FADE_OUT 2")
	fmt.Fprintln(g.buf, "#define TRANSITION_FLASH 3")
	fmt.Fprintln(g.buf, "#define TRANSITION_WIPE_IN 4")
	fmt.Fprintln(g.buf, "#define TRANSITION_WIPE_OUT 5")
	fmt.Fprintln(g.buf, "#define TRANSITION_IRIS_IN 6")
	fmt.Fprintln(g.buf, "#define TRANSITION_IRIS_OUT 7")
	fmt.Fprintln(g.buf, "static UINT8 transition_kind;")
	fmt.Fprintln(g.buf, "static UINT16 transition_progress;")
	fmt.Fprintln(g.buf, "static UINT16 transition_duration;")
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "UINT8 isTransitioning(void) { return (transition_kind != 0); }")
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "void transition_start(UINT8 kind, UINT16 duration) {")
	fmt.Fprintln(g.buf, "    transition_kind = kind;")
	fmt.Fprintln(g.buf, "    transition_progress = 0;")
	fmt.Fprintln(g.buf, "    transition_duration = duration;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "void _camera_update(void) {")
	fmt.Fprintln(g.buf, "    if (transition_kind != 0) {")
	fmt.Fprintln(g.buf, "        transition_progress++;")
	fmt.Fprintln(g.buf, "        if (transition_progress >= transition_duration) transition_kind = 0;")
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
