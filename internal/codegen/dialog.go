package codegen

import "fmt"

// emitDialogDriver emits one dialog-state static per declared dialog plus
// the shared say/choice/tick helpers (§4.6 emission layer 10). dialog_say
// sets the dialog's state to 1 and does not store the text it is passed;
// dialog_choice sets the state to 2 and does not keep the options or pick
// one. The per-dialog _text and _selected statics are declared but no
// emitted helper writes or reads them.
func (g *generator) emitDialogDriver() {
	for _, d := range g.game.Dialogs {
		fmt.Fprintf(g.buf, "static UINT8 _%s_dialog_state;\n", d.Name)
		fmt.Fprintf(g.buf, "static const char *_%s_dialog_text;\n", d.Name)
		fmt.Fprintf(g.buf, "static UINT8 _%s_dialog_selected;\n", d.Name)
	}
	if len(g.game.Dialogs) == 0 {
		return
	}
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "void dialog_say(UINT8 *state, const char *text) {")
	fmt.Fprintln(g.buf, "    *state = 1;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "void dialog_choice(UINT8 *state, const char **options, UINT8 count) {")
	fmt.Fprintln(g.buf, "    *state = 2;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
	fmt.Fprintln(g.buf, "void dialog_tick(UINT8 *state) {")
	fmt.Fprintln(g.buf, "    if (*state != 0) {")
	fmt.Fprintln(g.buf, "        // advance per-character reveal; runtime-specific, stubbed here")
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
