package codegen

import "fmt"

// buttonMask maps a button name to its joypad bitmask (§4.6 emission layer
// 7). Unrecognised button names mask to 0; the emitted press check for such
// a buffer then tests `_joypad & 0x00` and never fills it.
func buttonMask(button string) int {
	switch button {
	case "A":
		return 0x10
	case "B":
		return 0x20
	case "Select":
		return 0x40
	case "Start":
		return 0x80
	case "Right":
		return 0x01
	case "Left":
		return 0x02
	case "Up":
		return 0x04
	case "Down":
		return 0x08
	default:
		return 0
	}
}

// bufferSymbol is the static storage identifier for the nth declared input
// buffer: buffer_0, buffer_1, ... in declaration order.
func bufferSymbol(id int) string {
	return fmt.Sprintf("buffer_%d", id)
}

// consumedExpr is the atomic late-consume accessor: true and resets to zero
// in the same expression, exactly `buffer_N > 0u && (buffer_N = 0u, 1u)`.
func consumedExpr(id int) string {
	sym := bufferSymbol(id)
	return fmt.Sprintf("%s > 0u && (%s = 0u, 1u)", sym, sym)
}

// activeExpr is the non-consuming accessor, exactly `(buffer_N > 0u)`.
func activeExpr(id int) string {
	return fmt.Sprintf("(%s > 0u)", bufferSymbol(id))
}

// emitInputBufferDecrement emits the per-buffer decrement-then-fill block
// that runs at the top of the main loop.
func (g *generator) emitInputBufferDecrement() {
	for i, ib := range g.game.InputBuffers {
		sym := bufferSymbol(i)
		mask := buttonMask(ib.Button)
		fmt.Fprintf(g.buf, "    if (%s > 0) %s--;\n", sym, sym)
		fmt.Fprintf(g.buf, "    if ((_joypad & 0x%02X) && !(_prev_joypad & 0x%02X)) %s = %d;\n", mask, mask, sym, ib.Window)
	}
}
