package codegen

import (
	"fmt"

	"gbcc/internal/ir"
)

// expr renders an IR expression as a C expression. Every Expr variant is
// exhaustively handled; an unknown variant is a programmer-bug panic per
// the internal-invariant-violation error class (§7).
func (g *generator) expr(e ir.Expr) string {
	switch n := e.(type) {
	case *ir.Literal:
		return fmt.Sprintf("%d", n.Value)
	case *ir.VarRef:
		return n.Name
	case *ir.Unary:
		switch n.Op {
		case ir.OpNeg:
			return fmt.Sprintf("(-%s)", g.expr(n.Operand))
		case ir.OpNot:
			return fmt.Sprintf("(!%s)", g.expr(n.Operand))
		case ir.OpBitNot:
			return fmt.Sprintf("(~%s)", g.expr(n.Operand))
		default:
			panic(fmt.Sprintf("codegen: unknown unary operator %d", n.Op))
		}
	case *ir.Binary:
		return fmt.Sprintf("(%s %s %s)", g.expr(n.Left), binOpSymbol(n.Op), g.expr(n.Right))
	case *ir.Coerce:
		return fmt.Sprintf("(%s)(%s)", cTypeName(n.Type), g.expr(n.Expr))
	case *ir.Index:
		return fmt.Sprintf("%s[%s]", g.expr(n.Array), g.expr(n.Idx))
	case *ir.Field:
		return g.fieldExpr(n)
	default:
		panic(fmt.Sprintf("codegen: unknown expression node %T", e))
	}
}

func binOpSymbol(op ir.BinOp) string {
	switch op {
	case ir.OpAdd:
		return "+"
	case ir.OpSub:
		return "-"
	case ir.OpMul:
		return "*"
	case ir.OpDiv:
		return "/"
	case ir.OpMod:
		return "%"
	case ir.OpAnd:
		return "&"
	case ir.OpOr:
		return "|"
	case ir.OpXor:
		return "^"
	case ir.OpShl:
		return "<<"
	case ir.OpShr:
		return ">>"
	case ir.OpEq:
		return "=="
	case ir.OpNeq:
		return "!="
	case ir.OpLt:
		return "<"
	case ir.OpLte:
		return "<="
	case ir.OpGt:
		return ">"
	case ir.OpGte:
		return ">="
	case ir.OpLogicalAnd:
		return "&&"
	case ir.OpLogicalOr:
		return "||"
	default:
		panic(fmt.Sprintf("codegen: unknown binary operator %d", op))
	}
}

func cTypeName(t ir.ValueType) string {
	switch t {
	case ir.TypeU8:
		return "UINT8"
	case ir.TypeU16:
		return "UINT16"
	case ir.TypeI8:
		return "INT8"
	case ir.TypeI16:
		return "INT16"
	default:
		panic(fmt.Sprintf("codegen: unknown value type %d", t))
	}
}

// fieldExpr renders a hardware-domain field accessor. Sprite/camera
// positions and dialog state are plain static globals named after their
// owner; input-buffer level reads the "active" accessor (non-consuming)
// since a bare field read must not have the side effect of consumed().
func (g *generator) fieldExpr(f *ir.Field) string {
	switch f.Kind {
	case ir.FieldSpriteX:
		return fmt.Sprintf("_%s_x", f.Owner)
	case ir.FieldSpriteY:
		return fmt.Sprintf("_%s_y", f.Owner)
	case ir.FieldCameraX:
		return "_camera_x"
	case ir.FieldCameraY:
		return "_camera_y"
	case ir.FieldDialogState:
		return fmt.Sprintf("_%s_dialog_state", f.Owner)
	case ir.FieldInputBufferLevel:
		if id, ok := g.bufferIndex[f.Owner]; ok {
			return activeExpr(id)
		}
		return "0"
	default:
		panic(fmt.Sprintf("codegen: unknown field kind %d", f.Kind))
	}
}
