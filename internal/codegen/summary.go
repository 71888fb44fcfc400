package codegen

import "gbcc/internal/game"

// Summary is a deterministic, derived-only snapshot of what a generated
// translation unit contains: entity, scene, sprite, and OAM-slot counts.
// It mirrors the teacher's CompileBundle/CompileSummary envelope pattern —
// a small counts record wrapping a result — adapted here to describe a
// Game rather than a diagnostic run. It adds nothing to game.Game itself;
// every field is computed from data the Game already holds.
type Summary struct {
	EntityCount int
	SceneCount  int
	SpriteCount int
	OAMSlots    int
}

// Summarize derives a Summary from g. Callers that want generation-time
// counts without re-walking the Game themselves can call this alongside
// Generate.
func Summarize(g *game.Game) Summary {
	return Summary{
		EntityCount: len(g.Entities),
		SceneCount:  len(g.Scenes),
		SpriteCount: len(g.Sprites),
		OAMSlots:    g.TotalOAMSlots(),
	}
}
