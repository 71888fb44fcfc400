package codegen

import "fmt"

// emitPhysicsWorldUpdate emits _physics_world_update (§4.6 emission layer
// 6): a commented block per physics-bearing entity applying gravity,
// friction, and max-velocity clamping in 8.8 fixed point, then a commented
// block per declared collision-tag pair. With no physics entities the body
// is a single explanatory comment.
func (g *generator) emitPhysicsWorldUpdate() {
	fmt.Fprintln(g.buf, "void _physics_world_update(void) {")

	hasPhysics := false
	for _, e := range g.game.Entities {
		if e.Physics == nil {
			continue
		}
		hasPhysics = true
		fmt.Fprintf(g.buf, "    // Physics update for %s\n", e.Name)
		fmt.Fprintf(g.buf, "    _%s_velocity_y += PHYSICS_GRAVITY;\n", e.Name)
		fmt.Fprintf(g.buf, "    _%s_velocity_x = (_%s_velocity_x * PHYSICS_FRICTION) >> 8;\n", e.Name, e.Name)
		fmt.Fprintf(g.buf, "    _%s_velocity_y = (_%s_velocity_y * PHYSICS_FRICTION) >> 8;\n", e.Name, e.Name)
		maxVX := toFixed88(e.Physics.MaxVelocity.X)
		fmt.Fprintf(g.buf, "    if (_%s_velocity_x > %d) _%s_velocity_x = %d;\n", e.Name, maxVX, e.Name, maxVX)
		fmt.Fprintf(g.buf, "    if (_%s_velocity_x < -%d) _%s_velocity_x = -%d;\n", e.Name, maxVX, e.Name, maxVX)
		maxVY := toFixed88(e.Physics.MaxVelocity.Y)
		fmt.Fprintf(g.buf, "    if (_%s_velocity_y > %d) _%s_velocity_y = %d;\n", e.Name, maxVY, e.Name, maxVY)
		fmt.Fprintf(g.buf, "    if (_%s_velocity_y < -%d) _%s_velocity_y = -%d;\n", e.Name, maxVY, e.Name, maxVY)
		fmt.Fprintf(g.buf, "    _%s_x += _%s_velocity_x >> 8;\n", e.Name, e.Name)
		fmt.Fprintf(g.buf, "    _%s_y += _%s_velocity_y >> 8;\n", e.Name, e.Name)
	}
	if !hasPhysics {
		fmt.Fprintln(g.buf, "    // No entities with physics component")
	}

	if g.game.PhysicsWorld != nil {
		for _, pair := range g.game.PhysicsWorld.CollisionPairs {
			fmt.Fprintf(g.buf, "    // Collision response: %s <-> %s\n", pair[0], pair[1])
		}
	}

	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
