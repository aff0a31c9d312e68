package world

import "github.com/vovakirdan/arcade-pathfinder/internal/geom"

// Static is the partitioned world the physics model queries every tick. A
// Static is never mutated after construction; StepDeadly returns a new one.
type Static struct {
	// Obstacles are solid objects the avatar is pushed out of.
	Obstacles []Object
	// Hazards kill the avatar on contact.
	Hazards []Object
	// Damage zones drain health while overlapped.
	Damage []DamageZone
	// Projectiles kill on contact and move by the matching velocity each
	// time the world is stepped.
	Projectiles []geom.Hitbox
	Velocities  []geom.Point
	// Environments always holds at least the ambient modifier at index 0.
	Environments []EnvModifier
}

// NewStatic partitions objects by kind. Objects of a kind without special
// handling are treated as obstacles. When envs is empty the neutral ambient
// modifier is used.
func NewStatic(objects []Object, envs []EnvModifier) *Static {
	s := &Static{}
	for _, o := range objects {
		switch o.Type.Kind {
		case KindOuch, KindSpikeOuch, KindPortal, KindWarp:
			s.Hazards = append(s.Hazards, o)
		case KindProjectile:
			s.Projectiles = append(s.Projectiles, o.Hitbox)
			s.Velocities = append(s.Velocities, o.Type.Velocity)
		case KindConstantDamage:
			s.Damage = append(s.Damage, DamageZone{Hitbox: o.Hitbox, Amount: o.Type.Damage})
		default: // KindWall
			s.Obstacles = append(s.Obstacles, o)
		}
	}

	if len(envs) == 0 {
		envs = []EnvModifier{DefaultEnv()}
	}
	s.Environments = append([]EnvModifier(nil), envs...)
	return s
}

// StepDeadly returns a copy of the world with every projectile advanced by
// its velocity. Everything else is shared with the receiver.
func (s *Static) StepDeadly() *Static {
	next := *s
	next.Projectiles = make([]geom.Hitbox, len(s.Projectiles))
	for i, p := range s.Projectiles {
		v := s.Velocities[i]
		next.Projectiles[i] = p.Offset(v.X, v.Y)
	}
	return &next
}

// Timeline returns n+1 successive worlds; element i has its projectiles
// i+1 steps ahead of s.
func (s *Static) Timeline(n int) []*Static {
	out := make([]*Static, 0, n+1)
	cur := s.StepDeadly()
	out = append(out, cur)
	for i := 0; i < n; i++ {
		cur = cur.StepDeadly()
		out = append(out, cur)
	}
	return out
}

// Objects flattens the world back into typed objects, grouped by partition.
func (s *Static) Objects() []Object {
	out := make([]Object, 0, len(s.Obstacles)+len(s.Hazards)+len(s.Damage)+len(s.Projectiles))
	out = append(out, s.Obstacles...)
	out = append(out, s.Hazards...)
	for _, z := range s.Damage {
		out = append(out, Object{Hitbox: z.Hitbox, Type: ConstantDamage(z.Amount)})
	}
	for i, p := range s.Projectiles {
		out = append(out, Object{Hitbox: p, Type: Projectile(s.Velocities[i])})
	}
	return out
}
