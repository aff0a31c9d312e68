// Package world describes the immutable surroundings of the avatar: solid
// obstacles, lethal hazards, damage zones, moving projectiles and regions
// that modify movement parameters.
package world

import (
	"fmt"

	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
)

// Kind identifies the behaviour of an object.
type Kind string

const (
	KindWall           Kind = "wall"
	KindOuch           Kind = "ouch"
	KindSpikeOuch      Kind = "spike_ouch"
	KindPortal         Kind = "portal"
	KindWarp           Kind = "warp"
	KindProjectile     Kind = "projectile"
	KindConstantDamage Kind = "constant_damage"
)

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindWall,
		KindOuch,
		KindSpikeOuch,
		KindPortal,
		KindWarp,
		KindProjectile,
		KindConstantDamage,
	}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("world: unknown object kind %q", s)
}

// IsDeadly reports whether touching an object of this kind kills the avatar.
func (k Kind) IsDeadly() bool {
	switch k {
	case KindOuch, KindSpikeOuch, KindPortal, KindWarp:
		return true
	}
	return false
}

// ObjectType is a kind plus the payload some kinds carry.
type ObjectType struct {
	Kind Kind `json:"kind"`
	// Velocity is the per-tick displacement of a projectile.
	Velocity geom.Point `json:"velocity"`
	// Damage is the health removed per tick by a damage zone.
	Damage float64 `json:"damage"`
}

func Wall() ObjectType      { return ObjectType{Kind: KindWall} }
func Ouch() ObjectType      { return ObjectType{Kind: KindOuch} }
func SpikeOuch() ObjectType { return ObjectType{Kind: KindSpikeOuch} }
func Portal() ObjectType    { return ObjectType{Kind: KindPortal} }
func Warp() ObjectType      { return ObjectType{Kind: KindWarp} }

// Projectile returns the type of an object moving by v every tick.
func Projectile(v geom.Point) ObjectType {
	return ObjectType{Kind: KindProjectile, Velocity: v}
}

// ConstantDamage returns the type of a zone removing amount health per tick.
func ConstantDamage(amount float64) ObjectType {
	return ObjectType{Kind: KindConstantDamage, Damage: amount}
}

// Object is a hitbox with a behaviour.
type Object struct {
	Hitbox geom.Hitbox `json:"hitbox"`
	Type   ObjectType  `json:"type"`
}

// NewObject creates an object from its rectangle.
func NewObject(r geom.Rect, t ObjectType) Object {
	return Object{Hitbox: geom.NewHitbox(r), Type: t}
}

// DamageZone removes Amount health on every tick the avatar overlaps it.
type DamageZone struct {
	Hitbox geom.Hitbox `json:"hitbox"`
	Amount float64     `json:"amount"`
}
