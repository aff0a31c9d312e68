// Package encoding reads and writes the JSON documents that describe a search
// problem: settings, the initial and target states, and the static world.
package encoding

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-pathfinder/internal/geom"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/world"
)

// Document file names inside a problem directory.
const (
	SettingsFile = "settings.json"
	InitialFile  = "initial_state.json"
	TargetFile   = "target_state.json"
	StaticFile   = "static_state.json"
)

// ObjectDocument is one level object. Velocity is set for projectiles and
// Damage for damage zones.
type ObjectDocument struct {
	Kind     world.Kind  `json:"kind" jsonschema:"enum=wall,enum=ouch,enum=spike_ouch,enum=portal,enum=warp,enum=projectile,enum=constant_damage"`
	Hitbox   geom.Rect   `json:"hitbox"`
	Velocity *geom.Point `json:"velocity,omitempty"`
	Damage   *float64    `json:"damage,omitempty"`
}

// StaticDocument is the static world as a flat object list.
type StaticDocument struct {
	Objects      []ObjectDocument    `json:"objects"`
	Environments []world.EnvModifier `json:"environments"`
}

// Bundle is a complete search problem.
type Bundle struct {
	Settings physics.SearchSettings
	Initial  physics.PhysState
	Target   physics.PhysState
	Static   *world.Static
}

// SyncSettings copies the physics part of Settings into both states, which
// carry their own copy for the transition model.
func (b *Bundle) SyncSettings() {
	b.Initial.Settings = b.Settings.Physics()
	b.Target.Settings = b.Settings.Physics()
}

// EncodeStatic flattens a world into its document.
func EncodeStatic(s *world.Static) StaticDocument {
	objects := s.Objects()
	doc := StaticDocument{
		Objects:      make([]ObjectDocument, 0, len(objects)),
		Environments: append([]world.EnvModifier(nil), s.Environments...),
	}
	for _, o := range objects {
		od := ObjectDocument{Kind: o.Type.Kind, Hitbox: o.Hitbox.Rect}
		switch o.Type.Kind {
		case world.KindProjectile:
			v := o.Type.Velocity
			od.Velocity = &v
		case world.KindConstantDamage:
			d := o.Type.Damage
			od.Damage = &d
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}

// DecodeStatic validates a document and builds the world from it.
func DecodeStatic(doc StaticDocument) (*world.Static, error) {
	objects := make([]world.Object, 0, len(doc.Objects))
	for i, od := range doc.Objects {
		kind, err := world.ParseKind(string(od.Kind))
		if err != nil {
			return nil, fmt.Errorf("encoding: object %d: %w", i, err)
		}

		t := world.ObjectType{Kind: kind}
		switch kind {
		case world.KindProjectile:
			if od.Velocity == nil {
				return nil, fmt.Errorf("encoding: object %d: projectile without velocity", i)
			}
			t = world.Projectile(*od.Velocity)
		case world.KindConstantDamage:
			if od.Damage == nil {
				return nil, fmt.Errorf("encoding: object %d: damage zone without amount", i)
			}
			t = world.ConstantDamage(*od.Damage)
		}
		objects = append(objects, world.NewObject(od.Hitbox.Rounded(), t))
	}

	envs := make([]world.EnvModifier, len(doc.Environments))
	for i, e := range doc.Environments {
		e.Hitbox = geom.NewHitbox(e.Hitbox.Rect.Rounded())
		envs[i] = e
	}
	return world.NewStatic(objects, envs), nil
}

// statePresence records which state fields a document actually carries.
type statePresence struct {
	Player *struct {
		X      *float64 `json:"x"`
		Y      *float64 `json:"y"`
		BaseVX *float64 `json:"base_vx"`
		BaseVY *float64 `json:"base_vy"`
	} `json:"player"`
	Gravity        *float64                 `json:"gravity"`
	ActiveModifier *int                     `json:"active_modifier"`
	Settings       *physics.PhysicsSettings `json:"settings"`
}

func (p statePresence) hasEnvironment() bool {
	return p.Gravity != nil && p.ActiveModifier != nil &&
		p.Player.BaseVX != nil && p.Player.BaseVY != nil
}

// DecodeState parses a state document. The player position is required.
// Player fields left out take the NewPlayer defaults, missing settings are
// taken from settings, and a state without its environment fields (gravity,
// active modifier, base speeds) is rebuilt against static as NewState would.
func DecodeState(data []byte, settings physics.SearchSettings, static *world.Static) (physics.PhysState, error) {
	var seen statePresence
	if err := json.Unmarshal(data, &seen); err != nil {
		return physics.PhysState{}, fmt.Errorf("invalid state: %w", err)
	}
	if seen.Player == nil || seen.Player.X == nil || seen.Player.Y == nil {
		return physics.PhysState{}, errors.New("state without a player position")
	}

	s := physics.PhysState{Player: physics.NewPlayer(0, 0)}
	s.Player.Rect = geom.Rect{}
	if err := json.Unmarshal(data, &s); err != nil {
		return physics.PhysState{}, fmt.Errorf("invalid state: %w", err)
	}

	if seen.Settings == nil {
		s.Settings = settings.Physics()
	} else if _, err := physics.ParseMode(string(s.Settings.Mode)); err != nil {
		return physics.PhysState{}, err
	}

	if s.Player.Rect == (geom.Rect{}) {
		s.Player.SyncRect()
	}

	if !seen.hasEnvironment() {
		stepUp := s.WasStepUpBefore
		s = physics.NewState(s.Player, s.Settings, static)
		s.WasStepUpBefore = stepUp
	}
	return s, nil
}
