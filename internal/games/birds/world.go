package birds

import "github.com/vovakirdan/tui-birds/internal/core"

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint64

// Kind is the variant tag of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindGround
	KindPipeTop
	KindPipeBottom
)

// String returns the semantic tag presentation collaborators key on.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindGround:
		return "Ground"
	case KindPipeTop:
		return "Pipe:Top"
	case KindPipeBottom:
		return "Pipe:Bottom"
	default:
		return "Unknown"
	}
}

// IsPipe reports whether the kind is either half of an obstacle pair.
func (k Kind) IsPipe() bool {
	return k == KindPipeTop || k == KindPipeBottom
}

// Gap is the passable opening of a pipe pair, recorded on both halves.
type Gap struct {
	Top    float64 // Offset of the top half's lower edge
	Bottom float64 // Offset of the bottom half's upper edge
}

// Entity is anything placed on the play field.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec // Centre
	Size     core.Vec
	Collider bool    // Target of player collision checks
	Gap      *Gap    // Pipes only
	Player   *Player // Player only
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

func (e *Entity) effect(op core.EffectOp) core.Effect {
	return core.Effect{
		Op:       op,
		EntityID: uint64(e.ID),
		Tag:      e.Kind.String(),
		Collider: e.Collider,
		Pos:      e.Pos,
		Size:     e.Size,
	}
}

// World owns every entity in spawn order and records spawn/despawn effects.
type World struct {
	next     EntityID
	entities []*Entity
	effects  []core.Effect
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{entities: make([]*Entity, 0, 16)}
}

// Spawn adds an entity, assigning it a fresh ID.
func (w *World) Spawn(e Entity) *Entity {
	w.next++
	e.ID = w.next
	ent := &e
	w.entities = append(w.entities, ent)
	w.effects = append(w.effects, ent.effect(core.EffectSpawn))
	return ent
}

// Despawn removes the entity with the given ID.
// Returns false if no such entity exists.
func (w *World) Despawn(id EntityID) bool {
	for i, e := range w.entities {
		if e.ID != id {
			continue
		}
		w.effects = append(w.effects, e.effect(core.EffectDespawn))
		copy(w.entities[i:], w.entities[i+1:])
		w.entities[len(w.entities)-1] = nil
		w.entities = w.entities[:len(w.entities)-1]
		return true
	}
	return false
}

// Entities returns all entities in spawn order. The slice must not be modified.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Player returns the player entity, if one is spawned.
func (w *World) Player() (*Entity, bool) {
	for _, e := range w.entities {
		if e.Kind == KindPlayer {
			return e, true
		}
	}
	return nil, false
}

// Colliders returns every entity tagged as a collision target.
func (w *World) Colliders() []*Entity {
	return w.filter(func(e *Entity) bool { return e.Collider })
}

// Pipes returns every obstacle half.
func (w *World) Pipes() []*Entity {
	return w.filter(func(e *Entity) bool { return e.Kind.IsPipe() })
}

func (w *World) filter(keep func(*Entity) bool) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// DrainEffects returns the effects recorded since the last call and forgets them.
func (w *World) DrainEffects() []core.Effect {
	out := w.effects
	w.effects = nil
	return out
}
