package system

import (
	"go-zombie-arena/internal/component"
	"go-zombie-arena/internal/defs"
	"go-zombie-arena/internal/entity"
	"go-zombie-arena/internal/event"
)

// scriptedRand replays fixed rolls. Once a script runs out it keeps
// returning the fallback: 0.99 for floats (no drop, no rare type) and 0
// for ints.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// recorder keeps every dispatched event.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) sounds() []defs.SoundID {
	var out []defs.SoundID
	for _, e := range r.ofType(event.SoundRequested) {
		out = append(out, e.Data.(event.Sound).ID)
	}
	return out
}

// newWorld returns an empty active round on the open map (no
// decorations) with a recorder subscribed to everything.
func newWorld() (*entity.ECS, *event.Dispatcher, *recorder) {
	ecs := entity.NewECS()
	ecs.Map = &defs.MapLibrary[2]
	ecs.Wave.Phase = component.PhaseActive
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.SubscribeAll(rec)
	return ecs, dispatcher, rec
}

func zombieAt(x, y float64) component.Enemy {
	return component.Enemy{
		Position:  component.Position{X: x, Y: y},
		Speed:     1.5,
		Health:    1,
		MaxHealth: 1,
		Type:      defs.EnemyZombie,
		Size:      24,
	}
}

func bulletAt(x, y float64, damage int) component.Bullet {
	return component.Bullet{
		Position: component.Position{X: x, Y: y},
		Speed:    12,
		Damage:   damage,
		Weapon:   defs.WeaponPistol,
	}
}
