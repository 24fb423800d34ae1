package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	name string
	log  *[]string
}

func (c *collector) OnEvent(e Event) {
	*c.log = append(*c.log, c.name+":"+string(e.Type))
}

func TestDispatchOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	d.SubscribeAll(&collector{name: "all", log: &log})
	d.Subscribe(EnemyKilled, &collector{name: "a", log: &log})
	d.Subscribe(EnemyKilled, &collector{name: "b", log: &log})
	d.Subscribe(PlayerHurt, &collector{name: "c", log: &log})

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, []string{"a:EnemyKilled", "b:EnemyKilled", "all:EnemyKilled", "all:GameOver"}, log)
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	keep := &collector{name: "keep", log: &log}
	drop := &collector{name: "drop", log: &log}
	d.Subscribe(SoundRequested, keep)
	d.Subscribe(SoundRequested, drop)

	d.Unsubscribe(SoundRequested, drop)
	d.Unsubscribe(MapChanged, drop)
	d.Dispatch(Event{Type: SoundRequested})

	assert.Equal(t, []string{"keep:SoundRequested"}, log)
}

func TestListenerFunc(t *testing.T) {
	var got Event
	d := NewDispatcher()
	d.Subscribe(RoundStarted, ListenerFunc(func(e Event) { got = e }))

	d.Dispatch(Event{Type: RoundStarted, Tick: 9, Data: Round{Round: 2, Enemies: 5}})

	assert.Equal(t, uint64(9), got.Tick)
	assert.Equal(t, Round{Round: 2, Enemies: 5}, got.Data)
}

func TestUnsubscribeSkipsFuncListeners(t *testing.T) {
	var calls int
	var log []string
	d := NewDispatcher()
	fn := ListenerFunc(func(Event) { calls++ })
	keep := &collector{name: "keep", log: &log}
	d.Subscribe(PlayerHurt, fn)
	d.Subscribe(PlayerHurt, keep)

	assert.NotPanics(t, func() { d.Unsubscribe(PlayerHurt, fn) })
	assert.NotPanics(t, func() { d.Unsubscribe(PlayerHurt, keep) })
	d.Dispatch(Event{Type: PlayerHurt})

	assert.Equal(t, 1, calls)
	assert.Empty(t, log)
}
