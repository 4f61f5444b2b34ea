package gate

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_OnReady(t *testing.T) {
	g := New()
	var order []string
	g.OnReady(func() { order = append(order, "screen") })
	g.OnReady(func() { order = append(order, "token") })
	assert.False(t, g.Ready())
	assert.Empty(t, order)

	assert.True(t, g.SetReady())
	assert.True(t, g.Ready())
	assert.Equal(t, []string{"screen", "token"}, order)

	assert.False(t, g.SetReady())
	assert.Equal(t, []string{"screen", "token"}, order)
}

func TestGate_OnReadyAfterReady(t *testing.T) {
	g := New()
	g.SetReady()
	invoked := false
	g.OnReady(func() { invoked = true })
	assert.True(t, invoked)
}

func TestGate_Remove(t *testing.T) {
	g := New()
	invoked := false
	id := g.OnReady(func() { invoked = true })
	assert.True(t, g.Remove(id))
	assert.False(t, g.Remove(id))
	g.SetReady()
	assert.False(t, invoked)
}

func TestGate_DeferLastWriteWins(t *testing.T) {
	g := New()
	var executed []string
	g.Defer(func() { executed = append(executed, "A") })
	id := g.Defer(func() { executed = append(executed, "B") })
	pendingID, ok := g.Pending()
	assert.True(t, ok)
	assert.Equal(t, id, pendingID)
	assert.Empty(t, executed)

	g.SetReady()
	assert.Equal(t, []string{"B"}, executed)
	_, ok = g.Pending()
	assert.False(t, ok)

	g.SetReady()
	assert.Equal(t, []string{"B"}, executed)

	g.Defer(func() { executed = append(executed, "C") })
	assert.Equal(t, []string{"B", "C"}, executed)
}

func TestGate_DeferDuringDelivery(t *testing.T) {
	g := New()
	var executed []string
	g.OnReady(func() { executed = append(executed, "observer") })
	g.OnReady(func() {
		g.Defer(func() { executed = append(executed, "B") })
	})
	g.Defer(func() {
		executed = append(executed, "A")
		g.Defer(func() { executed = append(executed, "A2") })
	})

	g.SetReady()
	assert.Equal(t, []string{"A", "A2", "observer", "B"}, executed)
	_, ok := g.Pending()
	assert.False(t, ok)

	g.Defer(func() { executed = append(executed, "C") })
	assert.Equal(t, []string{"A", "A2", "observer", "B", "C"}, executed)
}

func TestGate_PanickingObserver(t *testing.T) {
	g := New()
	invoked := false
	g.OnReady(func() { panic("boom") })
	g.OnReady(func() { invoked = true })
	assert.NotPanics(t, func() { g.SetReady() })
	assert.True(t, invoked)
}

func TestGate_ConcurrentRegistration(t *testing.T) {
	g := New()
	var invoked atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.OnReady(func() { invoked.Add(1) })
		}()
	}
	transitions := atomic.Int32{}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.SetReady() {
				transitions.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, transitions.Load())
	assert.EqualValues(t, 100, invoked.Load())
}
