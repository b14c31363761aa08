package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeline-studio/internal/builder"
	"pipeline-studio/internal/catalog"
)

func newManager(size int, ttl time.Duration) *Manager {
	return NewManager(size, ttl, nil)
}

func TestOpenAndDo(t *testing.T) {
	m := newManager(4, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	var name string
	ok := m.Do(s.ID, func(w *builder.Wizard) {
		w.SetName("Digest")
		name = w.State().Name
	})
	assert.True(t, ok)
	assert.Equal(t, "Digest", name)
}

func TestDo_UnknownSession(t *testing.T) {
	m := newManager(4, time.Minute)
	called := false

	assert.False(t, m.Do("missing", func(*builder.Wizard) { called = true }))
	assert.False(t, called)
}

func TestDo_ClosesFinishedWizard(t *testing.T) {
	m := newManager(4, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	require.True(t, m.Do(s.ID, func(w *builder.Wizard) { w.Cancel() }))
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Do(s.ID, func(*builder.Wizard) {}))
}

func TestClose(t *testing.T) {
	m := newManager(4, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	assert.True(t, m.Close(s.ID))
	assert.False(t, m.Close(s.ID))
}

func TestDo_ClosedDuringCallStaysClosed(t *testing.T) {
	m := newManager(4, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	require.True(t, m.Do(s.ID, func(w *builder.Wizard) {
		w.SetName("Digest")
		assert.True(t, m.Close(s.ID))
	}))
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Do(s.ID, func(*builder.Wizard) {}))
}

func TestDo_EvictedDuringCallStaysEvicted(t *testing.T) {
	m := newManager(1, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	var other *Session
	require.True(t, m.Do(s.ID, func(*builder.Wizard) {
		other = m.Open(builder.New(catalog.Default()))
	}))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Do(s.ID, func(*builder.Wizard) {}))
	assert.True(t, m.Do(other.ID, func(*builder.Wizard) {}))
}

func TestOldestSessionEvicted(t *testing.T) {
	m := newManager(2, time.Minute)
	first := m.Open(builder.New(catalog.Default()))
	second := m.Open(builder.New(catalog.Default()))
	third := m.Open(builder.New(catalog.Default()))

	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Do(first.ID, func(*builder.Wizard) {}))
	assert.True(t, m.Do(second.ID, func(*builder.Wizard) {}))
	assert.True(t, m.Do(third.ID, func(*builder.Wizard) {}))
}

func TestSessionsExpire(t *testing.T) {
	m := newManager(2, 50*time.Millisecond)
	s := m.Open(builder.New(catalog.Default()))

	time.Sleep(150 * time.Millisecond)
	assert.False(t, m.Do(s.ID, func(*builder.Wizard) {}))
}

func TestDo_SerializesPerSession(t *testing.T) {
	m := newManager(4, time.Minute)
	s := m.Open(builder.New(catalog.Default()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Do(s.ID, func(w *builder.Wizard) {
				if !w.ToggleSource("reddit") {
					t.Error("toggle rejected")
				}
			})
		}()
	}
	wg.Wait()

	m.Do(s.ID, func(w *builder.Wizard) {
		assert.Empty(t, w.State().Sources, "even number of toggles")
	})
}
