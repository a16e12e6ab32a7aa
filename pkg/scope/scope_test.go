package scope

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("PATH")
	assert.False(t, ok, "new store holds no variables")

	require.NoError(t, m.Set("PATH", "/usr/bin"))
	v, ok := m.Get("PATH")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin", v)

	// Empty is a set value, not an unset one
	require.NoError(t, m.Set("EMPTY", ""))
	v, ok = m.Get("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = m.Get("UNSET")
	assert.False(t, ok)
}

func TestMemory_CaseSensitiveNames(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("Path", "/a"))
	_, ok := m.Get("PATH")
	assert.False(t, ok)
}

func TestFromEnviron(t *testing.T) {
	m := FromEnviron([]string{
		"PATH=/usr/bin:/bin",
		"EQUALS=a=b",
		"EMPTY=",
		"malformed",
		"=nameless",
		"PATH=/override",
	})

	v, _ := m.Get("PATH")
	assert.Equal(t, "/override", v, "later pairs win")

	v, _ = m.Get("EQUALS")
	assert.Equal(t, "a=b", v, "only the first '=' splits")

	_, ok := m.Get("EMPTY")
	assert.True(t, ok)

	_, ok = m.Get("malformed")
	assert.False(t, ok)
	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestMemory_ImplementsLocker(t *testing.T) {
	var _ Store = NewMemory()
	var _ Locker = NewMemory()
}

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	var km KeyedMutex
	unlock := km.Lock("PATH")

	acquired := make(chan struct{})
	go func() {
		u := km.Lock("PATH")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock on the same key must block")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock should proceed after unlock")
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	var km KeyedMutex
	unlockA := km.Lock("PATH")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		km.Lock("MANPATH")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different keys must not block each other")
	}
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	var km KeyedMutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("PATH")
			unlock()
			unlock() // second call is a no-op
		}()
	}
	wg.Wait()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
