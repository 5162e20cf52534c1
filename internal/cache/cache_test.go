package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIgnoresInputOrder(t *testing.T) {
	a := Key("bmi", map[string]string{"weight": "70", "height": "175"})
	b := Key("bmi", map[string]string{"height": "175", "weight": "70"})
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "calc:bmi:"))
}

func TestKeyDistinguishesInputs(t *testing.T) {
	base := Key("bmi", map[string]string{"weight": "70"})
	assert.NotEqual(t, base, Key("bmi", map[string]string{"weight": "71"}))
	assert.NotEqual(t, base, Key("bac", map[string]string{"weight": "70"}))
	// the separator keeps name and value boundaries apart
	assert.NotEqual(t,
		Key("x", map[string]string{"ab": "c"}),
		Key("x", map[string]string{"a": "bc"}))
}

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v"))
	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemoryExpiresEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", "v"))
	now = now.Add(59 * time.Second)
	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestRedisReportsBackendErrors(t *testing.T) {
	r := NewRedis("127.0.0.1:1", time.Minute)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := r.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, err)
}
