package store

import (
	"testing"
	"time"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/interview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return &Service{
		cfg:     config.Default(),
		entries: make(map[string]*Entry),
	}
}

func TestGetOrCreate(t *testing.T) {
	svc := newTestService()

	entry, created := svc.GetOrCreate("conv_1")
	require.True(t, created)
	require.NotNil(t, entry.State)
	assert.False(t, entry.State.Started)

	again, created := svc.GetOrCreate("conv_1")
	assert.False(t, created)
	assert.Same(t, entry, again)
	assert.Equal(t, 1, svc.Len())
}

func TestSweepRetentionBoundary(t *testing.T) {
	svc := newTestService()

	stale, _ := svc.GetOrCreate("stale")
	stale.State.LastActivityAt = time.Now().Add(-25 * time.Hour)

	fresh, _ := svc.GetOrCreate("fresh")
	fresh.State.LastActivityAt = time.Now().Add(-23 * time.Hour)

	removed := svc.Sweep(24 * time.Hour)

	assert.Equal(t, 1, removed)
	_, ok := svc.Get("stale")
	assert.False(t, ok)
	_, ok = svc.Get("fresh")
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	svc := newTestService()

	svc.GetOrCreate("conv_1")
	svc.Delete("conv_1")

	assert.Zero(t, svc.Len())
}

func TestSweepKeepsActiveConversations(t *testing.T) {
	svc := newTestService()

	entry, _ := svc.GetOrCreate("active")
	entry.State = interview.NewState()

	assert.Zero(t, svc.Sweep(24*time.Hour))
	assert.Equal(t, 1, svc.Len())
}
