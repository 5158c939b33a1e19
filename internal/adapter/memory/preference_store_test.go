package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/port"
)

func TestPreferenceStore(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore()

	_, err := s.Load(ctx, "alice")
	assert.ErrorIs(t, err, port.ErrNotFound)

	want := domain.Preferences{Accent: domain.AccentPalette[3], Theme: domain.ThemeDark}
	require.NoError(t, s.Save(ctx, "alice", want))

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.Load(ctx, "bob")
	assert.ErrorIs(t, err, port.ErrNotFound)
}
