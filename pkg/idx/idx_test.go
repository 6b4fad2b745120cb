package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/notecards/pkg/idx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewIsWellFormed(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	_, err := ulid.ParseStrict(id.String())
	require.NoError(t, err)
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	u, err := ulid.ParseStrict(idx.NewAt(tm).String())
	require.NoError(t, err)
	require.WithinDuration(t, tm, ulid.Time(u.Time()), time.Millisecond)
}

func TestOrdering(t *testing.T) {
	t.Run("later timestamp sorts after", func(t *testing.T) {
		a := idx.NewAt(time.Unix(1, 0).UTC())
		b := idx.NewAt(time.Unix(2, 0).UTC())
		require.Less(t, a.String(), b.String())
	})

	t.Run("same millisecond sorts by creation", func(t *testing.T) {
		now := time.Now().UTC()
		first, second := idx.NewAt(now), idx.NewAt(now)
		require.Less(t, first.String(), second.String())
	})
}
