package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a := New(42)
	b := New(42)
	for range 20 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, New(7).Perm(30), New(7).Perm(30))
}

func TestSeed(t *testing.T) {
	t.Parallel()
	explicit := int64(99)
	assert.Equal(t, int64(99), Seed(&explicit))
	assert.NotZero(t, Seed(nil))
}

func TestScripted(t *testing.T) {
	t.Parallel()

	t.Run("picks replay and clamp", func(t *testing.T) {
		s := &Scripted{Picks: []int{2, 9, -1}}
		assert.Equal(t, 2, s.IntN(5))
		assert.Equal(t, 4, s.IntN(5))
		assert.Equal(t, 0, s.IntN(5))
		assert.Equal(t, 0, s.IntN(5), "exhausted script returns 0")
	})

	t.Run("perm replays then falls back to identity", func(t *testing.T) {
		s := &Scripted{Perms: [][]int{{2, 0, 1}}}
		assert.Equal(t, []int{2, 0, 1}, s.Perm(3))
		assert.Equal(t, []int{0, 1, 2}, s.Perm(3))
	})

	t.Run("wrong sized perm is ignored", func(t *testing.T) {
		s := &Scripted{Perms: [][]int{{1, 0}}}
		p := s.Perm(4)
		require.Len(t, p, 4)
		assert.Equal(t, []int{0, 1, 2, 3}, p)
	})
}
