package barrier_test

import (
	"testing"

	"github.com/katalvlaran/terrapath/barrier"
	"github.com/stretchr/testify/require"
)

func TestNewIndex_InvalidZone(t *testing.T) {
	_, err := barrier.NewIndex(barrier.Zone{Name: "flipped", MinRow: 3, MaxRow: 1})
	require.ErrorIs(t, err, barrier.ErrInvalidZone)

	_, err = barrier.NewIndex(barrier.Zone{MinCol: 5, MaxCol: 4})
	require.ErrorIs(t, err, barrier.ErrInvalidZone)
}

func TestIndex_Blocked(t *testing.T) {
	idx, err := barrier.NewIndex(
		barrier.Zone{Name: "lake", MinRow: 2, MinCol: 2, MaxRow: 3, MaxCol: 4},
		barrier.Zone{Name: "pylon", MinRow: 0, MinCol: 0, MaxRow: 0, MaxCol: 0},
	)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	blocked := [][2]int{{2, 2}, {3, 4}, {2, 3}, {0, 0}}
	for _, rc := range blocked {
		require.Truef(t, idx.Blocked(rc[0], rc[1]), "cell %v should be blocked", rc)
	}
	// Cells adjacent to a zone border must stay open.
	open := [][2]int{{1, 2}, {4, 4}, {2, 5}, {3, 1}, {0, 1}, {1, 0}}
	for _, rc := range open {
		require.Falsef(t, idx.Blocked(rc[0], rc[1]), "cell %v should be open", rc)
	}
}

func TestIndex_Query(t *testing.T) {
	a := barrier.Zone{Name: "a", MinRow: 0, MinCol: 0, MaxRow: 1, MaxCol: 1}
	b := barrier.Zone{Name: "b", MinRow: 10, MinCol: 10, MaxRow: 12, MaxCol: 12}
	c := barrier.Zone{Name: "c", MinRow: 1, MinCol: 5, MaxRow: 1, MaxCol: 9}
	idx, err := barrier.NewIndex(a, b, c)
	require.NoError(t, err)

	require.Equal(t, []barrier.Zone{a, c}, idx.Query(0, 0, 5, 9))
	require.Equal(t, []barrier.Zone{b}, idx.Query(12, 12, 20, 20))
	// Window touching a zone edge without overlapping it.
	require.Empty(t, idx.Query(2, 0, 5, 4))
	require.Nil(t, idx.Query(5, 5, 4, 4))
}

func TestIndex_NilAndEmpty(t *testing.T) {
	var idx *barrier.Index
	require.Equal(t, 0, idx.Len())
	require.False(t, idx.Blocked(0, 0))
	require.Nil(t, idx.Query(0, 0, 10, 10))

	empty, err := barrier.NewIndex()
	require.NoError(t, err)
	require.False(t, empty.Blocked(3, 3))
}

func TestZone_Contains(t *testing.T) {
	z := barrier.Zone{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 3}
	require.True(t, z.Contains(1, 1))
	require.True(t, z.Contains(2, 3))
	require.False(t, z.Contains(0, 1))
	require.False(t, z.Contains(2, 4))
}
