package ordering

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{ID: id, Order: i + 1}
	}
	return out
}

func ids(list []Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID
	}
	return out
}

// move mirrors the usecase flow on an in-memory group.
func move(group []Item, id string, position int) []Item {
	var entity Item
	siblings := make([]Item, 0, len(group))
	for _, it := range group {
		if it.ID == id {
			entity = it
			continue
		}
		siblings = append(siblings, it)
	}
	out, _ := Renumber(Insert(siblings, entity, position))
	return out
}

func TestClampPosition(t *testing.T) {
	require.Equal(t, 1, ClampPosition(0, 3))
	require.Equal(t, 1, ClampPosition(-5, 3))
	require.Equal(t, 2, ClampPosition(2, 3))
	require.Equal(t, 4, ClampPosition(4, 3))
	require.Equal(t, 4, ClampPosition(99, 3))
	require.Equal(t, 1, ClampPosition(3, 0))
}

func TestMoveToFront(t *testing.T) {
	got := move(items("A", "B", "C"), "C", 1)
	require.Equal(t, []Item{{"C", 1}, {"A", 2}, {"B", 3}}, got)
}

func TestMoveToCurrentPositionChangesNothing(t *testing.T) {
	group := items("A", "B", "C", "D")
	for pos, it := range group {
		siblings := append([]Item{}, group[:pos]...)
		siblings = append(siblings, group[pos+1:]...)
		renumbered, changed := Renumber(Insert(siblings, it, pos+1))
		require.Equal(t, group, renumbered)
		require.Empty(t, changed)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	group := items("A", "B", "C", "D", "E")
	for p := 1; p <= len(group); p++ {
		for q := 1; q <= len(group); q++ {
			id := group[p-1].ID
			there := move(group, id, q)
			back := move(there, id, p)
			require.Equal(t, group, back, "move %s %d->%d->%d", id, p, q, p)
		}
	}
}

func TestMoveClampsBeyondEnd(t *testing.T) {
	got := move(items("A", "B", "C"), "A", 10)
	require.Equal(t, []string{"B", "C", "A"}, ids(got))
	require.Equal(t, 3, got[2].Order)
}

func TestRenumberReportsOnlyChanged(t *testing.T) {
	list := []Item{{"A", 1}, {"B", 5}, {"C", 3}}
	renumbered, changed := Renumber(list)
	require.Equal(t, []Item{{"A", 1}, {"B", 2}, {"C", 3}}, renumbered)
	require.Equal(t, []Item{{"B", 2}}, changed)
}

func TestContiguityAfterRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	group := items("A", "B", "C", "D", "E", "F", "G")
	for i := 0; i < 500; i++ {
		id := group[rng.Intn(len(group))].ID
		group = move(group, id, rng.Intn(len(group)+4)-1)
		require.True(t, IsContiguous(group))
	}
}

func TestIsContiguous(t *testing.T) {
	require.True(t, IsContiguous(nil))
	require.True(t, IsContiguous([]Item{{"A", 2}, {"B", 1}}))
	require.False(t, IsContiguous([]Item{{"A", 1}, {"B", 3}}))
	require.False(t, IsContiguous([]Item{{"A", 1}, {"B", 1}}))
	require.False(t, IsContiguous([]Item{{"A", 0}}))
}

func TestNextOrder(t *testing.T) {
	require.Equal(t, 1, NextOrder(nil))
	require.Equal(t, 4, NextOrder([]Item{{"A", 3}, {"B", 1}}))
}

func TestGroupEqual(t *testing.T) {
	s1, s1b, s2 := "s1", "s1", "s2"
	base := Group{Kind: KindContentItem, StoreID: "st", ProductID: "p"}

	a, b := base, base
	require.True(t, a.Equal(b))

	a.ParentID, b.ParentID = &s1, &s1b
	require.True(t, a.Equal(b))

	b.ParentID = &s2
	require.False(t, a.Equal(b))

	b.ParentID = nil
	require.False(t, a.Equal(b))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("category")
	require.NoError(t, err)
	require.Equal(t, KindCategory, k)

	_, err = ParseKind("page")
	require.Error(t, err)
}
