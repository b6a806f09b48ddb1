package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDSetToggleInsertsAndRemoves(t *testing.T) {
	s := IDSet{}
	s = s.Toggle("u1")
	require.True(t, s.Has("u1"))

	s = s.Toggle("u2")
	require.ElementsMatch(t, IDSet{"u1", "u2"}, s)

	s = s.Toggle("u1")
	require.False(t, s.Has("u1"))
	require.ElementsMatch(t, IDSet{"u2"}, s)
}

// 连按两次回到原集合
func TestToggleLikeSelfInverse(t *testing.T) {
	c := Card{Likes: IDSet{"a", "b"}}
	c.ToggleLike("z")
	c.ToggleLike("z")
	require.ElementsMatch(t, IDSet{"a", "b"}, c.Likes)

	c.ToggleLike("a")
	c.ToggleLike("a")
	require.ElementsMatch(t, IDSet{"a", "b"}, c.Likes)
}

func TestToggleNeverDuplicates(t *testing.T) {
	s := IDSet{"a"}
	s = s.Toggle("a")
	s = s.Toggle("a")
	require.Len(t, s, 1)
}
