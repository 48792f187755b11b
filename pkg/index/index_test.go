package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFind(t *testing.T) {
	m := New[string, string]()
	m.Insert("Editor", "editor")

	cmd, ok := m.Find("Editor")
	require.True(t, ok)
	assert.Equal(t, "editor", cmd)

	_, ok = m.Find("editor")
	assert.False(t, ok, "lookup must be case-sensitive")

	_, ok = m.Find("Missing")
	assert.False(t, ok)
}

func TestInsertOverwrites(t *testing.T) {
	m := New[string, string]()
	m.Insert("Firefox", "/usr/bin/firefox")
	m.Insert("Firefox", "flatpak run org.mozilla.firefox")

	assert.Equal(t, 1, m.Len())
	cmd, ok := m.Find("Firefox")
	require.True(t, ok)
	assert.Equal(t, "flatpak run org.mozilla.firefox", cmd)
}

func TestTraverseIsSorted(t *testing.T) {
	insertions := [][]string{
		{"Firefox", "Editor", "Calculator"},
		{"Calculator", "Editor", "Firefox"},
		{"Editor", "Calculator", "Firefox"},
	}

	for _, order := range insertions {
		m := New[string, string]()
		for _, name := range order {
			m.Insert(name, name+"-cmd")
		}

		var got []string
		m.Traverse(func(name, cmd string) {
			assert.Equal(t, name+"-cmd", cmd)
			got = append(got, name)
		})

		assert.Equal(t, []string{"Calculator", "Editor", "Firefox"}, got, "insertion order %v", order)
	}
}

func TestTraverseVisitorInsertDoesNotAffectCurrentPass(t *testing.T) {
	m := New[string, int]()
	m.Insert("b", 2)
	m.Insert("a", 1)

	var visited []string
	m.Traverse(func(k string, _ int) {
		visited = append(visited, k)
		m.Insert("c", 3)
	})

	assert.Equal(t, []string{"a", "b"}, visited)
	assert.Equal(t, 3, m.Len())
}

func TestAllStopsEarly(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"d", "c", "b", "a"} {
		m.Insert(k, i)
	}

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestKeysEmpty(t *testing.T) {
	m := New[string, string]()
	assert.Empty(t, m.Keys())
	assert.Equal(t, 0, m.Len())
}
