package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvardh/corvid/internal/board"
)

const fixture = `ECO C20
NAME King's Pawn Game
UCI e2e4 e7e5

ECO C40
NAME King's Knight Opening
UCI e2e4 e7e5 g1f3

ECO D00
NAME Queen's Pawn Game
UCI d2d4 d7d5
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openings.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	return path
}

func TestLoadParsesRecords(t *testing.T) {
	b, err := load(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, b.openings, 3)
	require.Equal(t, "C20", b.openings[0].ECO)
	require.Equal(t, "King's Pawn Game", b.openings[0].Name)
	require.Len(t, b.openings[0].Moves, 2)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestLoadRejectsTruncatedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("ECO C20\nNAME Foo\n"), 0o644))
	_, err := load(path)
	require.Error(t, err)
}

func TestFindEmptyHistoryReturnsSomeOpeningsFirstMove(t *testing.T) {
	b, err := load(writeFixture(t))
	require.NoError(t, err)

	e4, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	d4, err := board.ParseMove("d2d4")
	require.NoError(t, err)

	// Every opening in the fixture covers an empty history, so the random
	// pick may land on either first move; the contract is only that some
	// opening's first move comes back.
	m, ok := b.Find(nil)
	require.True(t, ok)
	require.True(t, m.Equals(e4) || m.Equals(d4))
}

func TestFindNarrowsOnLongerHistory(t *testing.T) {
	b, err := load(writeFixture(t))
	require.NoError(t, err)

	e4, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	e5, err := board.ParseMove("e7e5")
	require.NoError(t, err)

	m, ok := b.Find([]board.Move{e4, e5})
	require.True(t, ok)
	require.Equal(t, board.Square{File: 6, Rank: 0}, m.From) // g1
	require.Equal(t, board.Square{File: 5, Rank: 2}, m.To)   // f3
}

func TestFindReturnsFalseBeyondEveryLine(t *testing.T) {
	b, err := load(writeFixture(t))
	require.NoError(t, err)

	d4, err := board.ParseMove("d2d4")
	require.NoError(t, err)
	c5, err := board.ParseMove("c7c5")
	require.NoError(t, err)

	_, ok := b.Find([]board.Move{d4, c5})
	require.False(t, ok, "c7c5 does not continue the Queen's Pawn Game line")
}

func TestLoadIgnoresBlankLinesBetweenRecords(t *testing.T) {
	b, err := load(writeFixture(t))
	require.NoError(t, err)
	require.Len(t, b.openings, 3)
}
