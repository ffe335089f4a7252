package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazedfs/maze"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

func TestParse_Valid(t *testing.T) {
	g, err := maze.ParseString("3,3\nS..\n.%.\n..G\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "S..", g.Row(0))
	assert.Equal(t, ".%.", g.Row(1))
	assert.Equal(t, "..G", g.Row(2))
}

func TestParse_ToleratesCRLFAndHeaderSpaces(t *testing.T) {
	g, err := maze.ParseString(" 2 , 2 \r\nSG\r\n..\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, "SG", g.Row(0))
	assert.Equal(t, "..", g.Row(1))
}

func TestParse_SpacesAreCells(t *testing.T) {
	g, err := maze.ParseString("1,4\nS  G\n")
	require.NoError(t, err)
	assert.True(t, g.IsOpen(maze.Position{Row: 0, Col: 1}))
	assert.Equal(t, "S  G", g.Row(0))
}

func TestParse_NoTrailingNewline(t *testing.T) {
	g, err := maze.ParseString("1,3\nS%G")
	require.NoError(t, err)
	assert.Equal(t, "S%G", g.Row(0))
}

// TestParse_Errors verifies that every malformed input is rejected with ErrFormat.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		extra error
	}{
		{"Empty", "", nil},
		{"HeaderOneField", "3\nS..\n", nil},
		{"HeaderThreeFields", "1,3,4\nS..\n", nil},
		{"HeaderNotNumber", "a,3\nS..\n", nil},
		{"HeaderColsNotNumber", "1,b\nS..\n", nil},
		{"ZeroRows", "0,3\n", maze.ErrEmptyGrid},
		{"ZeroCols", "3,0\n\n\n\n", maze.ErrEmptyGrid},
		{"NegativeRows", "-1,3\n", maze.ErrEmptyGrid},
		{"MissingRow", "2,2\nSG\n", nil},
		{"ShortRow", "2,3\nS.G\n..\n", nil},
		{"LongRow", "2,2\nSG\n...\n", nil},
		{"ExtraRow", "1,2\nSG\n..\n", nil},
		{"BlankInsideRows", "3,2\nS.\n\n.G\n", nil},
		{"InvalidUTF8", "1,3\nS\xffG\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.ParseString(tc.input)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, maze.ErrFormat)
			if tc.extra != nil {
				assert.ErrorIs(t, err, tc.extra)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("2,2\nSG\n..\n"), 0o600))

	g, err := maze.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())

	_, err = maze.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2,2\nSG\n"), 0o600))
	_, err = maze.ReadFile(bad)
	assert.ErrorIs(t, err, maze.ErrFormat)
}

func TestGrid_StringRoundTrip(t *testing.T) {
	for _, src := range []string{
		"3,4\n%S.%\n%.%%\n%..G\n",
		"1,3\nS\u00e9G\n", // multi-byte cells keep their bytes
	} {
		g, err := maze.ParseString(src)
		require.NoError(t, err)
		assert.Equal(t, src, g.String())
	}
}
