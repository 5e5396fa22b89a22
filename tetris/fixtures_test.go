package tetris_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

type clearFixture struct {
	before, after, result string
}

func loadClearFixtures(t *testing.T) map[string]*clearFixture {
	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("testdata", "clear_rows.txtar"))
	require.NoError(t, err)

	fixtures := make(map[string]*clearFixture)
	for _, file := range archive.Files {
		name, part, ok := strings.Cut(file.Name, "/")
		require.True(t, ok, "fixture file %q must be named case/part", file.Name)

		fx := fixtures[name]
		if fx == nil {
			fx = &clearFixture{}
			fixtures[name] = fx
		}

		switch part {
		case "before":
			fx.before = string(file.Data)
		case "after":
			fx.after = string(file.Data)
		case "result":
			fx.result = strings.TrimSpace(string(file.Data))
		default:
			t.Fatalf("unknown fixture part %q", file.Name)
		}
	}
	return fixtures
}

func TestClearFullRowsFixtures(t *testing.T) {
	fixtures := loadClearFixtures(t)
	require.NotEmpty(t, fixtures)

	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			board := parseBoard(t, fx.before)
			expected := parseBoard(t, fx.after)

			cleared, delta := board.ClearFullRows()
			assert.Equal(t, fx.result, fmt.Sprintf("%d %d", cleared, delta))
			assert.Equal(t, expected.Cells(), board.Cells())
		})
	}
}
