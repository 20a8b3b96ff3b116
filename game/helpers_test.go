package game_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/plus3/blockfall/game"
)

// boardFromLines builds a board from a fixture diagram: '.' for empty
// cells, a tint digit for occupied ones.
func boardFromLines(t *testing.T, lines []string) *game.Board {
	t.Helper()

	b := game.NewBoard(len(lines[0]), len(lines))
	for row, line := range lines {
		if len(line) != b.Width {
			t.Fatalf("ragged fixture row %d: %q", row, line)
		}
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			if ch < '0' || ch > '4' {
				t.Fatalf("bad fixture cell %q at (%d,%d)", ch, row, col)
			}
			b.Set(row, col, game.Block{Kind: game.KindI, Tint: game.Tint(ch - '0')})
		}
	}
	return b
}

// boardLines renders a board back into fixture form for comparison.
func boardLines(b *game.Board) []string {
	lines := make([]string, b.Height)
	for row := 0; row < b.Height; row++ {
		var sb strings.Builder
		for col := 0; col < b.Width; col++ {
			if blk, occupied := b.At(row, col); occupied {
				sb.WriteByte('0' + byte(blk.Tint))
			} else {
				sb.WriteByte('.')
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// loadFixtures parses a txtar archive from testdata into named diagrams.
func loadFixtures(t *testing.T, name string) map[string][]string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture archive: %v", err)
	}

	archive := txtar.Parse(data)
	fixtures := make(map[string][]string, len(archive.Files))
	for _, file := range archive.Files {
		text := strings.TrimRight(string(file.Data), "\n")
		fixtures[file.Name] = strings.Split(text, "\n")
	}
	return fixtures
}
