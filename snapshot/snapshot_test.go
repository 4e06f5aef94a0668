package snapshot

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestWriteFormat(t *testing.T) {
	g := model.NewGrid(4, 2)
	g.Set(0, 0, true)
	g.Set(1, 3, true)

	var buf bytes.Buffer
	if err := Write(&buf, g, 7); err != nil {
		t.Fatal(err)
	}

	want := "4 2 7\nO...\n...O\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	g := model.NewGrid(23, 11)
	g.Randomize(rand.New(rand.NewPCG(5, 5)))

	for _, b := range []model.Board{g, model.ToSparse(g)} {
		var buf bytes.Buffer
		if err := Write(&buf, b, 40); err != nil {
			t.Fatal(err)
		}

		snap, err := Read(&buf, 23, 11)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if snap.Iterations != 40 || snap.Width != 23 || snap.Height != 11 {
			t.Fatalf("header = %+v", snap)
		}
		if model.Fingerprint(snap.Grid) != model.Fingerprint(g) {
			t.Fatalf("%T round trip changed the alive set", b)
		}
	}
}

func TestReadDimensionMismatch(t *testing.T) {
	input := "5 5 0\n.....\n.....\n.....\n.....\n.....\n"
	if _, err := Read(strings.NewReader(input), 5, 6); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := Read(strings.NewReader(input), 4, 5); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestReadMalformedHeader(t *testing.T) {
	tests := map[string]string{
		"empty":        "",
		"two fields":   "5 5\n",
		"four fields":  "5 5 0 1\n",
		"non numeric":  "five 5 0\n",
		"negative":     "5 5 -1\n",
		"blank header": "\n.....\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(input), 5, 5); !errors.Is(err, ErrMalformedHeader) {
				t.Fatalf("expected ErrMalformedHeader, got %v", err)
			}
		})
	}
}

func TestReadToleratesShortAndLongInput(t *testing.T) {
	input := strings.Join([]string{
		"4 3 2",
		"O",         // short row
		"..OOOOOOO", // extra characters ignored
		// third row missing
	}, "\r\n")

	snap, err := Read(strings.NewReader(input), 4, 3)
	if err != nil {
		t.Fatal(err)
	}

	got := model.AliveCells(snap.Grid)
	want := []model.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("alive %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("alive %v, want %v", got, want)
		}
	}

	extraLines := "2 1 0\nOO\nOO\nOO\n"
	snap, err = Read(strings.NewReader(extraLines), 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Grid.Population() != 2 {
		t.Fatalf("population = %d, want 2", snap.Grid.Population())
	}
}

func TestReadTreatsOtherCharactersAsDead(t *testing.T) {
	snap, err := Read(strings.NewReader("3 1 0\nx#o\n"), 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Grid.Population() != 0 {
		t.Fatalf("population = %d, want 0", snap.Grid.Population())
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	dir := t.TempDir()
	g := model.NewGrid(6, 4)
	g.AddBlinker(1, 1)

	path, err := NextFreePath(dir, 6, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "game_of_life_6_4_10.txt" {
		t.Fatalf("path = %s", path)
	}
	if err := WriteFile(path, g, 10); err != nil {
		t.Fatal(err)
	}

	snap, err := ReadFile(path, 6, 4)
	if err != nil {
		t.Fatal(err)
	}
	if model.Fingerprint(snap.Grid) != model.Fingerprint(g) || snap.Iterations != 10 {
		t.Fatal("file round trip changed the snapshot")
	}

	if _, err := ReadFile(path, 4, 6); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}

	// only the final file is left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file in %s, found %d", dir, len(entries))
	}
}

func TestNextFreePathAvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	g := model.NewGrid(2, 2)

	var paths []string
	for range 3 {
		path, err := NextFreePath(dir, 2, 2, 5)
		if err != nil {
			t.Fatal(err)
		}
		if err := WriteFile(path, g, 5); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, filepath.Base(path))
	}

	want := []string{"game_of_life_2_2_5.txt", "game_of_life_2_2_5_1.txt", "game_of_life_2_2_5_2.txt"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), 1, 1)
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
