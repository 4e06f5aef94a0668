package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	aliveChar = 'O'
	deadChar  = '.'

	filePerm = 0o644
)

var (
	// ErrDimensionMismatch is returned when a seed declares other dimensions than requested
	ErrDimensionMismatch = errors.New("seed dimensions do not match")
	// ErrMalformedHeader is returned when the first line is not "width height iterations"
	ErrMalformedHeader = errors.New("malformed snapshot header")
)

// Snapshot is one generation read from disk together with its cumulative generation count
type Snapshot struct {
	Width      int
	Height     int
	Iterations int
	Grid       *model.Grid
}

// ReadFile loads a seed file, requiring it to declare exactly width x height
func ReadFile(path string, width, height int) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to open seed file: %+v", path)
	}
	defer f.Close()

	snap, err := Read(f, width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] %+v", path)
	}
	return snap, nil
}

// Read parses a snapshot. Missing rows and short lines are dead; anything past width or height is ignored.
func Read(r io.Reader, width, height int) (*Snapshot, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "[Read] failed to read header")
	}

	fields := strings.Fields(header)
	if len(fields) != 3 {
		return nil, errors.Wrapf(ErrMalformedHeader, "[Read] want 3 fields, got %q", header)
	}
	var values [3]int
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "[Read] field %q: %v", field, err)
		}
		values[i] = int(v)
	}

	snap := &Snapshot{Width: values[0], Height: values[1], Iterations: values[2]}
	if snap.Width != width || snap.Height != height {
		return nil, errors.Wrapf(ErrDimensionMismatch, "[Read] file is %dx%d, requested %dx%d",
			snap.Width, snap.Height, width, height)
	}

	snap.Grid = model.NewGrid(width, height)
	for row := 0; row < height; row++ {
		line, err := readLine(br)
		x := 0
		for _, ch := range line {
			if x >= width {
				break
			}
			snap.Grid.Set(row, x, ch == aliveChar)
			x++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[Read] failed to read row %d", row)
		}
	}

	return snap, nil
}

// Write emits the header and one line of 'O' / '.' per row
func Write(w io.Writer, b model.Board, iterations int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", b.Width(), b.Height(), iterations)

	line := make([]byte, b.Width()+1)
	line[b.Width()] = '\n'
	for row := range b.Height() {
		for col := range b.Width() {
			if b.IsAlive(row, col) {
				line[col] = aliveChar
			} else {
				line[col] = deadChar
			}
		}
		bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Write] failed to flush snapshot")
	}
	return nil
}

// WriteFile writes the snapshot to a temporary file and renames it over path,
// so path holds either a complete snapshot or nothing new
func WriteFile(path string, b model.Board, iterations int) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to create temp file for: %+v", path)
	}
	defer pending.Cleanup()

	if err = Write(pending, b, iterations); err != nil {
		return errors.Wrapf(err, "[WriteFile] %+v", path)
	}
	if err = pending.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to replace: %+v", path)
	}
	return nil
}

// FileName is the conventional output name for a run
func FileName(width, height, iterations int) string {
	return fmt.Sprintf("game_of_life_%d_%d_%d.txt", width, height, iterations)
}

// NextFreePath returns FileName inside dir, adding a _1, _2, ... suffix when the name is taken
func NextFreePath(dir string, width, height, iterations int) (string, error) {
	base := strings.TrimSuffix(FileName(width, height, iterations), ".txt")
	candidate := filepath.Join(dir, base+".txt")

	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, "[NextFreePath] failed to stat: %+v", candidate)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.txt", base, i))
	}
}

// readLine returns the next line without its line ending
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
