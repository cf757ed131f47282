// Package journal appends every reconciled snapshot to a zstd compressed JSON lines file,
// one file per game, so a session can be replayed after the fact.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/rocketscienceinc/connect5-client/internal/reconciler"
)

const bufferSize = 64 * 1024

type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// PathFor returns the journal file of a game inside dir.
func PathFor(dir, gameID string) string {
	return filepath.Join(dir, fmt.Sprintf("game-%s.jsonl.zst", gameID))
}

// Open creates or appends to the journal of a game. Each call starts a new zstd frame.
func Open(dir, gameID string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal dir: %w", err)
	}

	path := PathFor(dir, gameID)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	return &Writer{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, bufferSize),
	}, nil
}

func (that *Writer) Path() string {
	return that.path
}

// Append writes one update as a JSON line.
func (that *Writer) Append(update reconciler.Update) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.w == nil {
		return os.ErrClosed
	}

	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	if _, err = that.w.Write(data); err != nil {
		return fmt.Errorf("failed to write update: %w", err)
	}

	if err = that.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write update: %w", err)
	}

	return nil
}

// Flush pushes buffered lines into the compressor and the compressed block to disk.
func (that *Writer) Flush() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.w == nil {
		return nil
	}

	if err := that.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush journal: %w", err)
	}

	if err := that.enc.Flush(); err != nil {
		return fmt.Errorf("failed to flush journal: %w", err)
	}

	return nil
}

func (that *Writer) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.w == nil {
		return nil
	}

	errFlush := that.w.Flush()
	errEnc := that.enc.Close()
	errFile := that.f.Close()

	that.w, that.enc, that.f = nil, nil, nil

	return errors.Join(errFlush, errEnc, errFile)
}

// Read decodes every update of a journal file in order.
func Read(path string) ([]reconciler.Update, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	defer dec.Close()

	var updates []reconciler.Update

	decoder := json.NewDecoder(dec)

	for {
		var update reconciler.Update

		err = decoder.Decode(&update)
		if errors.Is(err, io.EOF) {
			return updates, nil
		}

		if err != nil {
			return updates, fmt.Errorf("failed to decode journal: %w", err)
		}

		updates = append(updates, update)
	}
}
