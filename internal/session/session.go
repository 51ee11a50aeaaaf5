// Package session persists scan sessions to disk. A session file is a
// zstd-compressed msgpack blob holding the session metadata and the
// extracted dates.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// Meta describes a saved session.
type Meta struct {
	ID        string    `msgpack:"id" json:"id"`
	Name      string    `msgpack:"name" json:"name"`
	CreatedAt time.Time `msgpack:"created_at" json:"created_at"`
	Sources   []string  `msgpack:"sources" json:"sources"`
}

// Session is a saved scan: its metadata plus the extracted date set.
type Session struct {
	Meta  Meta                `msgpack:"meta" json:"meta"`
	Dates []extract.DateValue `msgpack:"dates" json:"dates"`
}

// New creates a session over the given dates. An empty name gets a
// generated human-friendly one.
func New(name string, sources []string, dates []extract.DateValue) Session {
	if name == "" {
		name = petname.Generate(2, "-")
	}
	return Session{
		Meta: Meta{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Name:      name,
			CreatedAt: time.Now(),
			Sources:   sources,
		},
		Dates: dates,
	}
}

// Save writes the session to path, creating parent directories as needed.
func Save(path string, s Session) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("init compressor: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finish session: %w", err)
	}
	return f.Close()
}

// Load reads a session file written by Save.
func Load(path string) (Session, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Session{}, fmt.Errorf("open session file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return Session{}, fmt.Errorf("init decompressor: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
