// Package jsonfile persists the ledger as a single indented JSON object:
//
//	{ "April 2025": [ {"date": "2025-04-18", "fishing_location": "Velia", ...} ] }
//
// The file is read in full on Load and rewritten in full on Save. Writes are
// not atomic: a crash mid-write can leave a truncated file behind.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fishledger/internal/core"
)

const indent = "    "

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load implements ledger.Loader.
func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return core.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	l := core.Ledger{}
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", s.path, err)
	}
	// "null" decodes to a nil map, and a month may be stored as null.
	if l == nil {
		l = core.Ledger{}
	}
	for k, sessions := range l {
		if sessions == nil {
			l[k] = []core.Session{}
		}
	}
	return l, nil
}

// Save implements ledger.Saver.
func (s *Store) Save(_ context.Context, l core.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger %s: %w", s.path, err)
	}
	return nil
}

// Encode renders the ledger exactly as Save writes it. Empty months are
// written as [] rather than null.
func Encode(l core.Ledger) ([]byte, error) {
	out := make(core.Ledger, len(l))
	for k, sessions := range l {
		if sessions == nil {
			sessions = []core.Session{}
		}
		out[k] = sessions
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	// Month-keys and locations are user text; keep them readable.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return buf.Bytes(), nil
}
