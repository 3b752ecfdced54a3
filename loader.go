package estoque

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LoadStock reads the stock document at path. A missing file yields the seed
// dataset; a file that exists but cannot be parsed propagates ErrCorruptData,
// it is never masked by the seed.
func LoadStock(path, currency string) (*Stock, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Printf("stock file %q does not exist, starting from the seed dataset", path)
		return SeedStock(currency), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open stock file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStock(f, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read stock file %q: %w", path, err)
	}
	return s, nil
}

// SaveStock rewrites the whole stock document. It writes to a temporary file
// in the same directory and renames it over the target, so a failure midway
// never leaves a truncated document behind.
func SaveStock(path string, s *Stock) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for stock file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary stock file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeStock(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary stock file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace stock file %q: %w", path, err)
	}
	log.Printf("save-stock file=%q products=%d", path, s.Len())
	return nil
}
