// Package pagecache persists extracted page texts in fixed-size numbered
// chunk files so an interrupted extraction run can resume at chunk
// granularity instead of starting over.
package pagecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is an append-only, chunk-indexed page text store. Chunk numbers
// start at 1.
type Store interface {
	// LoadAll reconstructs the page sequence by concatenating chunk files
	// in ascending numeric order, stopping at the first missing chunk.
	// A corrupt chunk stops loading; pages read before it are returned
	// alongside the error.
	LoadAll() ([]string, error)
	// SaveChunk persists one complete chunk. The write is atomic: a chunk
	// file never holds a partially written page list.
	SaveChunk(pages []string, num int) error
	// AllChunksPresent reports whether every chunk required to cover
	// targetPages exists.
	AllChunksPresent(targetPages, chunkSize int) bool
	// HasChunk reports whether a single chunk file exists.
	HasChunk(num int) bool
}

// DirStore keeps chunks as guns-N.json files in a directory, each file a
// JSON array of page strings.
type DirStore struct {
	Dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

func (s *DirStore) chunkPath(num int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("guns-%d.json", num))
}

func (s *DirStore) LoadAll() ([]string, error) {
	var pages []string
	for num := 1; ; num++ {
		data, err := os.ReadFile(s.chunkPath(num))
		if err != nil {
			if os.IsNotExist(err) {
				return pages, nil
			}
			return pages, fmt.Errorf("read chunk %d: %w", num, err)
		}
		var chunk []string
		if err := json.Unmarshal(data, &chunk); err != nil {
			return pages, fmt.Errorf("decode chunk %d: %w", num, err)
		}
		pages = append(pages, chunk...)
	}
}

func (s *DirStore) SaveChunk(pages []string, num int) error {
	data, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("marshal chunk %d: %w", num, err)
	}
	tmp, err := os.CreateTemp(s.Dir, "chunk-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp chunk: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write chunk %d: %w", num, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close chunk %d: %w", num, err)
	}
	if err := os.Rename(tmpPath, s.chunkPath(num)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename chunk %d: %w", num, err)
	}
	return nil
}

func (s *DirStore) AllChunksPresent(targetPages, chunkSize int) bool {
	if targetPages <= 0 || chunkSize <= 0 {
		return false
	}
	required := (targetPages + chunkSize - 1) / chunkSize
	for num := 1; num <= required; num++ {
		if !s.HasChunk(num) {
			return false
		}
	}
	return true
}

func (s *DirStore) HasChunk(num int) bool {
	_, err := os.Stat(s.chunkPath(num))
	return err == nil
}
