package frt

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// WriteArtifacts persists the final record list and its derived summaries:
// guns.json (indented array), guns.jsonl (one record per line),
// manufacturers.json and calibres.json (sorted unique value lists).
func WriteArtifacts(dir string, records []Record) error {
	if err := writeJSON(filepath.Join(dir, "guns.json"), records, true); err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(dir, "guns.jsonl"), records); err != nil {
		return err
	}

	var manufacturers, calibres []string
	for _, r := range records {
		if r.Manufacturer != "" {
			manufacturers = append(manufacturers, r.Manufacturer)
		}
		calibres = append(calibres, r.Calibres...)
	}
	if err := writeJSON(filepath.Join(dir, "manufacturers.json"), uniqueSorted(manufacturers), true); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "calibres.json"), uniqueSorted(calibres), true)
}

// LoadImages reads an FRN -> image URL list sidecar file.
func LoadImages(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read images sidecar: %w", err)
	}
	var images map[string][]string
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, fmt.Errorf("decode images sidecar: %w", err)
	}
	return images, nil
}

// MergeImages attaches sidecar image URLs to their records by FRN.
func MergeImages(records []Record, images map[string][]string) {
	for i := range records {
		if urls, ok := images[records[i].FRN]; ok {
			records[i].Images = urls
		}
	}
}

func writeJSON(path string, v any, indent bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeJSONL(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, s := range values {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
