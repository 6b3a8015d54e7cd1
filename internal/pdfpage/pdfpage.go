// Package pdfpage implements the page-text provider over ledongthuc/pdf.
package pdfpage

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// File provides per-page plain text from a PDF on disk.
type File struct {
	f      *os.File
	reader *pdflib.Reader
	pages  int
}

// Open opens the PDF and reads its page count.
func Open(path string) (*File, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &File{f: f, reader: reader, pages: reader.NumPage()}, nil
}

func (p *File) PageCount() int {
	return p.pages
}

// PageText extracts the plain text of the zero-based page index.
// ledongthuc/pdf numbers pages from 1. Null pages and extraction failures
// yield an empty string, matching the cache's one-string-per-page contract.
func (p *File) PageText(i int) (string, error) {
	page := p.reader.Page(i + 1)
	if page.V.IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", nil
	}
	return text, nil
}

func (p *File) Close() error {
	return p.f.Close()
}
