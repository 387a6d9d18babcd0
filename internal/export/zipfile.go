package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ZipBuilder assembles the bulk-export archive in memory.
type ZipBuilder struct {
	buf bytes.Buffer
	zw  *zip.Writer
}

// NewZipBuilder returns an empty archive handle.
func NewZipBuilder() *ZipBuilder {
	b := &ZipBuilder{}
	b.zw = zip.NewWriter(&b.buf)
	return b
}

// Add appends one named entry.
func (b *ZipBuilder) Add(name string, data []byte) error {
	w, err := b.zw.Create(name)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}

// Finalize closes the archive and returns its bytes. The builder cannot be
// reused afterwards.
func (b *ZipBuilder) Finalize() ([]byte, error) {
	if err := b.zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return b.buf.Bytes(), nil
}
