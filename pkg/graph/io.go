package graph

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// ReadFile reads a graph document from path. The format follows the file
// extension (.json, .yaml, .yml).
func ReadFile(path string) (*Graph, error) {
	g, _, err := ReadFileBytes(path)
	return g, err
}

// ReadFileBytes is like ReadFile but also returns the raw file contents,
// which callers use as a content hash for caching.
func ReadFileBytes(path string) (*Graph, []byte, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, gderrors.Wrap(gderrors.ErrCodeFileNotFound, err, "graph file %s", path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := decode(data, format)
	if err != nil {
		return nil, nil, err
	}
	return g, data, nil
}

// Read decodes a graph document from r.
func Read(r io.Reader, format Format) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decode(data, format)
}

// WriteFile writes a graph document to path, choosing the format from the
// file extension. The file is created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(ToDocument(g), format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write encodes a graph document to w.
func Write(g *Graph, w io.Writer, format Format) error {
	data, err := Marshal(ToDocument(g), format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// FormatForPath returns the document format implied by a file extension.
func FormatForPath(path string) (Format, error) {
	name, err := gderrors.ValidateGraphPath(path)
	if err != nil {
		return "", err
	}
	return Format(name), nil
}

func decode(data []byte, format Format) (*Graph, error) {
	doc, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}
