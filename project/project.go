// Package project reads and writes project files: the character, the
// inventory file and the ids of the selected articles.
//
// The format is JSON:
//
//	{
//	    "character_name": "boy",
//	    "articles_file": "articles.txt",
//	    "active_articles": ["10", "42"]
//	}
//
// Unknown fields are ignored. character_name and articles_file are required.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/wardrobe/catalog"
)

// Extension is the conventional project file extension.
const Extension = ".stp"

// ErrInvalidFormat is returned when a project document lacks a required field.
var ErrInvalidFormat = errors.New("project: invalid project file format")

// File is a saved selection.
type File struct {
	CharacterName  string   `json:"character_name"`
	ArticlesFile   string   `json:"articles_file"`
	ActiveArticles []string `json:"active_articles"`
}

// New captures a selection. IDs keep the order of active.
func New(character, articlesFile string, active []catalog.Article) *File {
	ids := make([]string, len(active))
	for i, a := range active {
		ids[i] = a.ID
	}
	return &File{
		CharacterName:  character,
		ArticlesFile:   articlesFile,
		ActiveArticles: ids,
	}
}

// Validate checks the required fields.
func (f *File) Validate() error {
	switch {
	case f.CharacterName == "":
		return fmt.Errorf("%w: missing character_name", ErrInvalidFormat)
	case f.ArticlesFile == "":
		return fmt.Errorf("%w: missing articles_file", ErrInvalidFormat)
	}
	return nil
}

// Encode writes f as indented JSON.
func (f *File) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("project: encode: %w", err)
	}
	return nil
}

// Decode reads and validates a project document. Either the whole document
// is accepted or an error is returned.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("project: decode: %w", err)
	}
	switch _, err := dec.Token(); {
	case err == io.EOF:
	case err != nil:
		return nil, fmt.Errorf("project: decode: %w", err)
	default:
		return nil, errors.New("project: decode: trailing data after document")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.ActiveArticles == nil {
		f.ActiveArticles = []string{}
	}
	return &f, nil
}

// LoadFile reads the project file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("project: read file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// SaveFile writes f to path. The file is written to a temporary sibling and
// renamed into place so a failed save never truncates an existing project.
func (f *File) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".project-*")
	if err != nil {
		return fmt.Errorf("project: create file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("project: write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("project: write file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("project: write file: %w", err)
	}
	return nil
}

// CatalogLoader loads the catalog a project refers to.
type CatalogLoader func(character, articlesFile string) (*catalog.Catalog, error)

// Restored is the outcome of resolving a project against its catalog.
type Restored struct {
	Catalog *catalog.Catalog

	// Articles are the resolved articles in saved order.
	Articles []catalog.Article

	// Missing lists saved ids the catalog no longer contains.
	Missing []string
}

// Restore loads the project's catalog and resolves each saved id with
// catalog.FindByID. Unknown ids are logged and reported in Missing; they do
// not fail the restore. logger may be nil.
func Restore(f *File, load CatalogLoader, logger *slog.Logger) (*Restored, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	cat, err := load(f.CharacterName, f.ArticlesFile)
	if err != nil {
		return nil, fmt.Errorf("project: load catalog %s/%s: %w", f.CharacterName, f.ArticlesFile, err)
	}

	r := &Restored{Catalog: cat, Articles: make([]catalog.Article, 0, len(f.ActiveArticles))}
	for _, id := range f.ActiveArticles {
		a, ok := cat.FindByID(id)
		if !ok {
			logger.Warn("project: article not found", "id", id, "character", f.CharacterName)
			r.Missing = append(r.Missing, id)
			continue
		}
		r.Articles = append(r.Articles, a)
	}
	return r, nil
}
