package wardrobe

import (
	"slices"

	"github.com/google/uuid"
)

// Workspace is the ordered set of open documents.
// It is not safe for concurrent use.
type Workspace struct {
	docs  map[uuid.UUID]*Document
	order []uuid.UUID
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{docs: make(map[uuid.UUID]*Document)}
}

// Add registers d. Adding a document twice keeps its original position.
func (w *Workspace) Add(d *Document) {
	if _, ok := w.docs[d.id]; ok {
		return
	}
	w.docs[d.id] = d
	w.order = append(w.order, d.id)
}

// Get returns the document with the given id.
func (w *Workspace) Get(id uuid.UUID) (*Document, bool) {
	d, ok := w.docs[id]
	return d, ok
}

// Close removes the document with the given id and reports whether it was
// open.
func (w *Workspace) Close(id uuid.UUID) bool {
	if _, ok := w.docs[id]; !ok {
		return false
	}
	delete(w.docs, id)
	w.order = slices.DeleteFunc(w.order, func(x uuid.UUID) bool { return x == id })
	return true
}

// Documents returns the open documents in the order they were added.
func (w *Workspace) Documents() []*Document {
	out := make([]*Document, len(w.order))
	for i, id := range w.order {
		out[i] = w.docs[id]
	}
	return out
}

// Len returns the number of open documents.
func (w *Workspace) Len() int { return len(w.order) }
