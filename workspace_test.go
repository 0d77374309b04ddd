package wardrobe

import (
	"testing"

	"github.com/google/uuid"
)

func TestWorkspace(t *testing.T) {
	_, lib := heroLibrary(t)
	a := lib.NewDocument()
	b := lib.NewDocument()
	c := lib.NewDocument()

	w := NewWorkspace()
	w.Add(a)
	w.Add(b)
	w.Add(c)
	w.Add(a)

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", w.Len())
	}
	if got, ok := w.Get(b.ID()); !ok || got != b {
		t.Errorf("Get(b) = %v, %v", got, ok)
	}
	if _, ok := w.Get(uuid.New()); ok {
		t.Error("Get(unknown) found a document")
	}

	if !w.Close(b.ID()) {
		t.Error("Close(b) = false, want true")
	}
	if w.Close(b.ID()) {
		t.Error("second Close(b) = true, want false")
	}

	docs := w.Documents()
	if len(docs) != 2 || docs[0] != a || docs[1] != c {
		t.Errorf("Documents() = %v, want [a c]", docs)
	}
}
