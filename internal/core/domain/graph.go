package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the in-memory view of a project descriptor: a table of typed records keyed by
// ObjectID plus the identifier of the root anchor.
//
// Graph performs no secondary indexing. Lookups scan the table, which holds tens of records
// in practice.
type Graph struct {
	// Header carries the top-level document keys other than objects and rootObject.
	Header  map[string]any
	rootID  ObjectID
	objects map[ObjectID]Record
}

// NewGraph creates an empty graph anchored at rootID.
func NewGraph(rootID ObjectID) *Graph {
	return &Graph{
		Header:  make(map[string]any),
		rootID:  rootID,
		objects: make(map[ObjectID]Record),
	}
}

// RootID returns the identifier of the root anchor.
func (g *Graph) RootID() ObjectID {
	return g.rootID
}

// Insert stores record under id. Identifiers are never reused.
func (g *Graph) Insert(id ObjectID, record Record) error {
	if _, exists := g.objects[id]; exists {
		err := zerr.With(Tag(ErrDuplicateObject), "id", id.String())
		return Structural(zerr.With(err, "kind", string(record.Kind())))
	}
	g.objects[id] = record
	return nil
}

// Get returns the record stored under id.
func (g *Graph) Get(id ObjectID) (Record, bool) {
	r, ok := g.objects[id]
	return r, ok
}

// Has reports whether id is taken.
func (g *Graph) Has(id ObjectID) bool {
	_, ok := g.objects[id]
	return ok
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.objects)
}

// IDs returns every identifier in ascending order.
func (g *Graph) IDs() []ObjectID {
	ids := make([]ObjectID, 0, len(g.objects))
	for id := range g.objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CountOf returns the number of records of the given kind.
func (g *Graph) CountOf(kind Kind) int {
	n := 0
	for _, r := range g.objects {
		if r.Kind() == kind {
			n++
		}
	}
	return n
}

// Root returns the project root anchor.
func (g *Graph) Root() (*ProjectRoot, error) {
	r, ok := g.objects[g.rootID]
	if !ok {
		return nil, Structural(zerr.With(Tag(ErrMissingRootObject), "root_object", g.rootID.String()))
	}
	root, ok := r.(*ProjectRoot)
	if !ok {
		err := zerr.With(Tag(ErrMissingRootObject), "root_object", g.rootID.String())
		return nil, Structural(zerr.With(err, "isa", string(r.Kind())))
	}
	return root, nil
}

// Lookup returns the record stored under id if it has type T.
func Lookup[T Record](g *Graph, id ObjectID) (T, bool) {
	var zero T
	r, ok := g.objects[id]
	if !ok {
		return zero, false
	}
	typed, ok := r.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// RecordsOfType returns the records of type T keyed by identifier.
func RecordsOfType[T Record](g *Graph) map[ObjectID]T {
	out := make(map[ObjectID]T)
	for id, r := range g.objects {
		if typed, ok := r.(T); ok {
			out[id] = typed
		}
	}
	return out
}

// Find returns the first record of type T, in identifier order, that satisfies match.
func Find[T Record](g *Graph, match func(ObjectID, T) bool) (ObjectID, T, bool) {
	for _, id := range g.IDs() {
		typed, ok := g.objects[id].(T)
		if !ok {
			continue
		}
		if match(id, typed) {
			return id, typed, true
		}
	}
	var zero T
	return "", zero, false
}
