package serve

import (
	"path/filepath"

	"github.com/google/uuid"
)

// trackRegistry maps GPX file paths to opaque IDs so the file system
// layout never shows up in URLs. Registration order is preserved for the
// index listing.
type trackRegistry struct {
	paths  []string
	byPath map[string]uuid.UUID
	byID   map[uuid.UUID]string
}

func newTrackRegistry() *trackRegistry {
	return &trackRegistry{
		byPath: make(map[string]uuid.UUID),
		byID:   make(map[uuid.UUID]string),
	}
}

// Register assigns an ID to the given path, reusing the existing ID on
// repeated registration.
func (r *trackRegistry) Register(path string) uuid.UUID {
	path = filepath.Clean(path)
	if guid, ok := r.byPath[path]; ok {
		return guid
	}

	guid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}

	r.paths = append(r.paths, path)
	r.byPath[path] = guid
	r.byID[guid] = path

	return guid
}

func (r *trackRegistry) PathFromID(guid uuid.UUID) (string, bool) {
	path, ok := r.byID[guid]
	return path, ok
}

func (r *trackRegistry) Paths() []string {
	return r.paths
}
