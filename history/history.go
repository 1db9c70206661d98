// Package history tracks and persists captured lectures.
package history

import (
	"time"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed registry of capture records.
var cacher = gache.New[map[string]*SavedLecture](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of capture records from the persistent store.
func Get() (map[string]*SavedLecture, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedLecture), nil
	}
	return cached, nil
}

// Save persists a capture record. Capturing the same lecture again
// replaces the prior record with the fresher one.
func Save(record *SavedLecture) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record.SavedAt = time.Now().Format(time.RFC3339)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a capture record from the registry.
func Remove(record *SavedLecture) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}
