package credential

import (
	"encoding/json"
	"os"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/where"
	"github.com/samber/mo"
)

// Store persists a single credential pair as a JSON file.
// Corrupt or invalid stored state is indistinguishable from absence:
// Load self-heals by deleting it and reporting None.
type Store struct {
	path string
}

// NewStore returns a store bound to an explicit file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns the store at the well-known working-directory path.
func DefaultStore() *Store {
	return NewStore(where.Credential())
}

// Path returns the file location backing the store.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the persisted credential pair. Invalid credentials are
// rejected so a malformed pair can never be reused across runs.
func (s *Store) Save(cred Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}

	return filesystem.API().WriteFile(s.path, data, 0600)
}

// Load returns the persisted credential pair, or None when no usable state
// exists. Undecodable or invalid content is cleared before returning.
func (s *Store) Load() mo.Option[Credential] {
	data, err := filesystem.API().ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("credential store unreadable: %v", err)
		}
		return mo.None[Credential]()
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		log.Warnf("credential store corrupted, clearing: %v", err)
		s.Invalidate()
		return mo.None[Credential]()
	}

	if err := cred.Validate(); err != nil {
		log.Warnf("stored credential invalid, clearing: %v", err)
		s.Invalidate()
		return mo.None[Credential]()
	}

	return mo.Some(cred)
}

// Invalidate clears persisted state unconditionally. Callers may invoke it
// blindly after any authorization failure; a missing file is not an error.
func (s *Store) Invalidate() {
	if err := filesystem.API().Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Warnf("credential store removal failed: %v", err)
	}
}
