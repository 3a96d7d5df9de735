package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TrialStore = (*Store)(nil)

// Store implements ports.TrialStore with one JSON artifact per combination
// under a runs directory. Artifact paths are unique per combination, so
// concurrent workers in a single well-formed run never contend for the same
// file and no locking is needed.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given runs directory. The directory
// is created lazily on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

func (s *Store) pathFor(comb domain.Combination) (string, error) {
	key, err := EncodeKey(comb.Config.Params())
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, ArtifactName(comb.Dataset.Name, string(comb.Config.Kind), key)), nil
}

// Get retrieves the cache entry for a combination, or nil, nil on a miss.
// A malformed artifact or a checksum mismatch is a fatal error; staleness
// validation against the requested trial count is the caller's concern.
func (s *Store) Get(comb domain.Combination) (*domain.CacheEntry, error) {
	path, err := s.pathFor(comb)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is derived from the registry and the key encoder
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache artifact"), "path", path)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode cache artifact"), "path", path)
	}

	sum, err := recordsChecksum(entry.Records)
	if err != nil {
		return nil, err
	}
	if sum != entry.Checksum {
		return nil, zerr.With(domain.ErrCorruptCacheEntry, "path", path)
	}

	return &entry, nil
}

// Put writes the full record sequence for a combination in one shot,
// together with the metadata needed to validate later hits.
func (s *Store) Put(comb domain.Combination, trials int, records []domain.TrialRecord) error {
	path, err := s.pathFor(comb)
	if err != nil {
		return err
	}

	sum, err := recordsChecksum(records)
	if err != nil {
		return err
	}

	key, err := EncodeKey(comb.Config.Params())
	if err != nil {
		return err
	}

	entry := domain.CacheEntry{
		Dataset:  comb.Dataset.Name,
		Model:    string(comb.Config.Kind),
		Key:      key,
		Trials:   trials,
		Version:  domain.CacheVersion,
		Checksum: sum,
		Records:  records,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create runs directory")
	}

	//nolint:gosec // Path is derived from the registry and the key encoder
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache artifact"), "path", path)
	}

	return nil
}

// recordsChecksum digests the canonical serialization of the record
// sequence. The same digest is recomputed on load to detect corruption.
func recordsChecksum(records []domain.TrialRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", zerr.Wrap(err, "failed to checksum records")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
