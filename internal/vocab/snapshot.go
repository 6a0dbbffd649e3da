package vocab

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = "1.1"

// SnapshotMetadata describes a persisted index.
type SnapshotMetadata struct {
	Version          string
	TotalWords       int
	TotalOccurrences int
	CreatedAt        time.Time
	SourceFile       string
}

// snapshot is the on-disk form of an index: the full frequency map plus
// metadata, gob-encoded as a single opaque file.
type snapshot struct {
	Frequencies map[string]int
	Metadata    SnapshotMetadata
}

// Persist writes the complete index to path. Parent directories are created
// if they do not exist. Restoring the file reproduces membership and
// frequency data exactly.
func Persist(idx *Index, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	snap := snapshot{
		Frequencies: idx.freq,
		Metadata: SnapshotMetadata{
			Version:          SnapshotVersion,
			TotalWords:       idx.Len(),
			TotalOccurrences: idx.TotalOccurrences(),
			CreatedAt:        time.Now(),
			SourceFile:       idx.source,
		},
	}
	if err := gob.NewEncoder(f).Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Restore loads a persisted index from path. A missing, corrupt, or
// unreadable snapshot is an error; callers fall back to rebuilding from the
// vocabulary source.
func Restore(path string) (*Index, *SnapshotMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}
	idx := FromCounts(snap.Frequencies, snap.Metadata.SourceFile)
	meta := snap.Metadata
	return idx, &meta, nil
}
