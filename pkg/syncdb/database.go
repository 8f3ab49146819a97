package syncdb

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/foldersync"
	"github.com/foldersync/foldersync/pkg/fs"
	"github.com/foldersync/foldersync/pkg/logging"
	"github.com/foldersync/foldersync/pkg/resolve"
)

// schemaVersion is the schema byte spec.md §6 calls out: a database
// written by a future, incompatible layout bumps this, and Load treats
// any mismatch as "no database" rather than attempting to parse it.
const schemaVersion = 1

// Database is an in-memory, keyed view of one folder pair's sync database,
// loaded from or destined for <base>/sync.ffs_db.
type Database struct {
	entries map[string]Entry
}

// New creates an empty Database, ready to be populated by Record and then
// written out with Save.
func New() *Database {
	return &Database{entries: make(map[string]Entry)}
}

// Record adds or replaces the entry for relativePath.
func (d *Database) Record(e Entry) {
	d.entries[e.Path] = e
}

// Lookup implements pkg/resolve's History interface.
func (d *Database) Lookup(relativePath string) (resolve.PreviousState, bool) {
	if d == nil {
		return resolve.PreviousState{}, false
	}
	entry, ok := d.entries[relativePath]
	if !ok {
		return resolve.PreviousState{}, false
	}
	return resolve.PreviousState{Size: entry.Size, ModTime: entry.ModTime, FileID: entry.FileID}, true
}

// Load reads the database file at path. A missing file is not an error:
// it returns (nil, nil), the same as a file with an unrecognized schema
// byte, since spec.md §6 treats both as "no database" and falls back to
// the Automatic policy's one-time-mirror heuristic. logger may be nil.
func Load(path string, logger *logging.Logger) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "unable to read sync database")
	}

	if len(data) < 1+4 {
		logger.Warnf("sync database %s is too short to be valid; ignoring", path)
		return nil, nil
	}
	if data[0] != schemaVersion {
		logger.Warnf("sync database %s has schema %d, expected %d; ignoring", path, data[0], schemaVersion)
		return nil, nil
	}

	count := binary.LittleEndian.Uint32(data[1:5])
	offset := 5
	entries := make(map[string]Entry, count)
	for i := uint32(0); i < count; i++ {
		entry, consumed, err := decodeEntry(data[offset:])
		if err != nil {
			logger.Warnf("sync database %s is truncated or corrupt; ignoring: %v", path, err)
			return nil, nil
		}
		entries[entry.Path] = entry
		offset += consumed
	}

	return &Database{entries: entries}, nil
}

// Save writes the database atomically: the full contents are staged
// under a fresh temporary name alongside path and then renamed into
// place, so a crash mid-write never leaves a corrupt sync.ffs_db for the
// next run's Load to stumble over.
func (d *Database) Save(path string) error {
	buf := make([]byte, 5, 5+len(d.entries)*64)
	buf[0] = schemaVersion
	binary.LittleEndian.PutUint32(buf[1:5], uint32(len(d.entries)))
	for _, entry := range d.entries {
		buf = append(buf, entry.encode()...)
	}

	stagingName, err := uuid.NewRandom()
	if err != nil {
		return errors.Wrap(err, "unable to generate staging name")
	}
	stagingPath := filepath.Join(filepath.Dir(path), stagingName.String()+foldersync.StagingExtension)

	if err := os.WriteFile(stagingPath, buf, 0644); err != nil {
		return errors.Wrap(err, "unable to write staged sync database")
	}
	if err := fs.Rename(stagingPath, path); err != nil {
		os.Remove(stagingPath)
		return errors.Wrap(err, "unable to finalize sync database")
	}
	return nil
}
