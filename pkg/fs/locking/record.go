// Package locking implements the crash-safe directory lock spec.md §4.3
// describes: an advisory, filesystem-based mutex that tolerates the
// crash of a prior holder via a life-sign/takeover protocol, since no OS
// mutex is portable across network shares.
package locking

import (
	"encoding/binary"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recordSchema is the forward-compatibility schema byte written into
// every lock record; a future incompatible record layout would bump this
// and let readers detect and reject it rather than misparse it.
const recordSchema = 1

// record is the self-describing content of a lock file: a lock-uuid
// generated fresh at acquire time, plus a descriptor of the acquiring
// process used to detect same-host abandonment.
type record struct {
	id       uuid.UUID
	hostname string
	pid      int
}

func newRecord(hostname string, pid int) (record, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return record{}, errors.Wrap(err, "unable to generate lock id")
	}
	return record{id: id, hostname: hostname, pid: pid}, nil
}

// encode serializes the record as: 16-byte uuid, 4-byte little-endian
// hostname length, hostname bytes, 8-byte little-endian pid, 1 schema
// byte.
func (r record) encode() []byte {
	hostBytes := []byte(r.hostname)
	buf := make([]byte, 0, 16+4+len(hostBytes)+8+1)
	buf = append(buf, r.id[:]...)
	lengthPrefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(lengthPrefix, uint32(len(hostBytes)))
	buf = append(buf, lengthPrefix...)
	buf = append(buf, hostBytes...)
	pidBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(pidBytes, uint64(r.pid))
	buf = append(buf, pidBytes...)
	buf = append(buf, recordSchema)
	return buf
}

// decodeRecord parses a serialized record, returning an error for any
// buffer too short or otherwise malformed to represent one — treated by
// the caller as an abandoned lock, per spec.md §4.3 step 2.
func decodeRecord(data []byte) (record, error) {
	if len(data) < 16+4 {
		return record{}, errors.New("record too short to contain id and hostname length")
	}
	var id uuid.UUID
	copy(id[:], data[:16])
	hostLength := binary.LittleEndian.Uint32(data[16:20])
	offset := 20
	if len(data) < offset+int(hostLength)+8+1 {
		return record{}, errors.New("record too short for declared hostname and trailer")
	}
	hostname := string(data[offset : offset+int(hostLength)])
	offset += int(hostLength)
	pid := binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8
	if data[offset] != recordSchema {
		return record{}, errors.Errorf("unsupported lock record schema: %d", data[offset])
	}
	return record{id: id, hostname: hostname, pid: int(pid)}, nil
}

// localHostname returns the current host's identifier, used to decide
// whether a stale record's process id is even meaningful to check.
func localHostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine hostname")
	}
	return name, nil
}
