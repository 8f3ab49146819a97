package config

import "github.com/dustin/go-humanize"

// ByteSize is a uint64 byte count that decodes from either a bare number
// or a human-friendly string ("10MB", "2GiB"), the same dual form the
// teacher's pkg/configuration.ByteSize accepts for its staging-file-size
// setting.
type ByteSize uint64

func (s ByteSize) MarshalText() ([]byte, error) {
	return []byte(humanize.Bytes(uint64(s))), nil
}

func (s *ByteSize) UnmarshalText(text []byte) error {
	value, err := humanize.ParseBytes(string(text))
	if err != nil {
		return err
	}
	*s = ByteSize(value)
	return nil
}
