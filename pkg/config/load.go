package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes the configuration document at path. A missing
// file is returned unwrapped so a caller can distinguish it (os.IsNotExist)
// from every other failure the way pkg/syncdb's Load does for the sync
// database; a malformed document is wrapped with the path for context.
//
// Decoding uses KnownFields(true) so a typo'd key (e.g. "derectionPolicy")
// is reported as an error instead of being silently ignored — the
// yaml.v3 equivalent of the teacher's yaml.v2 UnmarshalStrict.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "open configuration file %s", path)
	}
	defer file.Close()

	var doc Document
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode configuration file %s", path)
	}

	return &doc, nil
}
