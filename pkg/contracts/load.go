package contracts

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/greenbox/royaltyflow/pkg/errors"
)

// Load reads a contract record from a YAML file previously produced by the
// extraction collaborator (or written by hand).
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errors.WrapIO("read", path, err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Record{}, errors.WrapParse("yaml", path, err)
	}

	return record, nil
}

// Save writes a contract record to a YAML file.
func Save(record Record, path string) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
