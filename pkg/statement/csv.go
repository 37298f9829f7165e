package statement

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/greenbox/royaltyflow/pkg/errors"
)

// ReadCSV reads a CSV or TSV statement export into raw rows. Ragged rows are
// allowed; the ingestor tolerates missing trailing cells per row.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	return rows, nil
}

// IngestFile reads and aggregates a statement file in one call.
func IngestFile(path string, opts *Options) (*Aggregate, error) {
	rows, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return Ingest(rows, opts)
}
