package puppyshop

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Field delimiters of the data files. The sales file is tab-separated, the
// catalog and users files plain CSV.
const (
	CatalogComma     = ','
	LedgerComma      = '\t'
	CredentialsComma = ','
)

// decodeFile reads all records of a delimited file into typed rows. A file
// holding only the header row decodes to an empty collection.
func decodeFile[T any](path string, comma rune) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	var rows []T
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, &StorageError{Path: path, Err: err}
	}
	return rows, nil
}

// encodeFile rewrites the whole file, header first. The write goes to a
// temporary file in the same directory followed by a rename, so a reader
// never observes a half-written file.
func encodeFile[T any](path string, comma rune, rows []T) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	w.Comma = comma
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		tmp.Close()
		return &StorageError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}

// LoadCatalog loads the product catalog from a CSV file.
func LoadCatalog(path string) (*Catalog, error) {
	rows, err := decodeFile[Product](path, CatalogComma)
	if err != nil {
		return nil, err
	}
	return NewCatalog(rows...), nil
}

// SaveCatalog rewrites the product catalog file.
func SaveCatalog(path string, c *Catalog) error {
	return encodeFile(path, CatalogComma, c.products)
}

// LoadLedger loads the sales ledger from a tab-separated file.
func LoadLedger(path string) (*Ledger, error) {
	rows, err := decodeFile[Sale](path, LedgerComma)
	if err != nil {
		return nil, err
	}
	return NewLedger(rows...), nil
}

// SaveLedger rewrites the sales file.
func SaveLedger(path string, l *Ledger) error {
	return encodeFile(path, LedgerComma, l.sales)
}

// LoadCredentials loads the users file. There is no save counterpart:
// credentials are read-only at runtime.
func LoadCredentials(path string) (*Credentials, error) {
	rows, err := decodeFile[Credential](path, CredentialsComma)
	if err != nil {
		return nil, err
	}
	return NewCredentials(rows...), nil
}
