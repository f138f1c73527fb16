package puppyshop

// Paths locates the three data files of a shop.
type Paths struct {
	Products string
	Sales    string
	Users    string
}

// Store bundles the three in-memory collections of one session with explicit
// load and flush boundaries. Between Open and Flush the collections are
// mutated in place; nothing touches the files.
type Store struct {
	Catalog     *Catalog
	Ledger      *Ledger
	Credentials *Credentials

	paths Paths
}

// Open loads all three collections. Any load failure aborts the open; the
// caller treats that as fatal at startup.
func Open(paths Paths) (*Store, error) {
	catalog, err := LoadCatalog(paths.Products)
	if err != nil {
		return nil, err
	}
	ledger, err := LoadLedger(paths.Sales)
	if err != nil {
		return nil, err
	}
	creds, err := LoadCredentials(paths.Users)
	if err != nil {
		return nil, err
	}
	return &Store{
		Catalog:     catalog,
		Ledger:      ledger,
		Credentials: creds,
		paths:       paths,
	}, nil
}

// Flush rewrites the catalog and sales files. The users file is read-only
// and never written back.
func (s *Store) Flush() error {
	if err := SaveCatalog(s.paths.Products, s.Catalog); err != nil {
		return err
	}
	return SaveLedger(s.paths.Sales, s.Ledger)
}
