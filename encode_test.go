package puppyshop

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puppy.csv")
	c := testCatalog()
	if _, err := c.Add(AddProductInput{Name: "Pug, Toy", Price: "75", Stock: "2"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := c.Modify("1", ModifyProductInput{Price: "110", Stock: "6"}); err != nil {
		t.Fatalf("Modify: %v", err)
	}

	if err := SaveCatalog(path, c); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if loaded.Len() != c.Len() {
		t.Fatalf("loaded %d products, want %d", loaded.Len(), c.Len())
	}
	want := slices.Collect(c.Products())
	got := slices.Collect(loaded.Products())
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			got[i].Stock != want[i].Stock || !got[i].Price.Equal(want[i].Price) {
			t.Errorf("product %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLedgerRoundTripIsTabSeparated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	c := testCatalog()
	l := NewLedger()
	if _, err := l.RecordSale(c, "1", 3, noon("03/07/2024")); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("sales file has %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "date\ttime\tproduct_id\tquantity\tpayment" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "03/07/2024\t12:30:45\t1\t3\t300.00" {
		t.Errorf("row = %q", lines[1])
	}

	loaded, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	got := slices.Collect(loaded.All())
	if len(got) != 1 {
		t.Fatalf("loaded %d sales, want 1", len(got))
	}
	if got[0].ProductID != "1" || got[0].Quantity != 3 || got[0].Payment.String() != "300.00" {
		t.Errorf("loaded sale = %+v", got[0])
	}
	if got[0].Date.String() != "03/07/2024" || got[0].Time.String() != "12:30:45" {
		t.Errorf("loaded stamp = %s %s", got[0].Date, got[0].Time)
	}
}

func TestLoadLedgerPreservesCorruptRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	content := "date\ttime\tproduct_id\tquantity\tpayment\n" +
		"bad-date\t12:00:00\t1\t1\tn/a\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(raw), "bad-date\t12:00:00\t1\t1\tn/a") {
		t.Errorf("corrupt row not preserved, file:\n%s", raw)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.csv"))
	var storage *StorageError
	if !errors.As(err, &storage) {
		t.Fatalf("error = %v, want StorageError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadCatalogHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puppy.csv")
	if err := os.WriteFile(path, []byte("id,name,price,stock\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("catalog length = %d, want 0", c.Len())
	}
}

func TestStoreOpenFlushRoundTrip(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Products: filepath.Join(dir, "puppy.csv"),
		Sales:    filepath.Join(dir, "sales.csv"),
		Users:    filepath.Join(dir, "users.csv"),
	}
	if err := SaveCatalog(paths.Products, testCatalog()); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	if err := SaveLedger(paths.Sales, NewLedger()); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	users := "username,password,role\nalice,secret,manager\n"
	if err := os.WriteFile(paths.Users, []byte(users), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store, err := Open(paths)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if role, ok := store.Credentials.Authenticate("alice", "secret"); !ok || role != RoleManager {
		t.Errorf("Authenticate after load = %s, %v", role, ok)
	}
	if _, err := store.Ledger.RecordSale(store.Catalog, "1", 2, noon("03/07/2024")); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reopened, err := Open(paths)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if p, _ := reopened.Catalog.Get("1"); p.Stock != 3 {
		t.Errorf("reloaded stock = %d, want 3", p.Stock)
	}
	if reopened.Ledger.Len() != 1 {
		t.Errorf("reloaded ledger length = %d, want 1", reopened.Ledger.Len())
	}
}

func TestStoreOpenMissingUsersFileFails(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Products: filepath.Join(dir, "puppy.csv"),
		Sales:    filepath.Join(dir, "sales.csv"),
		Users:    filepath.Join(dir, "users.csv"),
	}
	if err := SaveCatalog(paths.Products, testCatalog()); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	if err := SaveLedger(paths.Sales, NewLedger()); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	var storage *StorageError
	if _, err := Open(paths); !errors.As(err, &storage) {
		t.Errorf("Open without users file error = %v, want StorageError", err)
	}
}
