package puppyshop

import (
	"errors"
	"testing"
)

func TestCatalogResolve(t *testing.T) {
	c := testCatalog()
	testCases := []struct {
		name string
		term string
		want any // Found id, NotFound, or Ambiguous candidate count
	}{
		{name: "exact id", term: "2", want: "2"},
		{name: "unique name substring", term: "beag", want: "1"},
		{name: "case insensitive", term: "BEAGLE", want: "1"},
		{name: "substring matches several", term: "lab", want: 2},
		{name: "upper case ambiguous", term: "LAB", want: 2},
		{name: "no match", term: "poodle", want: nil},
		{name: "id wins over name", term: "1", want: "1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			switch r := c.Resolve(tc.term).(type) {
			case Found:
				want, ok := tc.want.(string)
				if !ok {
					t.Fatalf("Resolve(%q) = Found(%s), want %v", tc.term, r.Product.ID, tc.want)
				}
				if r.Product.ID != want {
					t.Errorf("Resolve(%q) = Found(%s), want id %s", tc.term, r.Product.ID, want)
				}
			case Ambiguous:
				want, ok := tc.want.(int)
				if !ok {
					t.Fatalf("Resolve(%q) = Ambiguous(%d), want %v", tc.term, len(r.Candidates), tc.want)
				}
				if len(r.Candidates) != want {
					t.Errorf("Resolve(%q) has %d candidates, want %d", tc.term, len(r.Candidates), want)
				}
			case NotFound:
				if tc.want != nil {
					t.Errorf("Resolve(%q) = NotFound, want %v", tc.term, tc.want)
				}
			}
		})
	}
}

func TestCatalogAdd(t *testing.T) {
	c := testCatalog()
	p, err := c.Add(AddProductInput{Name: "Poodle", Price: "450.5", Stock: "4"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.ID != "4" {
		t.Errorf("new id = %s, want 4", p.ID)
	}
	if got := p.Price.String(); got != "450.50" {
		t.Errorf("price = %s, want 450.50", got)
	}
	if p.Stock != 4 {
		t.Errorf("stock = %d, want 4", p.Stock)
	}
	if c.Len() != 4 {
		t.Errorf("catalog length = %d, want 4", c.Len())
	}
}

func TestCatalogAddAssignsAboveHighestID(t *testing.T) {
	c := NewCatalog(
		Product{ID: "9", Name: "Corgi", Price: M(200), Stock: 1},
		Product{ID: "10", Name: "Husky", Price: M(220), Stock: 1},
	)
	p, err := c.Add(AddProductInput{Name: "Shiba", Price: "300", Stock: "2"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.ID != "11" {
		t.Errorf("new id = %s, want 11 (numeric max, not lexical)", p.ID)
	}
}

func TestCatalogAddValidation(t *testing.T) {
	testCases := []struct {
		name string
		in   AddProductInput
	}{
		{name: "empty name", in: AddProductInput{Name: "", Price: "10", Stock: "1"}},
		{name: "negative price", in: AddProductInput{Name: "Pug", Price: "-1", Stock: "1"}},
		{name: "non numeric price", in: AddProductInput{Name: "Pug", Price: "ten", Stock: "1"}},
		{name: "negative stock", in: AddProductInput{Name: "Pug", Price: "10", Stock: "-1"}},
		{name: "non numeric stock", in: AddProductInput{Name: "Pug", Price: "10", Stock: "many"}},
		{name: "fractional stock", in: AddProductInput{Name: "Pug", Price: "10", Stock: "1.5"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := testCatalog()
			if _, err := c.Add(tc.in); !IsValidation(err) {
				t.Errorf("Add(%+v) error = %v, want a ValidationError", tc.in, err)
			}
			if c.Len() != 3 {
				t.Errorf("catalog length changed to %d on failed add", c.Len())
			}
		})
	}
}

func TestCatalogAddOnEmptyCatalog(t *testing.T) {
	c := NewCatalog()
	_, err := c.Add(AddProductInput{Name: "Pug", Price: "10", Stock: "1"})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Add on empty catalog error = %v, want ErrEmptyCatalog", err)
	}
	if c.Len() != 0 {
		t.Errorf("catalog length = %d, want 0", c.Len())
	}
}

func TestCatalogModify(t *testing.T) {
	t.Run("price only", func(t *testing.T) {
		c := testCatalog()
		p, err := c.Modify("1", ModifyProductInput{Price: "120.5"})
		if err != nil {
			t.Fatalf("Modify: %v", err)
		}
		if got := p.Price.String(); got != "120.50" {
			t.Errorf("price = %s, want 120.50", got)
		}
		if p.Stock != 5 {
			t.Errorf("stock = %d, want unchanged 5", p.Stock)
		}
	})
	t.Run("stock only", func(t *testing.T) {
		c := testCatalog()
		p, err := c.Modify("1", ModifyProductInput{Stock: "9"})
		if err != nil {
			t.Fatalf("Modify: %v", err)
		}
		if p.Stock != 9 {
			t.Errorf("stock = %d, want 9", p.Stock)
		}
		if got := p.Price.String(); got != "100.00" {
			t.Errorf("price = %s, want unchanged 100.00", got)
		}
	})
	t.Run("both blank keeps everything", func(t *testing.T) {
		c := testCatalog()
		p, err := c.Modify("1", ModifyProductInput{})
		if err != nil {
			t.Fatalf("Modify: %v", err)
		}
		if p.Stock != 5 || p.Price.String() != "100.00" {
			t.Errorf("product changed: %+v", p)
		}
	})
	t.Run("unknown id", func(t *testing.T) {
		c := testCatalog()
		_, err := c.Modify("42", ModifyProductInput{Price: "10"})
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Modify unknown id error = %v, want NotFoundError", err)
		}
	})
}

func TestCatalogModifyFailureLeavesProductUntouched(t *testing.T) {
	// Valid price together with an invalid stock must not apply the price.
	c := testCatalog()
	_, err := c.Modify("1", ModifyProductInput{Price: "999", Stock: "lots"})
	if !IsValidation(err) {
		t.Fatalf("Modify error = %v, want a ValidationError", err)
	}
	p, _ := c.Get("1")
	if got := p.Price.String(); got != "100.00" {
		t.Errorf("price mutated to %s on failed modify", got)
	}
	if p.Stock != 5 {
		t.Errorf("stock mutated to %d on failed modify", p.Stock)
	}
}

func TestCatalogNameOf(t *testing.T) {
	c := testCatalog()
	if got := c.NameOf("1"); got != "Beagle" {
		t.Errorf("NameOf(1) = %s, want Beagle", got)
	}
	if got := c.NameOf("404"); got != UnknownProduct {
		t.Errorf("NameOf(404) = %s, want %s", got, UnknownProduct)
	}
}
