package catalog

import "testing"

func TestListFilters(t *testing.T) {
	c := New(nil)

	all := c.List("", "")
	if len(all) != 5 {
		t.Fatalf("expected 5 hotels, got %d", len(all))
	}

	byArea := c.List("agra_fort", "")
	if len(byArea) != 2 {
		t.Fatalf("expected 2 hotels near agra_fort, got %d", len(byArea))
	}
	for _, h := range byArea {
		if h.Area != "agra_fort" {
			t.Fatalf("unexpected area %q", h.Area)
		}
	}

	byQuery := c.List("", "rooftop")
	if len(byQuery) != 1 || byQuery[0].ID != 2 {
		t.Fatalf("query match = %v", byQuery)
	}

	both := c.List("taj_mahal", "oberoi")
	if len(both) != 1 || both[0].Name != "The Oberoi Amarvilas" {
		t.Fatalf("combined filter = %v", both)
	}

	none := c.List("nowhere", "")
	if len(none) != 0 {
		t.Fatalf("expected no hotels, got %d", len(none))
	}
}

func TestGet(t *testing.T) {
	c := New(nil)

	h, ok := c.Get(5)
	if !ok || h.Name != "ITC Mughal" {
		t.Fatalf("Get(5) = %v, %v", h, ok)
	}

	if _, ok := c.Get(99); ok {
		t.Fatal("Get(99) should miss")
	}
}
