package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()

	if len(c.Rooms) != 6 {
		t.Errorf("expected 6 rooms, got %d", len(c.Rooms))
	}
	if len(c.Designs) != 3 {
		t.Errorf("expected 3 designs, got %d", len(c.Designs))
	}
	if len(c.Items) != 8 {
		t.Errorf("expected 8 BOQ items, got %d", len(c.Items))
	}
	if c.SiteName != "Interior Synergy" {
		t.Errorf("site name = %q", c.SiteName)
	}
}

func TestDefault_BOQInvariant(t *testing.T) {
	c := Default()

	sum := 0
	for _, it := range c.BOQ() {
		if it.TotalPrice != it.Quantity*it.UnitPrice {
			t.Errorf("%s: total %d != %d x %d", it.Item, it.TotalPrice, it.Quantity, it.UnitPrice)
		}
		sum += it.TotalPrice
	}
	if sum != 3900 {
		t.Errorf("BOQ sum = %d, want 3900", sum)
	}
}

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	tests := []struct {
		id   string
		name string
	}{
		{"living-room", "Living Room"},
		{"bedroom", "Bedroom"},
		{"kitchen", "Kitchen"},
		{"dining-room", "Dining Room"},
		{"home-office", "Home Office"},
		{"bathroom", "Bathroom"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, ok := c.RoomByID(tt.id)
			if !ok {
				t.Fatalf("room %q not found", tt.id)
			}
			if r.Name != tt.name {
				t.Errorf("name = %q, want %q", r.Name, tt.name)
			}
		})
	}

	if _, ok := c.RoomByID("garage"); ok {
		t.Error("expected garage to be unknown")
	}

	d, ok := c.DesignByID("design2")
	if !ok {
		t.Fatal("design2 not found")
	}
	if d.Title != "Scandinavian Comfort" || d.Price != 7200 {
		t.Errorf("design2 = %+v", d)
	}
	if strings.Join(d.Tags, ", ") != "Scandinavian, Cozy" {
		t.Errorf("design2 tags = %v", d.Tags)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Default()

	items := c.BOQ()
	items[0].Quantity = 99
	if c.BOQ()[0].Quantity == 99 {
		t.Error("BOQ() exposed the underlying slice")
	}

	designs := c.DesignList()
	designs[0].Tags[0] = "Changed"
	if c.DesignList()[0].Tags[0] == "Changed" {
		t.Error("DesignList() shares tag slices with the catalog")
	}

	rooms := c.RoomList()
	rooms[0].Name = "Changed"
	if c.RoomList()[0].Name == "Changed" {
		t.Error("RoomList() exposed the underlying slice")
	}
}

func TestDefault_FurnitureDetails(t *testing.T) {
	c := Default()

	for _, it := range c.BOQ() {
		fd, ok := c.Detail(it.Item)
		if !ok {
			t.Errorf("%s: no furniture details", it.Item)
			continue
		}
		if fd.Category == "" || fd.Description == "" {
			t.Errorf("%s: incomplete details %+v", it.Item, fd)
		}
	}

	sofa, _ := c.Detail("Sofa")
	if sofa.Category != "Seating" || sofa.LeadTime != "3-4 weeks" {
		t.Errorf("sofa details = %+v", sofa)
	}
	if _, ok := c.Detail("Piano"); ok {
		t.Error("unexpected details for an unknown item")
	}
}

func TestFurnitureDetail_LeadTimeWeeks(t *testing.T) {
	tests := []struct {
		in     string
		lo, hi int
		ok     bool
	}{
		{"3-4 weeks", 3, 4, true},
		{"2 weeks", 2, 2, true},
		{"1 week", 1, 1, true},
		{"", 0, 0, false},
		{"soon", 0, 0, false},
		{"4-3 weeks", 0, 0, false},
		{"0 weeks", 0, 0, false},
		{"2-3 days", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lo, hi, ok := FurnitureDetail{LeadTime: tt.in}.LeadTimeWeeks()
			if lo != tt.lo || hi != tt.hi || ok != tt.ok {
				t.Errorf("LeadTimeWeeks(%q) = %d, %d, %v, want %d, %d, %v", tt.in, lo, hi, ok, tt.lo, tt.hi, tt.ok)
			}
		})
	}
}

func TestLoad_RejectsBrokenDocuments(t *testing.T) {
	base := `
site_name: Test
rooms:
  - {id: a, name: A}
designs:
  - {id: d, title: D, price: 10}
boq:
  - {item: Chair, quantity: 2, unit_price: 5, total_price: 10}
furniture:
  Chair: {category: Seating, lead_time: 1-2 weeks}
preferences:
  styles: [Modern]
  budget_min: 1
  budget_max: 10
  budget_default: 5
`
	if _, err := Load(strings.NewReader(base)); err != nil {
		t.Fatalf("base document should load: %v", err)
	}

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{"bad total", "total_price: 10", "total_price: 11", "total 11 != 2 x 5"},
		{"duplicate room", "- {id: a, name: A}", "- {id: a, name: A}\n  - {id: a, name: B}", "duplicate id"},
		{"missing title", "title: D", "title: ''", "missing title"},
		{"inverted budget", "budget_max: 10", "budget_max: 0", "inverted"},
		{"default outside range", "budget_default: 5", "budget_default: 50", "outside"},
		{"sheet-breaking title", "title: D", "title: 'Modern: Elegance'", "may not contain"},
		{"furniture for unknown item", "Chair: {", "Stool: {", `furniture "Stool": no such boq item`},
		{"bad lead time", "lead_time: 1-2 weeks", "lead_time: soon", `lead time "soon"`},
		{"unknown field", "site_name: Test", "site_name: Test\nextra: 1", "parse catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(base, tt.from, tt.to, 1)
			_, err := Load(strings.NewReader(doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, defaultDocument, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(c.Rooms) != 6 {
		t.Errorf("expected 6 rooms, got %d", len(c.Rooms))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBOQItemCheck(t *testing.T) {
	tests := []struct {
		name    string
		item    BOQItem
		wantErr bool
	}{
		{"valid", BOQItem{"Sofa", 1, 1200, 1200}, false},
		{"zero quantity", BOQItem{"Sofa", 0, 1200, 0}, false},
		{"wrong total", BOQItem{"Sofa", 2, 1200, 1200}, true},
		{"negative price", BOQItem{"Sofa", 1, -5, -5}, true},
		{"blank name", BOQItem{" ", 1, 1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Check()
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
