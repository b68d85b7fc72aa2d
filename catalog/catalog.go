// Package catalog holds the static reference data of the design flow: the
// room list, the design options, the bill of quantities and the options of
// the preference form.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

// sheetNameForbidden are the characters a spreadsheet tab name cannot hold.
// Design titles name the worksheet of the Excel export.
const sheetNameForbidden = `:\/?*[]`

// Room is a space the user can choose to redesign.
type Room struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
}

// DesignOption is one design concept offered for a room.
type DesignOption struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"image_url"`
	Tags        []string `yaml:"tags"`
	Price       int      `yaml:"price"`
}

// BOQItem is a single line of a bill of quantities.
type BOQItem struct {
	Item       string `yaml:"item"`
	Quantity   int    `yaml:"quantity"`
	UnitPrice  int    `yaml:"unit_price"`
	TotalPrice int    `yaml:"total_price"`
}

// FurnitureDetail describes a BOQ item beyond its price line. Details are
// keyed by item name and are optional.
type FurnitureDetail struct {
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	LeadTime    string `yaml:"lead_time"`
}

// PreferenceOptions lists the choices offered by the design preference form.
type PreferenceOptions struct {
	Styles        []string `yaml:"styles"`
	Palettes      []string `yaml:"palettes"`
	BudgetMin     int      `yaml:"budget_min"`
	BudgetMax     int      `yaml:"budget_max"`
	BudgetDefault int      `yaml:"budget_default"`
	BudgetStep    int      `yaml:"budget_step"`
}

// Catalog is the full set of reference data. It is never mutated after Load.
type Catalog struct {
	SiteName    string                     `yaml:"site_name"`
	Footer      string                     `yaml:"footer"`
	Rooms       []Room                     `yaml:"rooms"`
	Designs     []DesignOption             `yaml:"designs"`
	Items       []BOQItem                  `yaml:"boq"`
	Furniture   map[string]FurnitureDetail `yaml:"furniture"`
	Preferences PreferenceOptions          `yaml:"preferences"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultDocument))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded document is invalid: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML catalog document and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the structural invariants of the catalog. All problems
// are reported together.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Rooms) == 0 {
		errs = append(errs, errors.New("no rooms"))
	}
	seen := make(map[string]bool)
	for i, r := range c.Rooms {
		switch {
		case strings.TrimSpace(r.ID) == "":
			errs = append(errs, fmt.Errorf("room %d: missing id", i+1))
		case seen[r.ID]:
			errs = append(errs, fmt.Errorf("room %d: duplicate id %q", i+1, r.ID))
		}
		seen[r.ID] = true
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("room %q: missing name", r.ID))
		}
	}

	if len(c.Designs) == 0 {
		errs = append(errs, errors.New("no design options"))
	}
	seen = make(map[string]bool)
	for i, d := range c.Designs {
		switch {
		case strings.TrimSpace(d.ID) == "":
			errs = append(errs, fmt.Errorf("design %d: missing id", i+1))
		case seen[d.ID]:
			errs = append(errs, fmt.Errorf("design %d: duplicate id %q", i+1, d.ID))
		}
		seen[d.ID] = true
		if strings.TrimSpace(d.Title) == "" {
			errs = append(errs, fmt.Errorf("design %q: missing title", d.ID))
		}
		if strings.ContainsAny(d.Title, sheetNameForbidden) {
			errs = append(errs, fmt.Errorf("design %q: title may not contain any of %s", d.ID, sheetNameForbidden))
		}
		if d.Price < 0 {
			errs = append(errs, fmt.Errorf("design %q: negative price", d.ID))
		}
	}

	if len(c.Items) == 0 {
		errs = append(errs, errors.New("no bill of quantities items"))
	}
	for i, it := range c.Items {
		if err := it.Check(); err != nil {
			errs = append(errs, fmt.Errorf("boq item %d: %w", i+1, err))
		}
	}

	items := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		items[it.Item] = true
	}
	for name, fd := range c.Furniture {
		if !items[name] {
			errs = append(errs, fmt.Errorf("furniture %q: no such boq item", name))
		}
		if fd.LeadTime != "" {
			if _, _, ok := fd.LeadTimeWeeks(); !ok {
				errs = append(errs, fmt.Errorf("furniture %q: lead time %q is not like \"2-3 weeks\"", name, fd.LeadTime))
			}
		}
	}

	p := c.Preferences
	if len(p.Styles) == 0 {
		errs = append(errs, errors.New("no preference styles"))
	}
	if p.BudgetMin > p.BudgetMax {
		errs = append(errs, fmt.Errorf("budget range %d..%d is inverted", p.BudgetMin, p.BudgetMax))
	} else if p.BudgetDefault < p.BudgetMin || p.BudgetDefault > p.BudgetMax {
		errs = append(errs, fmt.Errorf("budget default %d outside %d..%d", p.BudgetDefault, p.BudgetMin, p.BudgetMax))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// Check verifies that the line total equals quantity times unit price.
func (it BOQItem) Check() error {
	if strings.TrimSpace(it.Item) == "" {
		return errors.New("missing item name")
	}
	if it.Quantity < 0 || it.UnitPrice < 0 {
		return fmt.Errorf("%s: negative quantity or unit price", it.Item)
	}
	if it.TotalPrice != it.Quantity*it.UnitPrice {
		return fmt.Errorf("%s: total %d != %d x %d", it.Item, it.TotalPrice, it.Quantity, it.UnitPrice)
	}
	return nil
}

// LeadTimeWeeks parses "3-4 weeks", "2 weeks" or "1 week" into a range of
// whole weeks.
func (fd FurnitureDetail) LeadTimeWeeks() (lo, hi int, ok bool) {
	fields := strings.Fields(fd.LeadTime)
	if len(fields) != 2 || (fields[1] != "week" && fields[1] != "weeks") {
		return 0, 0, false
	}
	from, to, isRange := strings.Cut(fields[0], "-")
	lo, err := strconv.Atoi(from)
	if err != nil || lo <= 0 {
		return 0, 0, false
	}
	hi = lo
	if isRange {
		if hi, err = strconv.Atoi(to); err != nil || hi < lo {
			return 0, 0, false
		}
	}
	return lo, hi, true
}

// Detail returns the furniture details of a BOQ item, if any.
func (c *Catalog) Detail(item string) (FurnitureDetail, bool) {
	fd, ok := c.Furniture[item]
	return fd, ok
}

// RoomByID looks up a room.
func (c *Catalog) RoomByID(id string) (Room, bool) {
	for _, r := range c.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// DesignByID looks up a design option.
func (c *Catalog) DesignByID(id string) (DesignOption, bool) {
	for _, d := range c.Designs {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return DesignOption{}, false
}

// RoomList returns a copy of the rooms in display order.
func (c *Catalog) RoomList() []Room {
	return append([]Room(nil), c.Rooms...)
}

// DesignList returns a copy of the design options.
func (c *Catalog) DesignList() []DesignOption {
	out := make([]DesignOption, len(c.Designs))
	for i, d := range c.Designs {
		out[i] = d.clone()
	}
	return out
}

// BOQ returns a copy of the fixed bill of quantities.
func (c *Catalog) BOQ() []BOQItem {
	return append([]BOQItem(nil), c.Items...)
}

func (d DesignOption) clone() DesignOption {
	d.Tags = append([]string(nil), d.Tags...)
	return d
}
