package handlers

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/flow"
	"github.com/BadSquidward/roomlab/services"
	"github.com/BadSquidward/roomlab/templates"
)

// exportFormats are the BOQ downloads in display order.
var exportFormats = []struct {
	Ext   string
	Label string
}{
	{"csv", "Download CSV"},
	{"xlsx", "Download Excel"},
	{"pdf", "Download PDF"},
}

// navSlug maps a page to the nav bar entry it belongs to.
func navSlug(p flow.Page) string {
	switch p {
	case flow.PageHome:
		return "home"
	case flow.PagePortfolio:
		return "portfolio"
	case flow.PageContact:
		return "contact"
	default:
		return "design"
	}
}

func layoutData(d *Deps, p flow.Page) templates.LayoutData {
	return templates.LayoutData{
		SiteName:  d.Catalog.SiteName,
		Footer:    d.Catalog.Footer,
		ActiveNav: navSlug(p),
	}
}

// screenContent picks the component for the current screen.
func screenContent(d *Deps, s flow.Screen) templ.Component {
	switch s := s.(type) {
	case flow.RoomSelection:
		return templates.RoomSelectionContent(roomSelectionData(d.Catalog))
	case flow.DesignGeneration:
		prefs := s.Preferences
		if prefs.IsZero() {
			prefs = flow.DefaultPreferences(d.Catalog.Preferences)
		}
		return templates.DesignGenerationContent(designGenerationData(d.Catalog, s.Room, prefs, nil))
	case flow.DesignComparison:
		return templates.DesignComparisonContent(designComparisonData(s))
	case flow.BOQGeneration:
		return templates.BOQContent(boqData(d.Catalog, s))
	case flow.Portfolio:
		return templates.PortfolioContent()
	case flow.Contact:
		return templates.ContactContent()
	default:
		return templates.HomeContent()
	}
}

func roomSelectionData(c *catalog.Catalog) templates.RoomSelectionData {
	rooms := c.RoomList()
	cards := make([]templates.RoomCard, 0, len(rooms))
	for _, r := range rooms {
		cards = append(cards, templates.RoomCard{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			ImageURL:    r.ImageURL,
		})
	}
	return templates.RoomSelectionData{Rooms: cards}
}

func designGenerationData(c *catalog.Catalog, room catalog.Room, prefs flow.Preferences, errs map[string]string) templates.DesignGenerationData {
	opts := c.Preferences

	styles := make([]templates.Option, 0, len(opts.Styles))
	for _, s := range opts.Styles {
		styles = append(styles, templates.Option{Value: s, Selected: s == prefs.Style})
	}

	chosen := make(map[string]bool, len(prefs.Palettes))
	for _, p := range prefs.Palettes {
		chosen[p] = true
	}
	palettes := make([]templates.Option, 0, len(opts.Palettes))
	for _, p := range opts.Palettes {
		palettes = append(palettes, templates.Option{Value: p, Selected: chosen[p]})
	}

	budget := prefs.Budget
	if budget < opts.BudgetMin || budget > opts.BudgetMax {
		budget = opts.BudgetDefault
	}

	return templates.DesignGenerationData{
		RoomName:     room.Name,
		RoomImageURL: room.ImageURL,
		Form: templates.PreferenceForm{
			Styles:          styles,
			Palettes:        palettes,
			BudgetMin:       opts.BudgetMin,
			BudgetMax:       opts.BudgetMax,
			BudgetStep:      opts.BudgetStep,
			Budget:          budget,
			BudgetLabel:     services.FormatPrice(budget),
			Requirements:    prefs.Requirements,
			MaxRequirements: flow.MaxRequirementsLength,
			Errors:          errs,
		},
	}
}

func designComparisonData(s flow.DesignComparison) templates.DesignComparisonData {
	cards := make([]templates.DesignCard, 0, len(s.Designs))
	for _, d := range s.Designs {
		cards = append(cards, templates.DesignCard{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Tags:        strings.Join(d.Tags, ", "),
			Price:       services.FormatPrice(d.Price),
		})
	}

	summary := templates.PreferenceSummary{
		Style:        s.Preferences.Style,
		Palettes:     strings.Join(s.Preferences.Palettes, ", "),
		Requirements: s.Preferences.Requirements,
	}
	if s.Preferences.Budget > 0 {
		summary.Budget = services.FormatPrice(s.Preferences.Budget)
	}

	return templates.DesignComparisonData{
		RoomName:    s.Room.Name,
		Designs:     cards,
		Preferences: summary,
	}
}

func boqData(c *catalog.Catalog, s flow.BOQGeneration) templates.BOQData {
	rows := make([]templates.BOQRow, 0, len(s.Items))
	furniture := make([]templates.FurnitureCard, 0, len(s.Items))
	details := make([]catalog.FurnitureDetail, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, templates.BOQRow{
			Item:       it.Item,
			Quantity:   it.Quantity,
			UnitPrice:  services.FormatPrice(it.UnitPrice),
			TotalPrice: services.FormatPrice(it.TotalPrice),
		})
		fd, _ := c.Detail(it.Item)
		details = append(details, fd)
		furniture = append(furniture, templates.FurnitureCard{
			Item:        it.Item,
			Description: fd.Description,
			Category:    fd.Category,
			LeadTime:    fd.LeadTime,
			Quantity:    it.Quantity,
			UnitPrice:   services.FormatPrice(it.UnitPrice),
		})
	}

	exports := make([]templates.ExportLink, 0, len(exportFormats))
	for _, f := range exportFormats {
		exports = append(exports, templates.ExportLink{
			Label:    f.Label,
			URL:      "/boq/export/" + f.Ext,
			FileName: services.BOQFileName(s.Room.Name, f.Ext),
		})
	}

	total := services.FormatPrice(services.BOQTotal(s.Items))
	return templates.BOQData{
		RoomName:       s.Room.Name,
		DesignTitle:    s.Design.Title,
		DesignImageURL: s.Design.ImageURL,
		Overview: templates.DesignOverview{
			Description:     s.Design.Description,
			Style:           strings.Join(s.Design.Tags, ", "),
			Pieces:          len(s.Items),
			EstimatedCost:   total,
			AverageLeadTime: services.AverageLeadTime(details),
		},
		Furniture: furniture,
		Rows:      rows,
		Total:     total,
		Exports:   exports,
	}
}
