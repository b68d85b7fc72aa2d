package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/services"
)

// newCatalogCommand validates the catalog selected by --catalog and prints
// what the site will offer.
func newCatalogCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:          "catalog",
		Short:        "Validate the room and design catalog and print a summary",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(*path)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), c)
		},
	}
}

func printCatalog(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n\n", c.SiteName)

	fmt.Fprintf(tw, "Rooms (%d)\n", len(c.Rooms))
	for _, r := range c.RoomList() {
		fmt.Fprintf(tw, "  %s\t%s\n", r.ID, r.Name)
	}

	fmt.Fprintf(tw, "\nDesigns (%d)\n", len(c.Designs))
	for _, d := range c.DesignList() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", d.ID, d.Title, services.FormatPrice(d.Price), strings.Join(d.Tags, ", "))
	}

	items := c.BOQ()
	fmt.Fprintf(tw, "\nBill of quantities (%d items)\n", len(items))
	for _, it := range items {
		fmt.Fprintf(tw, "  %s\t%d x %s\t%s\n", it.Item, it.Quantity, services.FormatPrice(it.UnitPrice), services.FormatPrice(it.TotalPrice))
	}
	fmt.Fprintf(tw, "  Total\t\t%s\n", services.FormatPrice(services.BOQTotal(items)))

	return tw.Flush()
}
