package menu

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/georgemunganga/printa-closet/internal/modules/catalog"
)

// WriteLines prints one product per line.
func WriteLines(w io.Writer, products []catalog.Product) error {
	for _, p := range products {
		_, err := fmt.Fprintf(w, "#%d %s price=%s category=%s season=%s\n",
			p.ID, p.Name, p.Price, p.Category, strings.Join(p.Seasons, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTable prints products as left-aligned columns.
func WriteTable(w io.Writer, products []catalog.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSEASON")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Price, p.Category, strings.Join(p.Seasons, ","))
	}
	return tw.Flush()
}
