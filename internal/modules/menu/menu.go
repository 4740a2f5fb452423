// Package menu runs the numbered text menu over the catalog.
//
// Each round prints the choices, reads one number and, for the category and
// season choices, a filter value and a sort sub-choice. The selection is run
// through catalog.FilterAndSort once and the result is printed either one
// product per line or as a fixed-width table.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/georgemunganga/printa-closet/internal/modules/catalog"
)

// Source supplies the catalog snapshot for each round.
type Source interface {
	Current() *catalog.Catalog
}

// Options control how results are printed.
type Options struct {
	Table bool
}

type Menu struct {
	source Source
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
}

func New(source Source, in io.Reader, out io.Writer, opts Options) *Menu {
	return &Menu{source: source, in: bufio.NewScanner(in), out: out, opts: opts}
}

const (
	choiceExit = iota
	choiceNameAsc
	choiceNameDesc
	choiceCategory
	choiceSeason
	choicePriceAsc
	choicePriceDesc
)

var mainChoices = []string{
	choiceNameAsc:   "Name, ascending",
	choiceNameDesc:  "Name, descending",
	choiceCategory:  "Choose by category",
	choiceSeason:    "Choose by season",
	choicePriceAsc:  "Price, ascending",
	choicePriceDesc: "Price, descending",
}

var subSortKeys = []catalog.SortKey{
	0: catalog.SortNone,
	1: catalog.SortNameAsc,
	2: catalog.SortNameDesc,
	3: catalog.SortPriceAsc,
	4: catalog.SortPriceDesc,
}

var errInputClosed = errors.New("input closed")

// Run loops until the user picks 0, the input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printChoices()
		choice, err := m.readNumber("Choice: ")
		if errors.Is(err, errInputClosed) {
			return m.in.Err()
		}
		if err != nil {
			fmt.Fprintln(m.out, err)
			continue
		}
		if choice == choiceExit {
			return nil
		}

		c := m.source.Current()
		if c == nil {
			return catalog.ErrCatalogNotLoaded
		}

		spec, key, err := m.selection(choice, c)
		if errors.Is(err, errInputClosed) {
			return m.in.Err()
		}
		if err != nil {
			fmt.Fprintln(m.out, err)
			continue
		}

		products := c.Query(spec, key)
		fmt.Fprintln(m.out, "Products:")
		if m.opts.Table {
			err = WriteTable(m.out, products)
		} else {
			err = WriteLines(m.out, products)
		}
		if err != nil {
			return fmt.Errorf("write products: %w", err)
		}
	}
}

func (m *Menu) printChoices() {
	fmt.Fprintln(m.out, "Choose how to list the products:")
	for i := choiceNameAsc; i < len(mainChoices); i++ {
		fmt.Fprintf(m.out, "%d. %s\n", i, mainChoices[i])
	}
	fmt.Fprintf(m.out, "%d. Exit\n", choiceExit)
}

func (m *Menu) selection(choice int, c *catalog.Catalog) (catalog.FilterSpec, catalog.SortKey, error) {
	var none catalog.FilterSpec
	switch choice {
	case choiceNameAsc:
		return none, catalog.SortNameAsc, nil
	case choiceNameDesc:
		return none, catalog.SortNameDesc, nil
	case choicePriceAsc:
		return none, catalog.SortPriceAsc, nil
	case choicePriceDesc:
		return none, catalog.SortPriceDesc, nil
	case choiceCategory:
		return m.filtered(catalog.FilterCategory, categories(c))
	case choiceSeason:
		return m.filtered(catalog.FilterSeason, seasons(c))
	default:
		return none, catalog.SortNone, fmt.Errorf("unknown choice %d", choice)
	}
}

func (m *Menu) filtered(dim catalog.FilterDimension, known []string) (catalog.FilterSpec, catalog.SortKey, error) {
	prompt := fmt.Sprintf("Choose a %s (%s): ", dim, strings.Join(known, ", "))
	value, err := m.readLine(prompt)
	if err != nil {
		return catalog.FilterSpec{}, catalog.SortNone, err
	}
	spec := catalog.FilterSpec{Dimension: dim, Value: value}

	for {
		line, err := m.readLine("Sort by 1. name asc 2. name desc 3. price asc 4. price desc 0. none [1]: ")
		if err != nil {
			return catalog.FilterSpec{}, catalog.SortNone, err
		}
		if line == "" {
			return spec, catalog.SortNameAsc, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a number\n", line)
			continue
		}
		if n < 0 || n >= len(subSortKeys) {
			return spec, catalog.SortNone, nil
		}
		return spec, subSortKeys[n], nil
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) readNumber(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", line)
	}
	return n, nil
}

func categories(c *catalog.Catalog) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range c.Products() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func seasons(c *catalog.Catalog) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range c.Products() {
		for _, s := range p.Seasons {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
