package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads catalog rows from a CSV export. Expected headers:
// name, description, price_cents, image_url, inventory.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and inserts one product per row, returning the number of
// products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if p == nil {
			continue
		}

		if _, err := i.productRepo.Insert(ctx, *p); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := strings.TrimSpace(pick(record, index, "name"))
	if name == "" {
		return nil, nil
	}

	centStr := pick(record, index, "price_cents")
	cents, err := strconv.ParseInt(centStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price_cents %q for product %q", centStr, name)
	}
	if cents < 0 {
		return nil, fmt.Errorf("negative price_cents for product %q", name)
	}

	inventory := 0
	if invStr := pick(record, index, "inventory"); invStr != "" {
		inventory, err = strconv.Atoi(invStr)
		if err != nil {
			return nil, fmt.Errorf("invalid inventory %q for product %q", invStr, name)
		}
	}

	return &domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		PriceCents:  cents,
		ImageURL:    pick(record, index, "image_url"),
		Inventory:   inventory,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
