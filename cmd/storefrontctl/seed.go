package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	SKU         string `yaml:"sku"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Currency    string `yaml:"currency"`
	Amount      int64  `yaml:"amount"`
	Status      string `yaml:"status"`
}

type seedResult struct {
	Created   int
	Updated   int
	Unchanged int
}

func seedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Load products from a YAML catalog; existing SKUs get their status updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			svc, closeFn, err := e.services()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			res, err := seedCatalog(ctx, svc.Catalog, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d, updated %d, unchanged %d\n", res.Created, res.Updated, res.Unchanged)
			return nil
		},
	}
}

func seedCatalog(ctx context.Context, svc *catalogapp.Service, r io.Reader) (seedResult, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return seedResult{}, fmt.Errorf("parse catalog: %w", err)
	}

	var res seedResult
	for i, p := range file.Products {
		status := catalogdomain.ProductStatus(p.Status)
		if p.Status == "" {
			status = catalogdomain.ProductActive
		}

		existing, err := svc.GetProductBySKU(ctx, p.SKU)
		switch {
		case err == nil:
			if existing.Status == status {
				res.Unchanged++
				continue
			}
			if _, err := svc.SetStatus(ctx, existing.ID, status); err != nil {
				return res, fmt.Errorf("product %d (%s): %w", i, p.SKU, err)
			}
			res.Updated++
		case errors.Is(err, catalogapp.ErrNotFound):
			if _, err := svc.CreateProduct(ctx, catalogapp.CreateProductInput{
				SKU:         p.SKU,
				Name:        p.Name,
				Description: p.Description,
				Currency:    p.Currency,
				Amount:      p.Amount,
				Status:      status,
			}); err != nil {
				return res, fmt.Errorf("product %d (%s): %w", i, p.SKU, err)
			}
			res.Created++
		default:
			return res, fmt.Errorf("product %d (%s): %w", i, p.SKU, err)
		}
	}
	return res, nil
}
