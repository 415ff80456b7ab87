// Command orderpdf renders an order JSON file to a PDF or XLSX document
// without starting the server.
//
//	orderpdf [-variant form|table] [-format pdf|xlsx] [-logo logo.png] [-out file] order.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"pedido_venda/internal/config"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/domain/ledger"
	"pedido_venda/internal/infrastructure/assets"
	"pedido_venda/internal/infrastructure/pdf"
	"pedido_venda/internal/infrastructure/spreadsheet"
	"pedido_venda/internal/layout"
	"pedido_venda/internal/usecase"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

var errUsage = errors.New("usage: orderpdf [-variant form|table] [-format pdf|xlsx] [-logo file] [-out file] order.json")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[orderpdf] %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("orderpdf", flag.ContinueOnError)
	variantFlag := fs.String("variant", string(cfg.Variant), "layout variant: form or table")
	formatFlag := fs.String("format", string(entities.ExportFormatPDF), "output format: pdf or xlsx")
	logoFlag := fs.String("logo", cfg.LogoPath, "header logo (PNG or JPEG)")
	outFlag := fs.String("out", "", "output path (default Order_<salesperson>_<code>.<ext> in the current directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	variant, err := layout.ParseVariant(*variantFlag)
	if err != nil {
		return err
	}

	order, err := readOrder(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := usecase.ValidateRequired(order); err != nil {
		return fmt.Errorf("%w (salesperson and order_code are required)", err)
	}

	engine := layout.NewEngine(layout.Options{
		Variant: variant,
		Company: cfg.Company,
		Logo:    assets.LoadLogo(*logoFlag),
	})
	format := entities.ExportFormat(strings.ToLower(strings.TrimSpace(*formatFlag)))
	artifact, err := usecase.BuildArtifact(order, format, engine, pdf.NewWriter(), spreadsheet.NewWriter())
	if err != nil {
		return err
	}

	out := strings.TrimSpace(*outFlag)
	if out == "" {
		out = artifact.FileName
	}
	if err := os.WriteFile(out, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "%s (%d bytes)\n", filepath.Clean(out), len(artifact.Data))
	return nil
}

// readOrder loads an order file and normalizes it the way a session would:
// option defaults filled in, line totals recomputed.
func readOrder(path string) (entities.Order, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.Order{}, err
	}
	var order entities.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return entities.Order{}, fmt.Errorf("parse %s: %w", path, err)
	}
	order.ApplyDefaults()
	if field, ok := order.ValidateOptions(); !ok {
		return entities.Order{}, fmt.Errorf("%w: %s", usecase.ErrInvalidOption, field)
	}
	order.LineItems = ledger.FromItems(order.LineItems).Items()
	return order, nil
}
