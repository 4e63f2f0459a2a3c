package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"adinvoice/internal/amount"
	"adinvoice/internal/domain"
	"adinvoice/internal/form"
	"adinvoice/internal/gst"
	"adinvoice/internal/service"
	"adinvoice/internal/validator"
)

var formFlag = &cli.StringFlag{
	Name:     "form",
	Aliases:  []string{"f"},
	Usage:    "invoice form file (.yaml, .yml or .json)",
	Required: true,
}

func (a *app) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the invoice as PDF, XLSX and/or CSV",
		Flags: []cli.Flag{
			formFlag,
			&cli.StringFlag{
				Name:  "format",
				Value: "pdf",
				Usage: "pdf, xlsx, csv, both (pdf+xlsx) or all",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (defaults to invoice.output_dir)",
			},
		},
		Action: func(c *cli.Context) error {
			formats, err := parseFormats(c.String("format"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			state, err := form.Load(c.String("form"), form.DefaultsFromConfig(a.cfg))
			if err != nil {
				return err
			}
			svc, err := a.newExportService(c.Context)
			if err != nil {
				return err
			}

			dir := c.String("out")
			if dir == "" {
				dir = a.cfg.Invoice.OutputDir
			}
			for _, format := range formats {
				out, err := svc.Export(c.Context, state, format)
				if err != nil {
					return err
				}
				path, err := save(dir, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, path)
			}
			return nil
		},
	}
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "run the export checks and print every failing field",
		Flags: []cli.Flag{formFlag},
		Action: func(c *cli.Context) error {
			state, err := form.Load(c.String("form"), form.DefaultsFromConfig(a.cfg))
			if err != nil {
				return err
			}
			svc, err := a.newExportService(c.Context)
			if err != nil {
				return err
			}

			inv, report := svc.Check(c.Context, state)
			printSummary(c.App.Writer, inv)
			fields := validator.ComputeFieldStatuses(report.Results)
			for _, path := range validator.FieldPaths(fields) {
				fs := fields[path]
				if fs.Status == domain.ValidationStatusValid {
					continue
				}
				fmt.Fprintf(c.App.Writer, "%-8s %-20s %s\n", fs.Status, path, strings.Join(fs.Messages, "; "))
			}
			fmt.Fprintf(c.App.Writer, "status: %s (%d passed, %d errors, %d warnings)\n",
				report.Status, report.Passed, report.Errors, report.Warnings)

			if report.Status == domain.ValidationStatusInvalid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func gstinCommand() *cli.Command {
	return &cli.Command{
		Name:      "gstin",
		Usage:     "show the state encoded in a GSTIN",
		ArgsUsage: "<GSTIN>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one GSTIN", 2)
			}
			in := strings.ToUpper(strings.TrimSpace(c.Args().First()))
			info, ok := gst.StateFromGSTIN(in)
			if !ok {
				return cli.Exit(fmt.Sprintf("%s: unknown state code", in), 1)
			}
			fmt.Fprintf(c.App.Writer, "state: %s (%s)\n", info.Name, info.Code)
			if pan := gst.PANFromGSTIN(in); pan != "" {
				fmt.Fprintf(c.App.Writer, "pan:   %s\n", pan)
			}
			if !gst.ValidGSTIN(in) {
				fmt.Fprintln(c.App.Writer, "warning: not a well-formed 15-character GSTIN")
			}
			return nil
		},
	}
}

func wordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "spell an amount in Indian rupee words",
		ArgsUsage: "<amount>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one amount", 2)
			}
			d, ok := amount.Parse(c.Args().First())
			if !ok {
				return cli.Exit(fmt.Sprintf("%q is not an amount", c.Args().First()), 2)
			}
			n := d.Round(0).IntPart()
			fmt.Fprintf(c.App.Writer, "₹ %s\n%s\n", amount.Group(n), amount.NumberToWords(n))
			return nil
		},
	}
}

// parseFormats expands the --format value into the exports to produce.
func parseFormats(s string) ([]domain.ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both":
		return []domain.ExportFormat{domain.ExportFormatPDF, domain.ExportFormatXLSX}, nil
	case "all":
		return []domain.ExportFormat{domain.ExportFormatPDF, domain.ExportFormatXLSX, domain.ExportFormatCSV}, nil
	}
	f, err := domain.ParseExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, s)
	}
	return []domain.ExportFormat{f}, nil
}

// save writes out into dir, creating it if needed, and returns the file path.
func save(dir string, out *service.Output) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, out.Filename)
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func printSummary(w io.Writer, inv *domain.Invoice) {
	fmt.Fprintf(w, "invoice %s dated %s for %s\n", inv.InvoiceNumber, inv.InvoiceDate, inv.Party.Name)
	fmt.Fprintf(w, "items: %d  subtotal: %s  tax: %s  grand total: %s\n",
		len(inv.Items), amount.Group(inv.Subtotal), amount.Group(inv.TotalTax()), amount.Group(inv.GrandTotal))
	fmt.Fprintln(w, inv.TotalInWords)
}
