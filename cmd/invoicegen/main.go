package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"adinvoice/internal/assets"
	"adinvoice/internal/config"
	"adinvoice/internal/layout"
	"adinvoice/internal/logger"
	"adinvoice/internal/pdfexport"
	"adinvoice/internal/port"
	"adinvoice/internal/service"
	"adinvoice/internal/storage/local"
	s3storage "adinvoice/internal/storage/s3"
	"adinvoice/internal/validator"
	"adinvoice/internal/xlsxexport"
)

func main() {
	if err := run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// app carries what every command needs once the config has been loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func run(args []string) error {
	a := &app{}

	cliApp := &cli.App{
		Name:  "invoicegen",
		Usage: "build GST invoices for outdoor advertising campaigns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML/JSON/TOML config file",
				EnvVars: []string{"ADINVOICE_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			a.logger = logger.New(cfg.Log)
			slog.SetDefault(a.logger)
			return nil
		},
		Commands: []*cli.Command{
			a.exportCommand(),
			a.validateCommand(),
			gstinCommand(),
			wordsCommand(),
		},
	}
	return cliApp.Run(args)
}

// newAssetSource picks the configured header/footer art location.
func newAssetSource(ctx context.Context, cfg *config.Config) (port.AssetSource, error) {
	switch cfg.Assets.Source {
	case config.AssetSourceS3:
		src, err := s3storage.NewS3Source(ctx, &cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 asset source: %w", err)
		}
		return src, nil
	default:
		return local.NewDirSource(cfg.Assets.Dir), nil
	}
}

// newExportService wires the export pipeline.
func (a *app) newExportService(ctx context.Context) (service.ExportService, error) {
	source, err := newAssetSource(ctx, a.cfg)
	if err != nil {
		return nil, err
	}

	checks := validator.NewEngine(validator.NewBuiltinRegistry(), a.logger)
	resolver := assets.NewResolver(source, a.cfg.Assets, a.cfg.Company, a.logger)
	layoutEngine := layout.NewEngine(pdfexport.NewMeasurer(), a.cfg.Company)

	return service.NewExportService(
		checks,
		resolver,
		layoutEngine,
		pdfexport.NewRenderer(a.logger),
		xlsxexport.NewWriter(),
		a.cfg.Company,
		a.logger,
	), nil
}
