package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stormwatch/internal/briefing"
	"stormwatch/internal/cache"
	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
	"stormwatch/internal/report"
	"stormwatch/internal/server"
	"stormwatch/internal/version"
)

func main() {
	app := &cli.Command{
		Name:  "stormwatch",
		Usage: "South Carolina winter-storm news monitoring",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to YAML config (defaults built in)"},
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:  "crawl",
				Usage: "Run one crawl and write the JSON and HTML artifacts",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "Output directory (default from config)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, logger, err := setup(c)
					if err != nil {
						return err
					}
					defer logger.Sync()

					res := crawl.New(cfg, logger).Run(ctx)

					dir := c.String("out")
					if dir == "" {
						dir = cfg.Output.Dir
					}
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create output dir: %w", err)
					}
					jsonPath, err := report.WriteJSON(dir, res)
					if err != nil {
						return err
					}
					htmlPath, err := report.WriteHTML(dir, res)
					if err != nil {
						return err
					}
					// the scheduler scrapes these two paths from stdout
					fmt.Println(jsonPath)
					fmt.Println(htmlPath)
					return nil
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the crawl over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, logger, err := setup(c)
					if err != nil {
						return err
					}
					defer logger.Sync()
					if addr := c.String("addr"); addr != "" {
						cfg.Server.Addr = addr
					}

					crawler := crawl.New(cfg, logger)
					respCache := cache.New(cfg.Redis, logger)
					defer respCache.Close()

					return server.New(cfg, crawler, respCache, logger).Run(ctx)
				},
			},
			{
				Name:  "pdf",
				Usage: "Run one crawl and write the briefing PDF",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Value: "news_briefing.pdf", Usage: "Output PDF path"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, logger, err := setup(c)
					if err != nil {
						return err
					}
					defer logger.Sync()

					res := crawl.New(cfg, logger).Run(ctx)
					pdf, err := briefing.Render(res, cfg.Categories, cfg.Output.DRNumber)
					if err != nil {
						return err
					}
					path := c.String("out")
					if err := os.WriteFile(path, pdf, 0o644); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
					fmt.Println(path)
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Println(version.GetVersion())
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads config and builds the logger shared by every command.
func setup(c *cli.Command) (config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, nil, err
	}
	var zl *zap.Logger
	if c.Bool("verbose") {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, zl.Sugar(), nil
}
