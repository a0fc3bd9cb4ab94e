package main

import (
	"fmt"
	"os"

	"github.com/Aquilabot/KreaPC-Builder/internal/api"
	"github.com/Aquilabot/KreaPC-Builder/internal/builder"
	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
	"github.com/Aquilabot/KreaPC-Builder/internal/config"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/pkg/pcpartpicker_automation"
	"github.com/Aquilabot/KreaPC-Builder/pkg/scraper"
	"github.com/gofiber/fiber/v2/log"
	"github.com/urfave/cli/v2"
)

var buildFlags = []cli.Flag{
	&cli.StringFlag{Name: "chassis", Usage: "Chassis id"},
	&cli.StringFlag{Name: "cpu", Usage: "CPU id, ignored when the chassis bundles one"},
	&cli.StringFlag{Name: "ram", Usage: "RAM id, ignored when the chassis bundles RAM"},
	&cli.StringSliceFlag{Name: "disk", Usage: "Disk id to add, repeatable"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	log.SetLevel(cfg.Level())

	app := &cli.App{
		Name:  "minipc",
		Usage: "Configure a Mini PC from the component catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Catalog file or URL, bundled catalog when empty",
				Value:   cfg.Catalog,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "address",
						Aliases: []string{"a"},
						Usage:   "Server address",
						Value:   cfg.Address,
					},
				},
				Action: func(cliCtx *cli.Context) error {
					cat, err := openCatalog(cliCtx, cfg)
					if err != nil {
						return err
					}
					server := api.NewServer(cat, pcpartpicker_automation.Browser{}, cfg.Region)
					return server.App().Listen(cliCtx.String("address"))
				},
			},
			{
				Name:  "catalog",
				Usage: "List the parts of the catalog",
				Action: func(cliCtx *cli.Context) error {
					cat, err := openCatalog(cliCtx, cfg)
					if err != nil {
						return err
					}
					printCatalog(cat)
					return nil
				},
			},
			{
				Name:  "summary",
				Usage: "Print the summary of a build",
				Flags: buildFlags,
				Action: func(cliCtx *cli.Context) error {
					cat, err := openCatalog(cliCtx, cfg)
					if err != nil {
						return err
					}
					fmt.Print(builder.Summary(buildFromFlags(cliCtx, cat)))
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Create a PCPartPicker part list from a build",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "region", Usage: "PCPartPicker region", Value: cfg.Region},
				}, buildFlags...),
				Action: func(cliCtx *cli.Context) error {
					cat, err := openCatalog(cliCtx, cfg)
					if err != nil {
						return err
					}
					view := buildFromFlags(cliCtx, cat)
					export, err := pcpartpicker_automation.ProcessPartLinks(cliCtx.String("region"), view.PCPPLinks())
					if err != nil {
						return err
					}
					fmt.Println(export.URL)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openCatalog(cliCtx *cli.Context, cfg *config.Config) (*catalog.Catalog, error) {
	scrap := scraper.NewScraper()
	scrap.RandomizeUserAgent()
	scrap.UpdateHeaders("global", cfg.Headers)
	return catalog.Open(cliCtx.String("catalog"), &scrap)
}

// buildFromFlags replays the flags as the events a user would trigger.
func buildFromFlags(cliCtx *cli.Context, cat *catalog.Catalog) builder.View {
	session := builder.NewSession(cat)
	session.SelectChassis(cliCtx.String("chassis"))
	session.SelectCPU(cliCtx.String("cpu"))
	session.SelectRAM(cliCtx.String("ram"))
	for _, id := range cliCtx.StringSlice("disk") {
		session.AddDisk(id)
	}
	return session.View()
}

func printCatalog(cat *catalog.Catalog) {
	fmt.Println("Chassis:")
	for _, c := range cat.Chassis() {
		fmt.Printf("  %-28s %-48s %9s  disks: %d\n", c.ID, c.Name, c.Price, c.NumberOfDisks)
	}
	fmt.Println("CPU:")
	for _, c := range cat.SelectableCPUs() {
		fmt.Printf("  %-28s %-48s %9s  %d/%d\n", c.ID, c.Name, c.Price, c.Cores, c.Threads)
	}
	fmt.Println("RAM:")
	for _, r := range cat.RAM() {
		fmt.Printf("  %-28s %-48s %9s  %s GB @ %s MT/s\n", r.ID, r.Name, r.Price, models.FormatNumber(r.SizeGB), models.FormatNumber(r.Speed))
	}
	fmt.Println("Disk:")
	for _, d := range cat.Disks() {
		fmt.Printf("  %-28s %-48s %9s  %s %s\n", d.ID, d.Name, d.Price, models.SizeTB(d.SizeGB), d.Type)
	}
}
