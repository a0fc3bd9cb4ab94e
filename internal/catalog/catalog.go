package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
	"github.com/Aquilabot/KreaPC-Builder/pkg/scraper"
	"github.com/gofiber/fiber/v2/log"
)

const (
	errorDecodingCatalog = "could not decode catalog: %w"
	errorOpeningCatalog  = "could not open catalog %s: %w"
	logLoadedCatalog     = "Loaded catalog from %s"
)

//go:embed data/pc_components.json
var defaultCatalog []byte

// Catalog is the read-only set of parts a build is assembled from.
// It must not be modified after it has been loaded.
type Catalog struct {
	data models.Catalog
}

func New(data models.Catalog) *Catalog {
	return &Catalog{data: data}
}

func Load(r io.Reader) (*Catalog, error) {
	var data models.Catalog
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf(errorDecodingCatalog, err)
	}
	return New(data), nil
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errorOpeningCatalog, path, err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	cat, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(err)
	}
	return cat
}

// Open loads the catalog named by source: the bundled catalog when source is
// empty, a remote asset when it is an http(s) URL, a local file otherwise.
func Open(source string, scrap *scraper.Scraper) (*Catalog, error) {
	source = strings.TrimSpace(source)

	switch {
	case source == "":
		log.Info("Using bundled catalog")
		return Default(), nil
	case utils.MatchHTTPURL(source):
		data, err := scrap.FetchCatalog(source)
		if err != nil {
			return nil, fmt.Errorf(errorOpeningCatalog, source, err)
		}
		return New(*data), nil
	default:
		cat, err := LoadFile(source)
		if err != nil {
			return nil, err
		}
		log.Infof(logLoadedCatalog, source)
		return cat, nil
	}
}

// Data returns the underlying collections for serialisation.
func (c *Catalog) Data() models.Catalog {
	return c.data
}

func (c *Catalog) Chassis() []models.Chassis { return c.data.Chassis }
func (c *Catalog) CPUs() []models.CPU { return c.data.CPU }
func (c *Catalog) RAM() []models.RAM { return c.data.RAM }
func (c *Catalog) Disks() []models.Disk { return c.data.Disk }

func (c *Catalog) FindChassis(id string) (*models.Chassis, bool) {
	return findByID(c.data.Chassis, id, func(p models.Chassis) string { return p.ID })
}

func (c *Catalog) FindCPU(id string) (*models.CPU, bool) {
	return findByID(c.data.CPU, id, func(p models.CPU) string { return p.ID })
}

func (c *Catalog) FindRAM(id string) (*models.RAM, bool) {
	return findByID(c.data.RAM, id, func(p models.RAM) string { return p.ID })
}

func (c *Catalog) FindDisk(id string) (*models.Disk, bool) {
	return findByID(c.data.Disk, id, func(p models.Disk) string { return p.ID })
}

// FindCPUByName looks a CPU up by name, ignoring case. A chassis may bundle a
// CPU that is not listed, so a miss yields a stub carrying only the name.
func (c *Catalog) FindCPUByName(name string) models.CPU {
	for _, cpu := range c.data.CPU {
		if strings.EqualFold(cpu.Name, name) {
			return cpu
		}
	}
	return models.CPU{Name: name}
}

// SelectableCPUs returns the CPUs that can be bought on their own. CPUs with
// no price are only listed so chassis can reference them.
func (c *Catalog) SelectableCPUs() []models.CPU {
	var cpus []models.CPU
	for _, cpu := range c.data.CPU {
		if cpu.Price > 0 {
			cpus = append(cpus, cpu)
		}
	}
	return cpus
}

// findByID returns a copy of the first part whose id matches.
func findByID[T any](parts []T, id string, key func(T) string) (*T, bool) {
	if id == "" {
		return nil, false
	}
	for i := range parts {
		if key(parts[i]) == id {
			part := parts[i]
			return &part, true
		}
	}
	return nil, false
}
