package scraper

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
	"github.com/gofiber/fiber/v2/log"
)

const (
	errorInvalidCatalogURL = "invalid catalog URL"
	errorDecodingCatalog   = "could not decode catalog from %s: %w"
	logFetchingCatalog     = "Fetching catalog from %s"
	logFetchedCatalog      = "Fetched catalog: %d chassis, %d cpu, %d ram, %d disk"
)

type Scraper struct {
	Collector *colly.Collector
	Headers   map[string]map[string]string

	randomUserAgent bool
}

// StatusError is returned when the catalog host answers with a non-2xx status.
type StatusError struct {
	URL    string
	Status int
}

func (s StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", s.Status, s.URL)
}

// NewScraper initializes a new instance of the Scraper type and returns it.
// It creates a new collector that allows revisiting the catalog URL
// and initializes an empty Headers map with the "global" site.
func NewScraper() Scraper {
	col := colly.NewCollector()
	col.Async = true
	col.AllowURLRevisit = true

	s := Scraper{
		Collector: col,
	}
	s.Headers = map[string]map[string]string{
		"global": {},
	}

	return s
}

// UpdateHeaders replaces the headers sent to the given site.
// Headers of the "global" site are sent with every request.
func (scrap *Scraper) UpdateHeaders(site string, newHeaders map[string]string) {
	headers := make(map[string]string, len(newHeaders))
	for k, v := range newHeaders {
		headers[k] = v
	}
	scrap.Headers[site] = headers
}

func (scrap *Scraper) RandomizeUserAgent() {
	scrap.randomUserAgent = true
}

// collector returns a fresh clone of the base collector with the header and
// user agent callbacks attached, so callbacks never pile up across fetches.
func (scrap *Scraper) collector() *colly.Collector {
	col := scrap.Collector.Clone()

	if scrap.randomUserAgent {
		extensions.RandomUserAgent(col)
		col.OnRequest(func(r *colly.Request) {
			log.Info("User-Agent:", r.Headers.Get("User-Agent"))
		})
	}

	col.OnRequest(func(r *colly.Request) {
		headers := map[string]string{}
		for k, v := range scrap.Headers["global"] {
			headers[k] = v
		}
		for k, v := range scrap.Headers[r.URL.Hostname()] {
			headers[k] = v
		}

		for k, v := range headers {
			if len(k) > 0 && len(v) > 0 {
				r.Headers.Set(k, v)
			}
		}
	})

	return col
}

// FetchCatalog downloads the catalog asset published by the hosting site.
// It returns a pointer to models.Catalog and an error.
// If the URL is not an http(s) URL, it returns an error.
func (scrap *Scraper) FetchCatalog(URL string) (*models.Catalog, error) {
	if !utils.MatchHTTPURL(URL) {
		return nil, errors.New(errorInvalidCatalogURL)
	}

	log.Infof(logFetchingCatalog, URL)

	var (
		catalog   models.Catalog
		decodeErr error
		fetchErr  error
	)

	col := scrap.collector()
	col.OnResponse(func(r *colly.Response) {
		if err := json.Unmarshal(r.Body, &catalog); err != nil {
			decodeErr = fmt.Errorf(errorDecodingCatalog, r.Request.URL, err)
		}
	})
	col.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = StatusError{URL: r.Request.URL.String(), Status: r.StatusCode}
			return
		}
		fetchErr = err
	})

	err := col.Visit(URL)
	col.Wait()

	if err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	if decodeErr != nil {
		return nil, decodeErr
	}

	log.Infof(logFetchedCatalog, len(catalog.Chassis), len(catalog.CPU), len(catalog.RAM), len(catalog.Disk))

	return &catalog, nil
}
