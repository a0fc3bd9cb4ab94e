package pcpartpicker_automation

import (
	"errors"
	"fmt"

	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"github.com/playwright-community/playwright-go"
)

const (
	errorInvalidRegion          = "invalid region"
	errorNoProductLinks         = "build has no PCPartPicker product links"
	errorInitializingPlaywright = "could not start Playwright: %v"
	errorLaunchingBrowser       = "could not launch browser: %v"
	errorCreatingPage           = "could not create page: %v"
	errorNavigatingURL          = "could not navigate to %s: %v"
	logInitPlaywright           = "Initializing Playwright"
	logErrorCookies             = "Error handling cookies, but we continue: %v"
	logSkippedLinks             = "Skipping %d links that are not PCPartPicker products"
	logCleanupPlaywright        = "Cleaning up Playwright"
	logErrorCloseBrowser        = "Could not close browser: %v"
	logErrorStopPlaywright      = "Could not stop Playwright: %v"
)

var (
	ErrInvalidRegion  = errors.New(errorInvalidRegion)
	ErrNoProductLinks = errors.New(errorNoProductLinks)
)

// Export is a part list created on PCPartPicker from a build.
type Export struct {
	URL   string   `json:"url"`
	Parts []string `json:"parts"`
}

// Exporter turns the links of a build into a PCPartPicker part list.
type Exporter interface {
	Export(region string, links []string) (*Export, error)
}

// Browser drives a headless Chromium through PCPartPicker.
type Browser struct{}

func (Browser) Export(region string, links []string) (*Export, error) {
	return ProcessPartLinks(region, links)
}

// PrepareLinks validates the region and keeps the PCPartPicker product links.
func PrepareLinks(region string, links []string) (string, []string, error) {
	prefixURL := utils.BuildPrefixURL(region)
	if !utils.MatchPCPPURL(prefixURL) {
		return "", nil, ErrInvalidRegion
	}

	partLinks := utils.FilterProductURLs(links)
	if len(partLinks) == 0 {
		return "", nil, ErrNoProductLinks
	}
	if skipped := len(links) - len(partLinks); skipped > 0 {
		log.Infof(logSkippedLinks, skipped)
	}

	return prefixURL, partLinks, nil
}

func ProcessPartLinks(region string, links []string) (*Export, error) {
	prefixURL, partLinks, err := PrepareLinks(region, links)
	if err != nil {
		return nil, err
	}

	pw, browser, page, err := initializePlaywright()
	if err != nil {
		return nil, err
	}
	defer cleanup(pw, browser)

	if err := navigateTo(page, prefixURL); err != nil {
		return nil, err
	}

	if err := handleCookies(page); err != nil {
		log.Warnf(logErrorCookies, err)
	}

	if err := addPartsList(prefixURL, page, partLinks); err != nil {
		return nil, err
	}

	listURL, err := handleTextbox(page)
	if err != nil {
		return nil, err
	}

	return &Export{URL: listURL, Parts: partLinks}, nil
}

func initializePlaywright() (*playwright.Playwright, playwright.Browser, playwright.Page, error) {
	log.Info(logInitPlaywright)
	pw, err := playwright.Run()
	if err != nil {
		return nil, nil, nil, fmt.Errorf(errorInitializingPlaywright, err)
	}
	browser, err := pw.Chromium.Launch()
	if err != nil {
		return nil, nil, nil, fmt.Errorf(errorLaunchingBrowser, err)
	}
	page, err := browser.NewPage()
	if err != nil {
		return nil, nil, nil, fmt.Errorf(errorCreatingPage, err)
	}
	return pw, browser, page, nil
}

func navigateTo(page playwright.Page, url string) error {
	if _, err := page.Goto(url); err != nil {
		return fmt.Errorf(errorNavigatingURL, url, err)
	}
	return nil
}

func handleCookies(page playwright.Page) error {
	return page.GetByLabel("allow cookies").Click()
}

func addPart(prefixURL string, page playwright.Page, url string) error {
	if err := navigateTo(page, url); err != nil {
		return err
	}
	options := playwright.PageGetByRoleOptions{Name: "Add to Part List"}
	if err := page.GetByRole("link", options).Click(); err != nil {
		return fmt.Errorf("could not click 'Add to Part List': %v", err)
	}

	if err := page.WaitForURL(prefixURL + "list/"); err != nil {
		return fmt.Errorf("error waiting for redirection to the list: %v", err)
	}
	log.Info("Added to Part List: ", url)
	return nil
}

func addPartsList(prefixURL string, page playwright.Page, links []string) error {
	for _, link := range links {
		if err := addPart(prefixURL, page, link); err != nil {
			return fmt.Errorf("error adding part from link %s: %w", link, err)
		}
	}
	return nil
}

func handleTextbox(page playwright.Page) (string, error) {
	textboxLocator := page.GetByRole("textbox")
	if err := textboxLocator.WaitFor(playwright.LocatorWaitForOptions{State: playwright.WaitForSelectorStateAttached}); err != nil {
		return "", err
	}

	if err := textboxLocator.WaitFor(playwright.LocatorWaitForOptions{State: playwright.WaitForSelectorStateVisible}); err != nil {
		return "", fmt.Errorf("could not wait for the textbox to be visible: %v", err)
	}

	return textboxLocator.InputValue()
}

func cleanup(pw *playwright.Playwright, browser playwright.Browser) {
	log.Info(logCleanupPlaywright)
	if err := browser.Close(); err != nil {
		log.Errorf(logErrorCloseBrowser, err)
	}
	if err := pw.Stop(); err != nil {
		log.Errorf(logErrorStopPlaywright, err)
	}
}
