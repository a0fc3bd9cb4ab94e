package utils

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	pcppURLMatcher    = regexp2.MustCompile(`^(https?://)?([a-z]{2}\.)?pcpartpicker\.com(/.*)?$`, 0)
	productURLMatcher = regexp2.MustCompile(`^(https?://)?([a-z]{2}\.)?pcpartpicker\.com/product/[a-zA-Z0-9]{4,8}/[\S]*`, 0)
	httpURLMatcher    = regexp2.MustCompile(`^https?://[^\s/$.?#][^\s]*$`, regexp2.IgnoreCase)
	vendorNameMatcher = regexp2.MustCompile(`^https?://(?:www\.|smile\.)?([a-z0-9-]+)\.[a-z.]+(/|$)`, regexp2.IgnoreCase)
	shortLinkMatcher  = regexp2.MustCompile(`^https?://amzn\.(to|eu)/`, regexp2.IgnoreCase)
)

// ExtractVendorName returns the shop name of a part link, e.g. "amazon" for
// https://www.amazon.com/dp/B0C... and for amzn.to short links.
func ExtractVendorName(URL string) string {
	if URL == "" {
		return ""
	}
	if short, _ := shortLinkMatcher.MatchString(URL); short {
		return "amazon"
	}
	m, err := vendorNameMatcher.FindStringMatch(URL)
	if err != nil || m == nil {
		return ""
	}
	return strings.ToLower(m.GroupByNumber(1).String())
}

func MatchHTTPURL(URL string) bool {
	match, _ := httpURLMatcher.MatchString(URL)

	return match
}

func MatchPCPPURL(URL string) bool {
	match, _ := pcppURLMatcher.MatchString(URL)

	return match
}

func MatchProductURL(URL string) bool {
	match, _ := productURLMatcher.MatchString(URL)

	return match
}

// FilterProductURLs keeps the PCPartPicker product links, in order, without duplicates.
func FilterProductURLs(links []string) []string {
	seen := map[string]bool{}
	var products []string
	for _, link := range links {
		if !MatchProductURL(link) || seen[link] {
			continue
		}
		seen[link] = true
		products = append(products, link)
	}
	return products
}

func BuildPrefixURL(region string) string {
	if region != "" && region != "us" {
		region += "."
	} else {
		region = ""
	}
	prefixURL := "https://" + region + "pcpartpicker.com/"
	return prefixURL
}
