package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"infragraph/logger"
)

// PortRankScraper refreshes port traffic ranks from public web sources
// before the first graph build. Any failure leaves the catalog ranks
// untouched; the embedded defaults are good enough.
type PortRankScraper struct {
	Client *http.Client
	URL    string
}

func NewPortRankScraper() *PortRankScraper {
	return &PortRankScraper{
		Client: &http.Client{},
		URL:    "https://en.wikipedia.org/wiki/List_of_busiest_container_ports",
	}
}

// FetchRanks scrapes the busiest-container-ports table and returns a
// normalized-name -> rank map for up to limit ports.
func (s *PortRankScraper) FetchRanks(limit int) (map[string]int, error) {
	logger.Info(logger.StatusScrape, "Scraping port traffic ranks from: %s", s.URL)

	req, err := http.NewRequest("GET", s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return ParseRankTable(res.Body, limit)
}

// ParseRankTable extracts port names in rank order from the first
// sortable wikitable in the document. Split out from FetchRanks so it
// can be exercised against fixture HTML.
func ParseRankTable(r io.Reader, limit int) (map[string]int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	ranks := make(map[string]int)
	rank := 0
	doc.Find("table.wikitable.sortable tbody tr").Each(func(i int, row *goquery.Selection) {
		if rank >= limit {
			return
		}
		if i == 0 {
			return // header
		}

		// The port name is the first text link in the row; layouts
		// sometimes put the rank number in the first cell.
		name := row.Find("td").Eq(0).Find("a").Text()
		if name == "" {
			name = row.Find("td").Eq(1).Find("a").Text()
		}
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.TrimPrefix(name, "port of ")
		if name == "" {
			return
		}
		rank++
		ranks[name] = rank
	})

	if len(ranks) == 0 {
		return nil, fmt.Errorf("failed to extract port ranks from HTML")
	}
	return ranks, nil
}
