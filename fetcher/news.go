// backend/fetcher/news.go
package fetcher

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const newsMaxHeadlines = 20

// headlineSelector matches article headline links on the configured news
// page. Sites that deviate from this structure need a different selector.
const headlineSelector = "article h2 a, article h3 a"

type headline struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// NewsSource scrapes spaceflight news headlines from an HTML page and caches
// them as a single JSON payload under the news tag.
type NewsSource struct {
	client  *Client
	pageURL string
}

func NewNewsSource(client *Client, pageURL string) *NewsSource {
	return &NewsSource{client: client, pageURL: pageURL}
}

func (s *NewsSource) Fetch() (json.RawMessage, error) {
	body, err := s.client.GetBody(s.pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: s.pageURL, Err: err}
	}

	var headlines []headline
	doc.Find(headlineSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return true
		}
		href, _ := sel.Attr("href")
		headlines = append(headlines, headline{Title: title, URL: href})
		return len(headlines) < newsMaxHeadlines
	})
	log.Printf("Fetcher: scraped %d headlines from %s", len(headlines), s.pageURL)

	data, err := json.Marshal(struct {
		Headlines []headline `json:"headlines"`
	}{Headlines: headlines})
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: s.pageURL, Err: err}
	}
	return json.RawMessage(data), nil
}
