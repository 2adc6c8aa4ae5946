package scout

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxPages bounds pagination per sport
const maxPages = 20

// FetchRankings scrapes the ranked athlete list for one sport,
// following pagination until the site runs out of pages.
func (c *Client) FetchRankings(ctx context.Context, sport string) ([]ScoutedAthlete, error) {
	var all []ScoutedAthlete

	for page := 1; page <= maxPages; page++ {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		params := url.Values{}
		params.Set("sport", sport)
		params.Set("page", strconv.Itoa(page))

		html, err := c.fetchHTML(ctx, "/rankings", params)
		if err != nil {
			return all, fmt.Errorf("fetch rankings page %d failed: %w", page, err)
		}

		athletes, hasMore, err := parseRankingsHTML(html, sport)
		if err != nil {
			return all, err
		}
		all = append(all, athletes...)

		if !hasMore || len(athletes) == 0 {
			break
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"sport": sport,
		"count": len(all),
	}).Debug("Fetched rankings")
	return all, nil
}

// parseRankingsHTML extracts athlete rows from one rankings page.
// Expected row shape: rank | name | school | state | stars.
func parseRankingsHTML(html, sport string) ([]ScoutedAthlete, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false, fmt.Errorf("parse rankings HTML failed: %w", err)
	}

	var athletes []ScoutedAthlete
	doc.Find("table.rankings tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}

		rank, err := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil {
			return
		}

		name := strings.TrimSpace(cells.Eq(1).Text())
		if name == "" {
			return
		}

		stars := parseStars(cells.Eq(4))

		athletes = append(athletes, ScoutedAthlete{
			Rank:       rank,
			Name:       name,
			Sport:      sport,
			School:     strings.TrimSpace(cells.Eq(2).Text()),
			State:      strings.TrimSpace(cells.Eq(3).Text()),
			StarRating: stars,
		})
	})

	hasMore := doc.Find(".pagination .next").Length() > 0
	return athletes, hasMore, nil
}

// parseStars reads a star rating either from a data attribute or by
// counting filled star elements.
func parseStars(cell *goquery.Selection) int {
	if attr, ok := cell.Attr("data-stars"); ok {
		if stars, err := strconv.Atoi(strings.TrimSpace(attr)); err == nil {
			return clampStars(stars)
		}
	}
	return clampStars(cell.Find(".star.filled").Length())
}

func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}
