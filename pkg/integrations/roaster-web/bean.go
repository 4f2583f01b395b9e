package roasterweb

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/model"
)

type ProductJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BeanScraped struct {
	Link       string `attr:"href"              selector:"a.product-link"`
	Name       string `selector:".product-name"`
	Origin     string `selector:".product-origin"`
	RoastLevel string `selector:".product-roast"`
}

type BeanDetails struct {
	Origin string `selector:".origin"`
	Notes  string `selector:".tasting-notes"`
}

// FindBean searches the shop for name and returns one bean per product in
// the results. Product pages fill in notes and origin when the listing lacks
// them; a product page that cannot be read leaves the listing data as is.
// Requests stop once ctx is done.
func (r *RoasterWebIntegration) FindBean(ctx context.Context, name string) ([]model.Bean, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(r.baseURL.Hostname()),
	)
	collector.Context = ctx

	var (
		errs    error
		scraped []BeanScraped
	)

	collector.OnHTML(".product-item", func(element *colly.HTMLElement) {
		item := BeanScraped{}

		err := element.Unmarshal(&item)
		if multierr.AppendInto(&errs, err) {
			r.logger.Error("failed to unmarshal scraped bean", zap.Error(err))

			return
		}

		if item.Link != "" {
			item.Link = element.Request.AbsoluteURL(item.Link)
		}

		scraped = append(scraped, item)
	})

	collector.OnError(func(response *colly.Response, err error) {
		r.logger.Error("error while scraping bean search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	r.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(r.searchURL(name)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]model.Bean, len(scraped))

	var detailWG sync.WaitGroup

	for index, item := range scraped {
		detailCollector := collector.Clone()
		detailCollector.Context = ctx

		detailWG.Add(1)

		go func() {
			defer detailWG.Done()

			results[index] = r.getBeanDetails(detailCollector, item)
		}()
	}

	detailWG.Wait()

	r.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (r *RoasterWebIntegration) getBeanDetails(detailCollector *colly.Collector, scraped BeanScraped) model.Bean {
	bean := model.Bean{
		Name:       strings.TrimSpace(scraped.Name),
		Origin:     optionalText(scraped.Origin),
		RoastLevel: optionalText(scraped.RoastLevel),
	}

	if scraped.Link == "" {
		return bean
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var product ProductJSON
		if err := json.Unmarshal([]byte(element.Text), &product); err != nil {
			r.logger.Warn("invalid product JSON", zap.String("url", scraped.Link), zap.Error(err))

			return
		}

		bean.Notes = optionalText(product.Description)
	})

	detailCollector.OnHTML(".product-details", func(element *colly.HTMLElement) {
		details := BeanDetails{}
		if err := element.Unmarshal(&details); err != nil {
			return
		}

		if bean.Notes == nil {
			bean.Notes = optionalText(details.Notes)
		}

		if bean.Origin == nil {
			bean.Origin = optionalText(details.Origin)
		}
	})

	r.logger.Info("scraping bean page", zap.String("url", scraped.Link))

	if err := detailCollector.Visit(scraped.Link); err != nil {
		r.logger.Warn("failed to scrape bean page", zap.String("url", scraped.Link), zap.Error(err))
	}

	return bean
}

func (r *RoasterWebIntegration) searchURL(query string) string {
	search := r.baseURL.JoinPath(r.searchPath)
	search.RawQuery = url.Values{"q": []string{query}}.Encode()

	return search.String()
}

func optionalText(text string) *string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	return pointy.String(text)
}
