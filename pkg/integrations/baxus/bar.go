package baxus

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BottleButler/pkg/metrics"
	"droscher.com/BottleButler/pkg/model"
)

var errMissingProduct = errors.New("bar entry without product id")

const (
	popularityPerStar = 20000
	maxRating         = 5
)

type ProductJSON struct {
	ID          productID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Spirit      string    `json:"spirit"`
	Proof       *float64  `json:"proof"`
	AverageMSRP *float64  `json:"average_msrp"`
	FairPrice   *float64  `json:"fair_price"`
	ShelfPrice  *float64  `json:"shelf_price"`
	Popularity  *float64  `json:"popularity"`
	ImageURL    string    `json:"image_url"`
}

type BarEntryJSON struct {
	Product *ProductJSON `json:"product"`
}

// productID accepts both numeric and string ids.
type productID string

func (p *productID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*p = productID(value)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	*p = productID(number.String())

	return nil
}

func (b *Integration) FindBar(username string) ([]model.Bottle, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(b.baseURL.Hostname()),
		colly.UserAgent("BottleButler/1.0"),
	)

	var (
		errs    error
		fetch   error
		results []model.Bottle
	)

	collector.OnRequest(func(request *colly.Request) {
		request.Headers.Set("Accept", "application/json")
	})

	collector.OnResponse(func(response *colly.Response) {
		var entries []json.RawMessage
		if err := json.Unmarshal(response.Body, &entries); err != nil {
			fetch = fmt.Errorf("unexpected bar response for %s: %w", username, err)

			return
		}

		for index, raw := range entries {
			bottle, err := decodeEntry(raw)
			if multierr.AppendInto(&errs, err) {
				b.logger.Warn("skipping undecodable bar entry", zap.Int("index", index), zap.Error(err))

				continue
			}

			results = append(results, *bottle)
		}
	})

	collector.OnError(func(response *colly.Response, err error) {
		b.logger.Error("error while fetching bar", zap.String("url", response.Request.URL.String()), zap.Int("status", response.StatusCode), zap.Error(err))

		if response.StatusCode == http.StatusNotFound {
			fetch = fmt.Errorf("%w: %s", ErrUserNotFound, username)

			return
		}

		fetch = err
	})

	barURL := b.baseURL.JoinPath("api", "bar", "user", url.PathEscape(username))

	b.logger.Info("fetching bar", zap.String("username", username), zap.String("url", barURL.String()))

	if err := collector.Visit(barURL.String()); err != nil && fetch == nil {
		fetch = err
	}

	if fetch != nil {
		metrics.CatalogRequests.WithLabelValues(IntegrationName, outcome(fetch)).Inc()

		return nil, fetch
	}

	metrics.CatalogRequests.WithLabelValues(IntegrationName, "ok").Inc()
	b.logger.Info("finished fetching bar", zap.String("username", username), zap.Int("bottles", len(results)), zap.Error(errs))

	if results == nil {
		results = []model.Bottle{}
	}

	return results, nil
}

func outcome(err error) string {
	if errors.Is(err, ErrUserNotFound) {
		return "not_found"
	}

	return "error"
}

func decodeEntry(raw json.RawMessage) (*model.Bottle, error) {
	var entry BarEntryJSON
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, err
	}

	product := entry.Product
	if product == nil || len(product.ID) == 0 {
		return nil, errMissingProduct
	}

	bottle := model.Bottle{
		ID:         string(product.ID),
		Name:       product.Name,
		Distiller:  product.Brand,
		Type:       product.Spirit,
		Region:     pointy.String(model.RegionFromSpirit(product.Spirit)),
		Country:    pointy.String(model.CountryFromSpirit(product.Spirit)),
		Popularity: product.Popularity,
	}

	if product.Proof != nil && *product.Proof > 0 {
		bottle.ABV = pointy.Float64(*product.Proof / 2) //nolint:mnd // proof is twice the abv
	}

	bottle.Price = firstPositive(product.AverageMSRP, product.FairPrice, product.ShelfPrice)

	if product.Popularity != nil && *product.Popularity > 0 {
		bottle.Rating = pointy.Float64(math.Min(*product.Popularity/popularityPerStar, maxRating))
	}

	if len(product.ImageURL) > 0 {
		bottle.ImageURL = pointy.String(product.ImageURL)
	}

	return &bottle, nil
}

func firstPositive(values ...*float64) *float64 {
	for _, value := range values {
		if value != nil && *value > 0 {
			return pointy.Float64(*value)
		}
	}

	return nil
}
