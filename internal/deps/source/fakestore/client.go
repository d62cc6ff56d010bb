package fakestore

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
  "shoplake/internal/models"
  "shoplake/pkg/ext"
  "shoplake/pkg/stringer"
)

type Config struct {
  BaseURL string `validate:"required,url"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Client *resty.Client `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

type Client struct {
  config Config
  deps   Dependencies
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Client{
    config: config,
    deps:   deps,
  }, nil
}

// FetchProducts loads the whole product collection in a single request.
// The source has no pagination.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
  url := fmt.Sprintf("%s/products", c.config.BaseURL)

  resp, err := c.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return nil, fmt.Errorf("c.deps.Client.R().Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("fakestore status %s: %s", resp.Status(), resp.String())
  }

  var parsed []ParsedProduct

  if err = json.Unmarshal(resp.Body(), &parsed); err != nil {
    return nil, fmt.Errorf("products json unmarshal: %w", err)
  }

  products := make([]models.Product, 0, len(parsed))

  for _, parsedProduct := range parsed {
    product, err := makeProductFromParsed(parsedProduct)
    if err != nil {
      log.
        WithFields(log.Fields{
          "parsed.id":    parsedProduct.ID,
          "parsed.title": parsedProduct.Title,
        }).
        Errorf("fakestore make product error: %v", err)

      continue
    }

    products = append(products, product)
  }

  return products, nil
}

func makeProductFromParsed(parsed ParsedProduct) (models.Product, error) {
  price, err := cast.ToFloat64E(parsed.Price)
  if err != nil {
    return models.Product{}, fmt.Errorf("parsed.Price: %v. cast.ToFloat64E: %w", parsed.Price, err)
  }

  product := models.Product{
    ID:          parsed.ID,
    Name:        stringer.SanitizeString(parsed.Title),
    Description: stringer.SanitizeString(parsed.Description),
    Price:       price,
    Category:    stringer.Strip(parsed.Category),
    ImageURL:    makeProductImageURL(parsed),
  }

  if parsed.Rating != nil {
    product.Rating = &models.ProductRating{
      Rate:  parsed.Rating.Rate,
      Count: parsed.Rating.Count,
    }
  }

  return product, nil
}

func makeProductImageURL(parsed ParsedProduct) string {
  url := strings.TrimSpace(parsed.Image)

  if !ext.IsImage(url) {
    return ""
  }
  return url
}
