package importer

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "shoplake/internal/models"
  "shoplake/pkg/ext"
  "shoplake/pkg/stringer"
  "shoplake/pkg/validator"
)

// uploadProductImage is the only guarded step of the pipeline: any failure
// here is logged and downgraded to an empty asset id, so one bad image never
// stops the batch.
func (c *Importer) uploadProductImage(ctx context.Context, product models.Product) string {
  if stringer.IsEmptyStr(product.ImageURL) {
    return ""
  }

  if err := validator.URL(product.ImageURL); err != nil {
    log.
      WithFields(log.Fields{
        "product.name":      product.Name,
        "product.image_url": product.ImageURL,
      }).
      Errorf("product image url invalid: %v", err)

    return ""
  }

  data, err := c.fetchImage(ctx, product.ImageURL)
  if err != nil {
    log.
      WithFields(log.Fields{
        "product.name":      product.Name,
        "product.image_url": product.ImageURL,
      }).
      Errorf("product image fetch error: %v", err)

    return ""
  }

  filename := ext.Filename(product.ImageURL)

  asset, err := c.deps.Sanity.UploadImage(ctx, filename, data)
  if err != nil {
    log.
      WithFields(log.Fields{
        "product.name":      product.Name,
        "product.image_url": product.ImageURL,
      }).
      Errorf("product image upload error: %v", err)

    return ""
  }

  log.
    WithFields(log.Fields{
      "product.name": product.Name,
      "asset.id":     asset.ID,
    }).
    Info("product image uploaded")

  return asset.ID
}

func (c *Importer) fetchImage(ctx context.Context, url string) ([]byte, error) {
  resp, err := c.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return nil, fmt.Errorf("c.deps.Client.R().Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("image status %s", resp.Status())
  }

  return resp.Body(), nil
}
