package importer

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "shoplake/internal/models"
  "shoplake/pkg/money"
)

// Start runs the import end to end: one source fetch, then one document per
// product, strictly in source order. An image failure downgrades the product
// to no image; a create failure ends the run and leaves already created
// documents in place.
func (c *Importer) Start(ctx context.Context) error {
  log.Info("product import started")

  products, err := c.deps.Fakestore.FetchProducts(ctx)
  if err != nil {
    return fmt.Errorf("c.deps.Fakestore.FetchProducts: %w", err)
  }

  log.
    WithFields(log.Fields{
      "products.count": len(products),
    }).
    Info("source products fetched")

  created := 0

  for _, product := range products {
    log.
      WithFields(log.Fields{
        "product.id":    product.ID,
        "product.name":  product.Name,
        "product.price": money.String(product.Price),
      }).
      Info("product processing started")

    assetID := c.uploadProductImage(ctx, product)

    document := models.MakeProductDocument(product, assetID)

    res, err := c.deps.Sanity.CreateDocument(ctx, document)
    if err != nil {
      return fmt.Errorf("c.deps.Sanity.CreateDocument: %w", err)
    }
    created++

    log.
      WithFields(log.Fields{
        "product.name": product.Name,
        "document.id":  res.ID,
      }).
      Info("product document created")
  }

  log.
    WithFields(log.Fields{
      "documents.count": created,
    }).
    Info("product import finished")

  return nil
}
