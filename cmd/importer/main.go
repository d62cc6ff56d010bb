package main

import (
  "context"
  "net/http"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "shoplake/internal/app/importer"
  "shoplake/internal/config"
  "shoplake/internal/deps/cms/sanity"
  "shoplake/internal/deps/source/fakestore"
  "shoplake/pkg/logger"
)

func main() {
  ctx := context.Background()

  logger.Init()

  cfg := config.Load()

  restyClient := resty.NewWithClient(http.DefaultClient)

  fakestoreClient, err := fakestore.NewClient(
    fakestore.Config{
      BaseURL: cfg.Source.BaseURL,
    },
    fakestore.Dependencies{
      Client: restyClient,
    })
  if err != nil {
    log.Fatalf("fakestore.NewClient: %v", err)
  }

  sanityClient, err := sanity.NewClient(
    sanity.Config{
      ProjectID: cfg.Sanity.ProjectID,
      Dataset:   cfg.Sanity.Dataset,
      Token:     cfg.Sanity.Token,
    },
    sanity.Dependencies{
      Client: restyClient,
    })
  if err != nil {
    log.Fatalf("sanity.NewClient: %v", err)
  }

  importerApp, err := importer.NewImporter(importer.Dependencies{
    Fakestore: fakestoreClient,
    Sanity:    sanityClient,
    Client:    restyClient,
  })
  if err != nil {
    log.Fatalf("importer.NewImporter: %v", err)
  }

  if err = importerApp.Start(ctx); err != nil {
    log.Fatalf("importerApp.Start: %v", err)
  }
}
