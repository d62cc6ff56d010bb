package importer

import (
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  "shoplake/internal/deps/cms/sanity"
  "shoplake/internal/deps/source/fakestore"
)

type Importer struct {
  deps Dependencies
}

type Dependencies struct {
  Fakestore *fakestore.Client `validate:"required"`
  Sanity    *sanity.Client    `validate:"required"`
  Client    *resty.Client     `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func NewImporter(deps Dependencies) (*Importer, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }

  return &Importer{deps: deps}, nil
}
