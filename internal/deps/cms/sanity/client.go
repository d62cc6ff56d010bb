package sanity

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
)

const defaultAPIVersion = "2021-10-21"

type Config struct {
  ProjectID  string `validate:"required"`
  Dataset    string `validate:"required"`
  Token      string `validate:"required"`
  APIVersion string

  // BaseURL overrides the project API host. Set in tests only.
  BaseURL string
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

  if config.APIVersion == "" {
    config.APIVersion = defaultAPIVersion
  }
  if config.BaseURL == "" {
    config.BaseURL = fmt.Sprintf("https://%s.api.sanity.io", config.ProjectID)
  }

  return &Client{
    config: config,
    deps:   deps,
  }, nil
}

// UploadImage stores an image binary in the dataset asset store and returns
// the asset record. The asset id is what documents reference.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*Asset, error) {
  url := fmt.Sprintf("%s/v%s/assets/images/%s", c.config.BaseURL, c.config.APIVersion, c.config.Dataset)

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetAuthToken(c.config.Token).
    SetHeader("Content-Type", "application/octet-stream").
    SetQueryParam("filename", filename).
    SetBody(data).
    Post(url)
  if err != nil {
    return nil, fmt.Errorf("c.deps.Client.R().Post: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("sanity assets status %s: %s", resp.Status(), resp.String())
  }

  parsed := new(UploadImageResponse)

  if err = json.Unmarshal(resp.Body(), parsed); err != nil {
    return nil, fmt.Errorf("asset json unmarshal: %w", err)
  }
  if parsed.Document.ID == "" {
    return nil, fmt.Errorf("asset document id is empty")
  }

  return &parsed.Document, nil
}

// CreateDocument submits a single create mutation. Ids are assigned by the
// content lake, so calling twice with the same document creates two documents.
func (c *Client) CreateDocument(ctx context.Context, document any) (*CreatedDocument, error) {
  url := fmt.Sprintf("%s/v%s/data/mutate/%s", c.config.BaseURL, c.config.APIVersion, c.config.Dataset)

  body := MutateRequest{
    Mutations: []Mutation{
      {Create: document},
    },
  }

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetAuthToken(c.config.Token).
    SetHeader("Content-Type", "application/json").
    SetQueryParam("returnIds", "true").
    SetBody(body).
    Post(url)
  if err != nil {
    return nil, fmt.Errorf("c.deps.Client.R().Post: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("sanity mutate status %s: %s", resp.Status(), resp.String())
  }

  parsed := new(MutateResponse)

  if err = json.Unmarshal(resp.Body(), parsed); err != nil {
    return nil, fmt.Errorf("mutate json unmarshal: %w", err)
  }
  if len(parsed.Results) == 0 {
    return nil, fmt.Errorf("mutation results are empty")
  }

  return &CreatedDocument{ID: parsed.Results[0].ID}, nil
}
