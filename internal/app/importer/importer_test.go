package importer

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/go-resty/resty/v2"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "shoplake/internal/deps/cms/sanity"
  "shoplake/internal/deps/source/fakestore"
)

type cmsRecorder struct {
  uploads     int
  mutateCalls int
  creates     []map[string]any
  failNext    bool
}

func (c *cmsRecorder) handler() http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    switch {
    case strings.HasPrefix(r.URL.Path, "/v2021-10-21/assets/images/"):
      c.uploads++

      _, _ = fmt.Fprintf(w, `{"document":{"_id":"image-%d-png","_type":"sanity.imageAsset"}}`, c.uploads)

    case strings.HasPrefix(r.URL.Path, "/v2021-10-21/data/mutate/"):
      c.mutateCalls++

      if c.failNext {
        w.WriteHeader(http.StatusInternalServerError)
        return
      }

      var body sanity.MutateRequest
      _ = json.NewDecoder(r.Body).Decode(&body)

      create, _ := body.Mutations[0].Create.(map[string]any)
      c.creates = append(c.creates, create)

      _, _ = fmt.Fprintf(w, `{"transactionId":"tx","results":[{"id":"doc-%d","operation":"create"}]}`, len(c.creates))

    default:
      w.WriteHeader(http.StatusNotFound)
    }
  })
}

func newTestImporter(t *testing.T, sourceURL, cmsURL string) *Importer {
  t.Helper()

  restyClient := resty.New()

  fakestoreClient, err := fakestore.NewClient(
    fakestore.Config{BaseURL: sourceURL},
    fakestore.Dependencies{Client: restyClient},
  )
  require.NoError(t, err)

  sanityClient, err := sanity.NewClient(
    sanity.Config{
      ProjectID: "testproj",
      Dataset:   "production",
      Token:     "test-token",
      BaseURL:   cmsURL,
    },
    sanity.Dependencies{Client: restyClient},
  )
  require.NoError(t, err)

  importerApp, err := NewImporter(Dependencies{
    Fakestore: fakestoreClient,
    Sanity:    sanityClient,
    Client:    restyClient,
  })
  require.NoError(t, err)

  return importerApp
}

func TestStart(t *testing.T) {
  imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path == "/bad.png" {
      w.WriteHeader(http.StatusInternalServerError)
      return
    }
    _, _ = w.Write([]byte("png-bytes"))
  }))
  defer imageServer.Close()

  sourceServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    payload := fmt.Sprintf(`[
      {"id":1,"title":"Shirt","price":20,"description":"","category":"men","image":"%s/a.png","rating":{"rate":4.2,"count":10}},
      {"id":2,"title":"Mug","price":7.5,"description":"","category":"kitchen","image":"%s/bad.png"},
      {"id":3,"title":"Poster","price":5,"description":"","category":"","image":""}
    ]`, imageServer.URL, imageServer.URL)

    _, _ = w.Write([]byte(payload))
  }))
  defer sourceServer.Close()

  recorder := new(cmsRecorder)

  cmsServer := httptest.NewServer(recorder.handler())
  defer cmsServer.Close()

  importerApp := newTestImporter(t, sourceServer.URL, cmsServer.URL)

  require.NoError(t, importerApp.Start(context.Background()))
  require.Len(t, recorder.creates, 3)

  shirt := recorder.creates[0]
  assert.Equal(t, "product", shirt["_type"])
  assert.Equal(t, "Shirt", shirt["name"])
  assert.Equal(t, 20.0, shirt["price"])
  assert.Equal(t, 0.0, shirt["discountPercentage"])
  assert.Equal(t, 20.0, shirt["priceWithoutDiscount"])
  assert.Equal(t, 4.2, shirt["rating"])
  assert.Equal(t, 10.0, shirt["ratingCount"])
  assert.Equal(t, []any{"men"}, shirt["tags"])
  assert.Equal(t, []any{}, shirt["sizes"])
  assert.Equal(t, map[string]any{
    "_type": "image",
    "asset": map[string]any{
      "_type": "reference",
      "_ref":  "image-1-png",
    },
  }, shirt["image"])

  // The failed image fetch must not block the mug document,
  // only drop its image field.
  mug := recorder.creates[1]
  assert.Equal(t, "Mug", mug["name"])
  assert.NotContains(t, mug, "image")

  poster := recorder.creates[2]
  assert.Equal(t, "Poster", poster["name"])
  assert.Equal(t, []any{}, poster["tags"])
  assert.NotContains(t, poster, "image")

  // Only the shirt image reached the asset store.
  assert.Equal(t, 1, recorder.uploads)
}

func TestStart_RerunDuplicates(t *testing.T) {
  sourceServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(`[{"id":1,"title":"Shirt","price":20,"description":"","category":"men","image":""}]`))
  }))
  defer sourceServer.Close()

  recorder := new(cmsRecorder)

  cmsServer := httptest.NewServer(recorder.handler())
  defer cmsServer.Close()

  importerApp := newTestImporter(t, sourceServer.URL, cmsServer.URL)

  require.NoError(t, importerApp.Start(context.Background()))
  require.NoError(t, importerApp.Start(context.Background()))

  assert.Len(t, recorder.creates, 2)
}

func TestStart_SourceFetchFailure(t *testing.T) {
  sourceServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusBadGateway)
  }))
  defer sourceServer.Close()

  recorder := new(cmsRecorder)

  cmsServer := httptest.NewServer(recorder.handler())
  defer cmsServer.Close()

  importerApp := newTestImporter(t, sourceServer.URL, cmsServer.URL)

  err := importerApp.Start(context.Background())

  assert.ErrorContains(t, err, "FetchProducts")
  assert.Empty(t, recorder.creates)
}

func TestStart_CreateFailureEndsRun(t *testing.T) {
  sourceServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(`[
      {"id":1,"title":"Shirt","price":20,"description":"","category":"men","image":""},
      {"id":2,"title":"Mug","price":7.5,"description":"","category":"kitchen","image":""}
    ]`))
  }))
  defer sourceServer.Close()

  recorder := &cmsRecorder{failNext: true}

  cmsServer := httptest.NewServer(recorder.handler())
  defer cmsServer.Close()

  importerApp := newTestImporter(t, sourceServer.URL, cmsServer.URL)

  err := importerApp.Start(context.Background())

  // The first create fails and the rest of the batch is never attempted.
  assert.ErrorContains(t, err, "CreateDocument")
  assert.Equal(t, 1, recorder.mutateCalls)
  assert.Empty(t, recorder.creates)
}
