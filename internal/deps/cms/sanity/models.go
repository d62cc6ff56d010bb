package sanity

type Asset struct {
  ID   string `json:"_id"`
  Type string `json:"_type"`
  URL  string `json:"url"`
}

type UploadImageResponse struct {
  Document Asset `json:"document"`
}

type Mutation struct {
  Create any `json:"create,omitempty"`
}

type MutateRequest struct {
  Mutations []Mutation `json:"mutations"`
}

type MutateResponse struct {
  TransactionID string           `json:"transactionId"`
  Results       []MutationResult `json:"results"`
}

type MutationResult struct {
  ID        string `json:"id"`
  Operation string `json:"operation"`
}

type CreatedDocument struct {
  ID string
}
