package fakestore

type ParsedProduct struct {
  ID          int64         `json:"id"`
  Title       string        `json:"title"`
  Price       any           `json:"price"`
  Description string        `json:"description"`
  Category    string        `json:"category"`
  Image       string        `json:"image"`
  Rating      *ParsedRating `json:"rating"`
}

type ParsedRating struct {
  Rate  float64 `json:"rate"`
  Count int64   `json:"count"`
}
