package schema

// Studio document type definitions. Exported as JSON by cmd/schema and
// consumed by the studio build tooling, never at import runtime.

type Type struct {
  Name   string  `json:"name"`
  Title  string  `json:"title,omitempty"`
  Type   string  `json:"type"`
  Fields []Field `json:"fields,omitempty"`
}

type Field struct {
  Name    string   `json:"name"`
  Title   string   `json:"title,omitempty"`
  Type    string   `json:"type"`
  Of      []Member `json:"of,omitempty"`
  Options *Options `json:"options,omitempty"`
}

type Member struct {
  Type string `json:"type"`
}

type Options struct {
  Layout  string `json:"layout,omitempty"`
  Hotspot bool   `json:"hotspot,omitempty"`
}

func Product() Type {
  return Type{
    Name:  "product",
    Title: "Product",
    Type:  "document",
    Fields: []Field{
      {Name: "name", Title: "Name", Type: "string"},
      {Name: "description", Title: "Description", Type: "string"},
      {Name: "price", Title: "Price", Type: "number"},
      {Name: "discountPercentage", Title: "Discount Percentage", Type: "number"},
      {Name: "priceWithoutDiscount", Title: "Price Without Discount", Type: "number"},
      {Name: "rating", Title: "Rating", Type: "number"},
      {Name: "ratingCount", Title: "Rating Count", Type: "number"},
      {
        Name:    "tags",
        Title:   "Tags",
        Type:    "array",
        Of:      []Member{{Type: "string"}},
        Options: &Options{Layout: "tags"},
      },
      {
        Name:    "sizes",
        Title:   "Sizes",
        Type:    "array",
        Of:      []Member{{Type: "string"}},
        Options: &Options{Layout: "tags"},
      },
      {
        Name:    "image",
        Title:   "Image",
        Type:    "image",
        Options: &Options{Hotspot: true},
      },
    },
  }
}

func Types() []Type {
  return []Type{
    Product(),
  }
}
