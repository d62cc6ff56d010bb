package models

import "github.com/samber/lo"

const DocumentTypeProduct = "product"

type Product struct {
  ID          int64
  Name        string
  Description string
  Price       float64
  Category    string
  ImageURL    string
  Rating      *ProductRating
}

type ProductRating struct {
  Rate  float64
  Count int64
}

type ProductDocument struct {
  Type                 string        `json:"_type"`
  Name                 string        `json:"name"`
  Description          string        `json:"description"`
  Price                float64       `json:"price"`
  DiscountPercentage   float64       `json:"discountPercentage"`
  PriceWithoutDiscount float64       `json:"priceWithoutDiscount"`
  Rating               float64       `json:"rating"`
  RatingCount          int64         `json:"ratingCount"`
  Tags                 []string      `json:"tags"`
  Sizes                []string      `json:"sizes"`
  Image                *ProductImage `json:"image,omitempty"`
}

type ProductImage struct {
  Type  string         `json:"_type"`
  Asset AssetReference `json:"asset"`
}

type AssetReference struct {
  Type string `json:"_type"`
  Ref  string `json:"_ref"`
}

// MakeProductDocument builds a content lake document from a source product.
// Documents are created without discounts: discountPercentage starts at zero
// and priceWithoutDiscount keeps the pre-discount baseline. Sizes are filled
// in later by hand in the studio.
func MakeProductDocument(product Product, assetID string) ProductDocument {
  document := ProductDocument{
    Type:                 DocumentTypeProduct,
    Name:                 product.Name,
    Description:          product.Description,
    Price:                product.Price,
    DiscountPercentage:   0,
    PriceWithoutDiscount: product.Price,
    Tags:                 lo.Compact([]string{product.Category}),
    Sizes:                make([]string, 0),
  }

  if product.Rating != nil {
    document.Rating = product.Rating.Rate
    document.RatingCount = product.Rating.Count
  }

  if assetID != "" {
    document.Image = &ProductImage{
      Type: "image",
      Asset: AssetReference{
        Type: "reference",
        Ref:  assetID,
      },
    }
  }

  return document
}
