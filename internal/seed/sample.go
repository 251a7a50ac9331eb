// Package seed carries the built-in sample dataset used by the admin seed
// endpoint and by handler tests.
package seed

import (
	"github.com/techflames/catalog/internal/article"
	"github.com/techflames/catalog/internal/brand"
	"github.com/techflames/catalog/internal/product"
)

type Data struct {
	Brands   []brand.Brand
	Products []product.Product
	Articles []article.Article
}

// Sample returns a fresh copy of the demo dataset: three brands, three
// phones and two articles.
func Sample() Data {
	return Data{
		Brands: []brand.Brand{
			{Name: "Apple", Slug: "apple", LogoURL: "https://logo.clearbit.com/apple.com"},
			{Name: "Samsung", Slug: "samsung", LogoURL: "https://logo.clearbit.com/samsung.com"},
			{Name: "OnePlus", Slug: "oneplus", LogoURL: "https://logo.clearbit.com/oneplus.com"},
		},
		Products: []product.Product{
			{
				Title:    "iPhone 15 Pro",
				Slug:     "iphone-15-pro",
				Category: "mobile",
				Brand:    "Apple",
				Images: []string{
					"https://images.unsplash.com/photo-1695048134701-4a3f1b2a0f6f",
					"https://images.unsplash.com/photo-1695048134823-efb2d9e2f5a1",
				},
				Thumbnail: "https://images.unsplash.com/photo-1695048134701-4a3f1b2a0f6f",
				Price:     "999.00",
				PriceSources: []product.PriceSource{
					{Merchant: "Amazon", URL: "#", Price: "999.00"},
					{Merchant: "Flipkart", URL: "#", Price: "989.00"},
				},
				Rating:     rating(4.8),
				Popularity: 100,
				Specs: product.Specs{
					Display:     "6.1 OLED 120Hz",
					Camera:      "48MP + 12MP",
					Performance: "A17 Pro",
					Battery:     "3274 mAh",
					Storage:     "128GB",
					RAM:         "8GB",
					OS:          "iOS 17",
				},
				Tags: []string{"flagship", "ios", "premium"},
			},
			{
				Title:    "Samsung Galaxy S23",
				Slug:     "galaxy-s23",
				Category: "mobile",
				Brand:    "Samsung",
				Images: []string{
					"https://images.unsplash.com/photo-1675864507642-1c39c2bf4f84",
				},
				Thumbnail: "https://images.unsplash.com/photo-1675864507642-1c39c2bf4f84",
				Price:     "799.00",
				PriceSources: []product.PriceSource{
					{Merchant: "Amazon", URL: "#", Price: "779.00"},
				},
				Rating:     rating(4.6),
				Popularity: 90,
				Specs: product.Specs{
					Display:     "6.1 AMOLED 120Hz",
					Camera:      "50MP + 10MP + 12MP",
					Performance: "Snapdragon 8 Gen 2",
					Battery:     "3900 mAh",
					Storage:     "256GB",
					RAM:         "8GB",
					OS:          "Android 13",
				},
				Tags: []string{"android", "flagship"},
			},
			{
				Title:    "OnePlus 11",
				Slug:     "oneplus-11",
				Category: "mobile",
				Brand:    "OnePlus",
				Images: []string{
					"https://images.unsplash.com/photo-1682685794641-1b1e5d0e6505",
				},
				Thumbnail: "https://images.unsplash.com/photo-1682685794641-1b1e5d0e6505",
				Price:     "699.00",
				PriceSources: []product.PriceSource{
					{Merchant: "Amazon", URL: "#", Price: "679.00"},
				},
				Rating:     rating(4.5),
				Popularity: 80,
				Specs: product.Specs{
					Display:     "6.7 AMOLED 120Hz",
					Camera:      "50MP + 48MP + 32MP",
					Performance: "Snapdragon 8 Gen 2",
					Battery:     "5000 mAh",
					Storage:     "256GB",
					RAM:         "12GB",
					OS:          "Android 13",
				},
				Tags: []string{"value", "android"},
			},
		},
		Articles: []article.Article{
			{
				Title:      "Top phones under $500 in 2025",
				Slug:       "top-phones-under-500-2025",
				CoverImage: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9",
				Excerpt:    "Great value phones you can buy today.",
				Content:    "Long form review content here...",
				Author:     "Flames Editorial",
				Category:   "guide",
			},
			{
				Title:      "Galaxy S23 Review: Still a compact champ",
				Slug:       "galaxy-s23-review",
				CoverImage: "https://images.unsplash.com/photo-1510554310709-f60d7bfc35ef",
				Excerpt:    "Our verdict after two months of use.",
				Content:    "Review content...",
				Author:     "Jane Doe",
				Category:   "review",
			},
		},
	}
}

func rating(v float64) *float64 { return &v }
