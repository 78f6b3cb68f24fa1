package billing

import "strings"

type Product struct {
	ID          string `json:"id"`
	PriceID     string `json:"priceId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
	Price       string `json:"price"`
}

const (
	PlanFree    = "Free"
	PlanUnknown = "Unknown"
)

var Products = []Product{
	{
		ID:          "prod_SU1Ei0qyBwfe6n",
		PriceID:     "price_1RZ3C4Q2IpZFcELs42JVD0vk",
		Name:        "Pro",
		Description: "Most popular for serious goal achievers",
		Mode:        "subscription",
		Price:       "$9.99",
	},
	{
		ID:          "prod_SU1EkUrjlsKSox",
		PriceID:     "price_1RZ3CLQ2IpZFcELs5F33LRnT",
		Name:        "Premium",
		Description: "For teams and power users",
		Mode:        "subscription",
		Price:       "$19.99",
	},
}

func ProductByPriceID(priceID string) (Product, bool) {
	for _, p := range Products {
		if p.PriceID == priceID {
			return p, true
		}
	}
	return Product{}, false
}

func ProductByName(name string) (Product, bool) {
	for _, p := range Products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}

// PlanName returns Free without a price and Unknown for prices outside the catalog.
func PlanName(priceID string) string {
	if priceID == "" {
		return PlanFree
	}
	if p, ok := ProductByPriceID(priceID); ok {
		return p.Name
	}
	return PlanUnknown
}
