package models

type Shop struct {
	Meta
	Owner        string  `json:"owner"` // user id of the shop owner
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine,omitempty"`
	Address      string  `json:"address,omitempty"`
	Description  string  `json:"description,omitempty"`
	IsApproved   bool    `json:"isApproved"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

type MenuItem struct {
	Meta
	Shop        string  `json:"shop"` // shop id the item belongs to
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
}
