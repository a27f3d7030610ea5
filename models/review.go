package models

type Review struct {
	Meta
	Shop    string `json:"shop"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// MenuItemReview lives in its own collection with a legacy id format.
// See DESIGN.md before merging it into Review.
type MenuItemReview struct {
	Meta
	MenuItem string `json:"menuItem"`
	User     string `json:"user"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}
