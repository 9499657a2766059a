package models

type FacetCategory struct {
	ID          string
	DisplayName string
	IconRef     string
}
