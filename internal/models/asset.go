package models

// AssetStatus enumerates where an asset is in its lifecycle.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusAssigned    AssetStatus = "assigned"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

// Asset represents an inventory item owned by the institution.
type Asset struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Tag        string      `json:"tag"`
	Category   string      `json:"category"`
	Location   string      `json:"location"`
	AssignedTo string      `json:"assigned_to"`
	Value      float64     `json:"value"`
	Status     AssetStatus `json:"status"`
}
