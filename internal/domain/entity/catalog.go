package entity

import (
	"strconv"
	"time"
)

// CatalogItemID uniquely identifies a registered catalog entry.
type CatalogItemID int64

// CatalogItem is a registered vehicle, location or driver as stored by the
// data store. Value is what gets written into a bound field.
type CatalogItem struct {
	ID        CatalogItemID
	Category  Category
	Value     string
	Label     string
	Favorite  bool
	Position  int
	Metadata  map[string]string
	CreatedAt time.Time
}

// Vehicle is a registered vehicle.
type Vehicle struct {
	ID               int64
	Plate            string
	Owner            string
	DefaultUnitPrice float64
	Favorite         bool
}

// CatalogItem converts the vehicle into its catalog representation,
// labelled "plate (owner)".
func (v Vehicle) CatalogItem() *CatalogItem {
	label := v.Plate
	if v.Owner != "" {
		label = v.Plate + " (" + v.Owner + ")"
	}
	meta := map[string]string{}
	if v.ID > 0 {
		meta[MetaVehicleID] = strconv.FormatInt(v.ID, 10)
	}
	if v.DefaultUnitPrice > 0 {
		meta[MetaDefaultUnitPrice] = strconv.FormatFloat(v.DefaultUnitPrice, 'f', -1, 64)
	}
	return &CatalogItem{
		Category: CategoryVehicle,
		Value:    v.Plate,
		Label:    label,
		Favorite: v.Favorite,
		Metadata: meta,
	}
}

// Location is a registered origin or destination.
type Location struct {
	ID       int64
	Name     string
	Favorite bool
}

// CatalogItem converts the location into its catalog representation.
func (l Location) CatalogItem() *CatalogItem {
	meta := map[string]string{}
	if l.ID > 0 {
		meta[MetaLocationID] = strconv.FormatInt(l.ID, 10)
	}
	return &CatalogItem{
		Category: CategoryLocation,
		Value:    l.Name,
		Label:    l.Name,
		Favorite: l.Favorite,
		Metadata: meta,
	}
}

// Driver is a registered driver.
type Driver struct {
	ID       int64
	Name     string
	Phone    string
	Favorite bool
}

// CatalogItem converts the driver into its catalog representation.
func (d Driver) CatalogItem() *CatalogItem {
	meta := map[string]string{}
	if d.ID > 0 {
		meta[MetaDriverID] = strconv.FormatInt(d.ID, 10)
	}
	if d.Phone != "" {
		meta[MetaHint] = d.Phone
	}
	return &CatalogItem{
		Category: CategoryDriver,
		Value:    d.Name,
		Label:    d.Name,
		Favorite: d.Favorite,
		Metadata: meta,
	}
}
