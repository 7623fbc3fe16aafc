package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Vehicle es un registro de inventario del concesionario.
type Vehicle struct {
	ID               int
	Make             string
	Model            string
	Year             int
	Description      string
	Image            string
	Thumbnail        string
	Price            decimal.Decimal // NUMERIC(10,2) en DB
	Miles            int
	Color            string
	ClassificationID int

	// ClassificationName viene del JOIN con classification en las lecturas.
	ClassificationName string
}

// DisplayName es el título con que se presenta el vehículo ("2021 Toyota Corolla").
func (v *Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
