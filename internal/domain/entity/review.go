package entity

import "time"

// Review es una reseña de un cliente sobre un vehículo del inventario.
// La autoría es inmutable: las ediciones solo cambian el texto.
type Review struct {
	ID        int
	Text      string
	Date      time.Time
	VehicleID int
	AccountID int

	// Campos del JOIN para presentación.
	VehicleYear     int
	VehicleMake     string
	VehicleModel    string
	AuthorFirstName string
}

// VehicleName es el título del vehículo reseñado ("2021 Toyota Corolla").
func (r *Review) VehicleName() string {
	v := Vehicle{Year: r.VehicleYear, Make: r.VehicleMake, Model: r.VehicleModel}
	return v.DisplayName()
}
