package dto

import "github.com/tu-usuario/cse-motors/internal/domain/entity"

// ClassificationForm alta de clasificación.
type ClassificationForm struct {
	Name string `form:"classification_name"`
}

// VehicleForm alta y edición de vehículos. Todos los campos llegan como
// string del formulario; el validador los parsea y normaliza.
type VehicleForm struct {
	ID               string `form:"inv_id"`
	ClassificationID string `form:"classification_id"`
	Make             string `form:"inv_make"`
	Model            string `form:"inv_model"`
	Year             string `form:"inv_year"`
	Description      string `form:"inv_description"`
	Image            string `form:"inv_image"`
	Thumbnail        string `form:"inv_thumbnail"`
	Price            string `form:"inv_price"`
	Miles            string `form:"inv_miles"`
	Color            string `form:"inv_color"`
}

// DeleteVehicleForm confirmación de borrado (los campos extra son solo display).
type DeleteVehicleForm struct {
	ID    string `form:"inv_id"`
	Make  string `form:"inv_make"`
	Model string `form:"inv_model"`
	Year  string `form:"inv_year"`
	Price string `form:"inv_price"`
}

// VehicleJSON respuesta del endpoint JSON /inv/getInventory/:classification_id.
type VehicleJSON struct {
	InvID            int    `json:"inv_id"`
	InvMake          string `json:"inv_make"`
	InvModel         string `json:"inv_model"`
	InvYear          int    `json:"inv_year"`
	InvPrice         string `json:"inv_price"`
	InvMiles         int    `json:"inv_miles"`
	InvColor         string `json:"inv_color"`
	ClassificationID int    `json:"classification_id"`
}

// ToVehicleJSON convierte las entidades a la respuesta JSON.
func ToVehicleJSON(vehicles []entity.Vehicle) []VehicleJSON {
	out := make([]VehicleJSON, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleJSON{
			InvID:            v.ID,
			InvMake:          v.Make,
			InvModel:         v.Model,
			InvYear:          v.Year,
			InvPrice:         v.Price.StringFixed(2),
			InvMiles:         v.Miles,
			InvColor:         v.Color,
			ClassificationID: v.ClassificationID,
		})
	}
	return out
}
