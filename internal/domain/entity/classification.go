package entity

// Classification agrupa vehículos del inventario bajo un nombre único (SUV, Sedan, etc.).
// Solo tiene flujo de creación y lectura: no se expone update ni delete.
type Classification struct {
	ID   int
	Name string
}
