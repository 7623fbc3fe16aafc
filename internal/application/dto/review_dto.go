package dto

// AddReviewForm alta de reseña desde la página de detalle del vehículo.
// El account_id del autor NO viaja en el formulario: se toma siempre del
// token de sesión del caller.
type AddReviewForm struct {
	VehicleID string `form:"inv_id"`
	Text      string `form:"review_text"`
}

// EditReviewForm edición o borrado de una reseña propia.
type EditReviewForm struct {
	ReviewID string `form:"review_id"`
	Text     string `form:"review_text"`
}
