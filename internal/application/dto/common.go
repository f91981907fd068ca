package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeQuery rango de fechas de los reportes (formato YYYY-MM-DD).
type DateRangeQuery struct {
	From string `query:"desde"`
	To   string `query:"hasta"`
}
