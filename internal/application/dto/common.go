package dto

// Envelope cuerpo estándar de respuesta: { success, data?, count?, message? }.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK envuelve datos de una respuesta exitosa.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKCount envuelve un listado con su conteo.
func OKCount(data interface{}, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

// ErrorResponse cuerpo de error HTTP (success siempre false).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error construye un ErrorResponse.
func Error(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
