package dto

// Response envolvente uniforme de la API: {success, message?, data?, ...}.
// Ningún handler deja escapar errores crudos fuera de esta forma.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// OK respuesta de éxito con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage respuesta de éxito con mensaje y datos opcionales.
func OKMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList respuesta de éxito para listados, con contador.
func OKList(count int, data interface{}) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Fail respuesta de error con mensaje legible.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FieldError error de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
