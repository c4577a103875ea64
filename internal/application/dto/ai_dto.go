package dto

// ChatRequest mensaje del visitante más el contexto de empresa que el
// frontend ya tiene cargado (GET /company/:slug).
type ChatRequest struct {
	Message     string          `json:"message"`
	CompanyData *CompanyRAGData `json:"companyData"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AnalyzeFileRequest texto extraído de un correo a analizar.
type AnalyzeFileRequest struct {
	Text string `json:"text"`
}

// MailAnalysis campos extraídos de un courrier por el modelo. Claves en
// francés: las consume directamente el back-office.
type MailAnalysis struct {
	Expediteur   *string `json:"expediteur"`
	Destinataire *string `json:"destinataire"`
	Email        *string `json:"email"`
	Objet        *string `json:"objet"`
	Resume       *string `json:"resume"`
	Raw          string  `json:"raw,omitempty"` // respuesta cruda si el JSON no parseó
}
