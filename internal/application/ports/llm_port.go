package ports

import "context"

// ChatMessage mensaje del protocolo de chat-completions.
type ChatMessage struct {
	Role    string // system | user | assistant
	Content string
}

// CompletionRequest parámetros de una completion.
type CompletionRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// LLMService puerto de salida hacia el servicio de completions (OpenAI u otro).
// Cualquier adaptador (OpenAI, mock de tests) debe implementar esta interfaz;
// la aplicación solo conoce este contrato (DIP). El contexto debe llevar un
// timeout: es la única llamada externa con latencias de decenas de segundos.
type LLMService interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
