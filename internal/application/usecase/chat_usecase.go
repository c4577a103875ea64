package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/ports"
	"github.com/domicilia/backoffice-api/internal/domain"
)

const chatTimeout = 30 * time.Second

// ChatUseCase asistente conversacional de la web pública de cada tenant.
// El contexto de empresa llega en la petición (el frontend ya lo tiene
// cargado); aquí solo se serializa dentro del prompt de sistema.
type ChatUseCase struct {
	llm ports.LLMService
}

// NewChatUseCase construye el caso de uso inyectando el puerto LLMService.
func NewChatUseCase(llm ports.LLMService) *ChatUseCase {
	return &ChatUseCase{llm: llm}
}

// Chat responde al mensaje del visitante con el contexto del tenant.
// Timeout de 30 s: el asistente puede tardar varios segundos en generar.
func (uc *ChatUseCase) Chat(ctx context.Context, in dto.ChatRequest) (*dto.ChatResponse, error) {
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message es obligatorio", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	reply, err := uc.llm.Complete(ctx, ports.CompletionRequest{
		Messages: []ports.ChatMessage{
			{Role: "system", Content: uc.systemPrompt(in.CompanyData)},
			{Role: "user", Content: in.Message},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

// systemPrompt arma el prompt de sistema en francés con el bloque de datos
// de la empresa serializado en JSON.
func (uc *ChatUseCase) systemPrompt(data *dto.CompanyRAGData) string {
	companyName := "l'entreprise"
	contextBlock := "{}"
	if data != nil {
		companyName = data.Entreprise.Nom
		if b, err := json.MarshalIndent(data, "", "  "); err == nil {
			contextBlock = string(b)
		}
	}
	return fmt.Sprintf(`Tu es l'assistant virtuel de %s, une entreprise de domiciliation commerciale.

Tu réponds aux questions des visiteurs sur les services de domiciliation, les offres de bureau virtuel, les documents à fournir et les modalités pratiques.

Règles :
- Réponds uniquement à partir des données ci-dessous. Si l'information n'y figure pas, dis-le et invite le visiteur à contacter l'entreprise.
- Réponds en français, de manière concise et professionnelle.
- Ne donne jamais de conseil juridique ou fiscal.

Données de l'entreprise :
%s`, companyName, contextBlock)
}
