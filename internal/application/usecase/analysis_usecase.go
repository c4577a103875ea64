package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/ports"
	"github.com/domicilia/backoffice-api/internal/domain"
)

const analysisTimeout = 60 * time.Second

const analysisPrompt = `Tu extrais les métadonnées d'un courrier postal numérisé.

À partir du texte fourni, renvoie UNIQUEMENT un objet JSON avec ces clés :
- "expediteur" : nom de l'expéditeur (null si introuvable)
- "destinataire" : nom du destinataire (null si introuvable)
- "email" : adresse email trouvée dans le courrier (null si introuvable)
- "objet" : objet du courrier en une ligne (null si introuvable)
- "resume" : résumé du contenu en deux phrases maximum (null si introuvable)

Ne renvoie rien d'autre que le JSON.`

// AnalysisUseCase extrae metadatos estructurados del texto de un correo
// escaneado (expéditeur, destinataire, objet, résumé).
type AnalysisUseCase struct {
	llm ports.LLMService
}

// NewAnalysisUseCase construye el caso de uso de análisis documental.
func NewAnalysisUseCase(llm ports.LLMService) *AnalysisUseCase {
	return &AnalysisUseCase{llm: llm}
}

// Analyze pide al modelo los campos del courrier. Temperatura 0: extracción,
// no generación. Si la respuesta no es JSON parseable se devuelve cruda en
// Raw en lugar de fallar: el operador decide qué hacer con ella.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, in dto.AnalyzeFileRequest) (*dto.MailAnalysis, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("%w: text es obligatorio", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	raw, err := uc.llm.Complete(ctx, ports.CompletionRequest{
		Messages: []ports.ChatMessage{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: in.Text},
		},
		Temperature: 0,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	var out dto.MailAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &out); err != nil {
		return &dto.MailAnalysis{Raw: raw}, nil
	}
	return &out, nil
}

// stripCodeFences quita las vallas markdown con las que algunos modelos
// envuelven el JSON aunque se les pida lo contrario.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
