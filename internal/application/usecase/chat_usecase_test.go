package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain"
)

func TestChat_ArmaPromptConContextoDeEmpresa(t *testing.T) {
	llm := &fakeLLM{reply: "Bonjour ! Nos offres commencent à 29,90 €/mois."}
	uc := usecase.NewChatUseCase(llm)

	out, err := uc.Chat(context.Background(), dto.ChatRequest{
		Message: "Quelles sont vos offres ?",
		CompanyData: &dto.CompanyRAGData{
			Entreprise: dto.RAGEntreprise{Nom: "Acme Domiciliation"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour ! Nos offres commencent à 29,90 €/mois.", out.Reply)

	require.Len(t, llm.lastReq.Messages, 2)
	assert.Equal(t, "system", llm.lastReq.Messages[0].Role)
	assert.Contains(t, llm.lastReq.Messages[0].Content, "Acme Domiciliation")
	assert.Contains(t, llm.lastReq.Messages[0].Content, "domiciliation commerciale")
	assert.Equal(t, "Quelles sont vos offres ?", llm.lastReq.Messages[1].Content)
	assert.Equal(t, 0.3, llm.lastReq.Temperature)
	assert.Equal(t, 2000, llm.lastReq.MaxTokens)
}

func TestChat_SinContextoUsaPromptGenerico(t *testing.T) {
	llm := &fakeLLM{reply: "Bonjour"}
	uc := usecase.NewChatUseCase(llm)

	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "Bonjour"})
	require.NoError(t, err)
	assert.Contains(t, llm.lastReq.Messages[0].Content, "l'entreprise")
}

func TestChat_MensajeVacio(t *testing.T) {
	uc := usecase.NewChatUseCase(&fakeLLM{})

	_, err := uc.Chat(context.Background(), dto.ChatRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChat_FalloDelModelo(t *testing.T) {
	uc := usecase.NewChatUseCase(&fakeLLM{err: errors.New("rate limited")})

	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "Bonjour"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAnalyze_ParseaJSONDelModelo(t *testing.T) {
	llm := &fakeLLM{reply: `{"expediteur":"URSSAF","destinataire":"SARL Dupont","email":null,"objet":"Appel de cotisations","resume":"Avis d'échéance du premier trimestre."}`}
	uc := usecase.NewAnalysisUseCase(llm)

	out, err := uc.Analyze(context.Background(), dto.AnalyzeFileRequest{Text: "Courrier URSSAF..."})
	require.NoError(t, err)

	require.NotNil(t, out.Expediteur)
	assert.Equal(t, "URSSAF", *out.Expediteur)
	assert.Nil(t, out.Email)
	assert.Empty(t, out.Raw)
	assert.Equal(t, 0.0, llm.lastReq.Temperature, "extracción con temperatura cero")
	assert.Equal(t, 500, llm.lastReq.MaxTokens)
}

func TestAnalyze_QuitaVallasMarkdown(t *testing.T) {
	llm := &fakeLLM{reply: "```json\n{\"expediteur\":\"La Poste\"}\n```"}
	uc := usecase.NewAnalysisUseCase(llm)

	out, err := uc.Analyze(context.Background(), dto.AnalyzeFileRequest{Text: "texte"})
	require.NoError(t, err)
	require.NotNil(t, out.Expediteur)
	assert.Equal(t, "La Poste", *out.Expediteur)
}

func TestAnalyze_RespuestaNoJSONSeDevuelveCruda(t *testing.T) {
	llm := &fakeLLM{reply: "Je ne peux pas analyser ce document."}
	uc := usecase.NewAnalysisUseCase(llm)

	out, err := uc.Analyze(context.Background(), dto.AnalyzeFileRequest{Text: "texte"})
	require.NoError(t, err, "una respuesta no parseable no es un fallo")
	assert.Equal(t, "Je ne peux pas analyser ce document.", out.Raw)
	assert.Nil(t, out.Expediteur)
}

func TestAnalyze_TextoVacio(t *testing.T) {
	uc := usecase.NewAnalysisUseCase(&fakeLLM{})

	_, err := uc.Analyze(context.Background(), dto.AnalyzeFileRequest{Text: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
