// Package extract turns raw contract text into structured contract records
// using the Gemini API. Extraction quality is not validated here; a failed
// extraction stage logs a warning and contributes an empty collection so the
// record still merges cleanly downstream.
package extract

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"github.com/greenbox/royaltyflow/internal/config"
	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/logging"
)

// DefaultModel is the Gemini model used for contract analysis.
const DefaultModel = "gemini-2.0-flash"

// Per-stage input caps keep prompts inside a single request.
const (
	partiesTextLimit = 12000
	worksTextLimit   = 12000
	sharesTextLimit  = 15000
	summaryTextLimit = 10000
)

const systemInstruction = "You are a precise legal document analyst specializing in music contracts. Always return valid JSON."

// Extractor extracts contract facts via the Gemini API.
type Extractor struct {
	client *genai.Client
	model  string
}

// New creates an extractor. The API key is resolved from configuration
// (GEMINI_API_KEY, falling back to GOOGLE_API_KEY).
func New(ctx context.Context) (*Extractor, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return nil, &errors.AuthenticationError{
			Service: "gemini",
			Message: "GEMINI_API_KEY not set - add it to the environment or a .env file",
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &Extractor{client: client, model: DefaultModel}, nil
}

// WithModel overrides the Gemini model.
func (e *Extractor) WithModel(model string) *Extractor {
	if model != "" {
		e.model = model
	}
	return e
}

// Parse extracts parties, works, royalty shares, and a summary from contract
// text, producing one record per input file. Individual stage failures are
// non-fatal; the stage contributes nothing.
func (e *Extractor) Parse(ctx context.Context, name, text string) (contracts.Record, error) {
	if strings.TrimSpace(text) == "" {
		return contracts.Record{}, errors.NewExtractionError(name, "", "no text could be extracted from the file", nil)
	}

	log := logging.Ctx(ctx)
	log.Info().Str("contract", name).Int("chars", len(text)).Msg("Analyzing contract")

	record := contracts.Record{
		Parties:       e.extractParties(ctx, name, text),
		Works:         e.extractWorks(ctx, name, text),
		RoyaltyShares: e.extractShares(ctx, name, text),
		Summary:       e.extractSummary(ctx, name, text),
	}

	log.Info().
		Str("contract", name).
		Int("parties", len(record.Parties)).
		Int("works", len(record.Works)).
		Int("royalty_shares", len(record.RoyaltyShares)).
		Msg("Extracted contract record")

	return record, nil
}

// generateJSON runs one JSON-mode generation call and unmarshals the reply.
func (e *Extractor) generateJSON(ctx context.Context, prompt string, out any) error {
	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](0.1),
			ResponseMIMEType:  "application/json",
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		})
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(resp.Text()), out)
}

func (e *Extractor) extractParties(ctx context.Context, name, text string) []contracts.Party {
	prompt := partiesPrompt(truncate(text, partiesTextLimit))

	var result struct {
		Parties []struct {
			Name           string `json:"name"`
			Role           string `json:"role"`
			AdditionalInfo string `json:"additional_info"`
		} `json:"parties"`
	}
	if err := e.generateJSON(ctx, prompt, &result); err != nil {
		logging.Warn().Err(err).Str("contract", name).Msg("Error extracting parties")
		return nil
	}

	parties := make([]contracts.Party, 0, len(result.Parties))
	for _, p := range result.Parties {
		if p.Name == "" {
			continue
		}
		role := p.Role
		if role == "" {
			role = "party"
		}
		parties = append(parties, contracts.Party{
			Name:           p.Name,
			Role:           role,
			AdditionalInfo: p.AdditionalInfo,
		})
	}
	return parties
}

func (e *Extractor) extractWorks(ctx context.Context, name, text string) []contracts.Work {
	prompt := worksPrompt(truncate(text, worksTextLimit))

	var result struct {
		Works []struct {
			Title          string `json:"title"`
			WorkType       string `json:"work_type"`
			AdditionalInfo string `json:"additional_info"`
		} `json:"works"`
	}
	if err := e.generateJSON(ctx, prompt, &result); err != nil {
		logging.Warn().Err(err).Str("contract", name).Msg("Error extracting works")
		return nil
	}

	works := make([]contracts.Work, 0, len(result.Works))
	for _, w := range result.Works {
		if w.Title == "" {
			continue
		}
		workType := w.WorkType
		if workType == "" {
			workType = "Work"
		}
		works = append(works, contracts.Work{
			Title:          w.Title,
			WorkType:       workType,
			AdditionalInfo: w.AdditionalInfo,
		})
	}
	return works
}

func (e *Extractor) extractShares(ctx context.Context, name, text string) []contracts.RoyaltyShare {
	prompt := sharesPrompt(truncate(text, sharesTextLimit))

	var result struct {
		RoyaltyShares []struct {
			PartyName   string   `json:"party_name"`
			RoyaltyType string   `json:"royalty_type"`
			Percentage  *float64 `json:"percentage"`
			Terms       string   `json:"terms"`
		} `json:"royalty_shares"`
	}
	if err := e.generateJSON(ctx, prompt, &result); err != nil {
		logging.Warn().Err(err).Str("contract", name).Msg("Error extracting royalty shares")
		return nil
	}

	shares := make([]contracts.RoyaltyShare, 0, len(result.RoyaltyShares))
	for _, r := range result.RoyaltyShares {
		if r.PartyName == "" || r.Percentage == nil {
			continue
		}
		royaltyType := r.RoyaltyType
		if royaltyType == "" {
			royaltyType = "other"
		}
		shares = append(shares, contracts.RoyaltyShare{
			PartyName:   r.PartyName,
			RoyaltyType: royaltyType,
			Percentage:  *r.Percentage,
			Terms:       r.Terms,
		})
	}
	return shares
}

func (e *Extractor) extractSummary(ctx context.Context, name, text string) string {
	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(summaryPrompt(truncate(text, summaryTextLimit))),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.3),
			MaxOutputTokens: 300,
		})
	if err != nil {
		logging.Warn().Err(err).Str("contract", name).Msg("Error generating summary")
		return ""
	}
	return strings.TrimSpace(resp.Text())
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
