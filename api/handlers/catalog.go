// ABOUTME: Catalog handlers listing the selectable tones and voices

package handlers

import (
	"context"
	"net/http"

	"gistfm-api/api/dto/mappers"
	"gistfm-api/api/dto/responses"
	"gistfm-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// VoicePreference reads the remembered voice
type VoicePreference interface {
	Voice(ctx context.Context) domain.Voice
}

// CatalogHandler serves the static option lists
type CatalogHandler struct {
	prefs VoicePreference
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(prefs VoicePreference) *CatalogHandler {
	return &CatalogHandler{prefs: prefs}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listVoices",
		Method:      http.MethodGet,
		Path:        "/voices",
		Summary:     "List narrator voices",
		Tags:        []string{"Catalog"},
	}, h.Voices)

	huma.Register(api, huma.Operation{
		OperationID: "listTones",
		Method:      http.MethodGet,
		Path:        "/tones",
		Summary:     "List script tones",
		Tags:        []string{"Catalog"},
	}, h.Tones)
}

// VoicesOutput defines the output for Voices
type VoicesOutput struct {
	Body responses.VoicesResponse
}

// Voices handles GET /voices
func (h *CatalogHandler) Voices(ctx context.Context, input *struct{}) (*VoicesOutput, error) {
	return &VoicesOutput{Body: *mappers.ToVoicesResponse(h.prefs.Voice(ctx))}, nil
}

// TonesOutput defines the output for Tones
type TonesOutput struct {
	Body responses.TonesResponse
}

// Tones handles GET /tones
func (h *CatalogHandler) Tones(ctx context.Context, input *struct{}) (*TonesOutput, error) {
	return &TonesOutput{Body: *mappers.ToTonesResponse()}, nil
}
