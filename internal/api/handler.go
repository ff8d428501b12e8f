package api

import (
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
	"github.com/searchlite/suggest-api/internal/suggest"
)

const defaultLimit = 5

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	resolver *suggest.Resolver
	logger   *zerolog.Logger
}

func NewHandler(resolver *suggest.Resolver, logger *zerolog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// GET /search/suggestions?q=<string>&limit=<int>
// Always answers 200 with a SuggestionsResponse; downstream failures degrade
// through the resolver's fallback chain instead of surfacing as errors.
func (h *Handler) Suggestions(req *restful.Request, resp *restful.Response) {
	query := req.QueryParameter("q")

	limit := defaultLimit
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		} else {
			h.logger.Warn().Str("limit", limitStr).Msg("Invalid limit, using default 5")
		}
	}

	ctx := req.Request.Context()
	result := h.resolver.Resolve(ctx, query, limit)

	h.logger.Info().
		Str("query", result.Query).
		Int("count", len(result.Suggestions)).
		Msg("Suggestions resolved")

	if err := resp.WriteHeaderAndEntity(http.StatusOK, result); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	if err := resp.WriteHeaderAndEntity(http.StatusOK, healthResponse); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}
