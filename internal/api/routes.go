package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/searchlite/suggest-api/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/search").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/suggestions").
			To(handler.Suggestions).
			Doc("Autocomplete suggestions for a partial search query").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.QueryParameter("q", "Partial search query (min 2 characters after trimming)").DataType("string").Required(true)).
			Param(ws.QueryParameter("limit", "Maximum number of suggestions (clamped to [1,10], default: 5)").DataType("integer").Required(false)).
			Writes(models.SuggestionsResponse{}).
			Returns(200, "OK", models.SuggestionsResponse{}))

	container.Add(ws)

	health := new(restful.WebService)

	health.
		Path("/health").
		Produces(restful.MIME_JSON)

	health.
		Route(health.GET("").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	container.Add(health)
}
