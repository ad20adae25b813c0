package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/algo-drills/internal/api/middleware"
	"github.com/povarna/algo-drills/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/problems").
			To(handler.ListProblems).
			Doc("List enabled problems").
			Metadata(restfulspec.KeyOpenAPITags, []string{"problems"}).
			Writes([]ProblemInfo{}).
			Returns(200, "OK", []ProblemInfo{}))

	ws.
		Route(ws.POST("/solve/{problem}").
			To(handler.Solve).
			Doc("Solve one problem").
			Metadata(restfulspec.KeyOpenAPITags, []string{"problems"}).
			Param(ws.PathParameter("problem", "Problem name (longest-substring, container-with-most-water, longest-common-prefix, valid-palindrome, unique-marker)").DataType("string")).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Problem Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/history/{problem}").
			To(handler.History).
			Doc("Recent results for a problem").
			Metadata(restfulspec.KeyOpenAPITags, []string{"history"}).
			Param(ws.PathParameter("problem", "Problem name").DataType("string")).
			Param(ws.QueryParameter("limit", "Maximum number of results (default: 20)").DataType("integer").Required(false)).
			Writes([]models.SolveResult{}).
			Returns(200, "OK", []models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Problem Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
