package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/algo-drills/internal/api/middleware"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
	"github.com/povarna/algo-drills/internal/problems"
	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 20

// HistoryReader lists stored results for a problem, newest first
type HistoryReader interface {
	RecentResults(ctx context.Context, problem models.Problem, limit int) ([]models.SolveResult, error)
}

type Handler struct {
	catalog  *problems.Catalog
	executor *executor.Executor
	history  HistoryReader
	logger   *zerolog.Logger
}

func NewHandler(catalog *problems.Catalog, executor *executor.Executor, history HistoryReader, logger *zerolog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		executor: executor,
		history:  history,
		logger:   logger,
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:   "ok",
		Version:  "1.0.0",
		Problems: len(h.catalog.List()),
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/problems
func (h *Handler) ListProblems(req *restful.Request, resp *restful.Response) {
	solvers := h.catalog.List()

	infos := make([]ProblemInfo, 0, len(solvers))
	for _, solver := range solvers {
		infos = append(infos, ProblemInfo{
			Name:        string(solver.Problem()),
			Description: solver.Description(),
		})
	}

	resp.WriteHeaderAndEntity(http.StatusOK, infos)
}

// POST /api/v1/solve/{problem}
// Body: SolveRequest. The path parameter wins over the problem in the body.
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	solveRequest.Problem = models.Problem(req.PathParameter("problem"))

	h.logger.Info().
		Str("request_id", solveRequest.RequestID).
		Str("problem", string(solveRequest.Problem)).
		Msg("Start solve")

	result, err := h.executor.Execute(req.Request.Context(), solveRequest)
	if err != nil {
		status := middleware.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("Solve failed")
		}
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/history/{problem}?limit=N
func (h *Handler) History(req *restful.Request, resp *restful.Response) {
	problem := models.Problem(req.PathParameter("problem"))
	if !problem.Valid() {
		middleware.HandleError(resp, fmt.Errorf("%w: %s", problems.ErrProblemNotFound, problem), http.StatusNotFound)
		return
	}

	limit := defaultHistoryLimit
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			middleware.HandleError(resp, fmt.Errorf("%w: limit must be a positive integer", problems.ErrInvalidArgument), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	if h.history == nil {
		resp.WriteHeaderAndEntity(http.StatusOK, []models.SolveResult{})
		return
	}

	results, err := h.history.RecentResults(req.Request.Context(), problem, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("problem", string(problem)).Msg("Failed to read history")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.SolveResult{}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, results)
}
