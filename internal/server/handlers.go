package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmath/jmath/internal/tutor"
)

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Problem string `json:"problem" binding:"required"`
}

// SolveResponse is the success body of POST /api/solve.
type SolveResponse struct {
	Solution json.RawMessage `json:"solution"`
}

// ExplainRequest is the body of POST /api/explain.
type ExplainRequest struct {
	Concept string `json:"concept" binding:"required"`
}

// ExplainResponse is the success body of POST /api/explain.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// SimilarRequest is the body of POST /api/generate-similar.
type SimilarRequest struct {
	Problem string `json:"problem" binding:"required"`
}

// SimilarResponse is the success body of POST /api/generate-similar.
type SimilarResponse struct {
	SimilarProblems json.RawMessage `json:"similar_problems"`
}

// VisualizeRequest is the body of POST /api/visualize-concepts.
type VisualizeRequest struct {
	Concepts []string `json:"concepts" binding:"required,min=1"`
}

// VisualizeResponse is the success body of POST /api/visualize-concepts.
type VisualizeResponse struct {
	DiagramSyntax string `json:"diagramSyntax"`
}

// Success bodies go through PureJSON: Mermaid arrows ("-->") and LaTeX
// must reach the browser unescaped.

// POST /api/solve
func (s *Server) solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalid(c, tutor.Solve, err)
		return
	}

	solution, err := s.svc.Solve(c.Request.Context(), req.Problem)
	if err != nil {
		s.fail(c, tutor.Solve, err)
		return
	}
	c.PureJSON(http.StatusOK, SolveResponse{Solution: solution})
}

// POST /api/explain
func (s *Server) explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalid(c, tutor.Explain, err)
		return
	}

	explanation, err := s.svc.Explain(c.Request.Context(), req.Concept)
	if err != nil {
		s.fail(c, tutor.Explain, err)
		return
	}
	c.PureJSON(http.StatusOK, ExplainResponse{Explanation: explanation})
}

// POST /api/generate-similar
func (s *Server) generateSimilar(c *gin.Context) {
	var req SimilarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalid(c, tutor.Similar, err)
		return
	}

	problems, err := s.svc.GenerateSimilar(c.Request.Context(), req.Problem)
	if err != nil {
		s.fail(c, tutor.Similar, err)
		return
	}
	c.PureJSON(http.StatusOK, SimilarResponse{SimilarProblems: problems})
}

// POST /api/visualize-concepts
func (s *Server) visualizeConcepts(c *gin.Context) {
	var req VisualizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalid(c, tutor.Visualize, err)
		return
	}

	diagram, err := s.svc.VisualizeConcepts(c.Request.Context(), req.Concepts)
	if err != nil {
		s.fail(c, tutor.Visualize, err)
		return
	}
	c.PureJSON(http.StatusOK, VisualizeResponse{DiagramSyntax: diagram})
}
