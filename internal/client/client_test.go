package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/logging"
	"github.com/jmath/jmath/internal/server"
	"github.com/jmath/jmath/internal/tutor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, responses ...llm.MockResponse) (*Client, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	srv := server.New(tutor.NewService(mock, logging.Discard()), logging.Discard())
	ts := httptest.NewServer(srv.Router)
	t.Cleanup(ts.Close)
	return New(ts.URL, WithHTTPClient(ts.Client())), mock
}

func TestSolve(t *testing.T) {
	c, _ := newServer(t, llm.MockResponse{
		Text: `{"solution":[{"step_number":1,"description":"d1","core_concept":"인수분해"},{"step_number":2,"description":"d2","core_concept":"근의 공식"}]}`,
	})

	steps, err := c.Solve(context.Background(), "x^2 - 5x + 6 = 0")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 2, steps[1].StepNumber)
	assert.Equal(t, []string{"인수분해", "근의 공식"}, tutor.CoreConcepts(steps))
}

func TestExplainSimilarVisualize(t *testing.T) {
	c, mock := newServer(t,
		llm.MockResponse{Text: "설명"},
		llm.MockResponse{Text: `{"similar_problems":["p1","p2","p3"]}`},
		llm.MockResponse{Text: "graph TD; A-->B;"},
	)
	ctx := context.Background()

	explanation, err := c.Explain(ctx, "인수분해")
	require.NoError(t, err)
	assert.Equal(t, "설명", explanation)

	problems, err := c.GenerateSimilar(ctx, "x^2 = 4")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, problems)

	diagram, err := c.VisualizeConcepts(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "graph TD; A-->B;", diagram)

	assert.Equal(t, 3, mock.CallCount())
}

func TestAPIError(t *testing.T) {
	c, _ := newServer(t, llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 402, Message: "Insufficient credits"}})

	_, err := c.Explain(context.Background(), "c")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 402, apiErr.Status)
	assert.Equal(t, "API 호출 실패: Insufficient credits", apiErr.Message)
}

func TestAPIError_InvalidInput(t *testing.T) {
	c, mock := newServer(t)

	_, err := c.VisualizeConcepts(context.Background(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "유효하지 않은 개념 목록입니다.", apiErr.Message)
	assert.Zero(t, mock.CallCount())
}

func TestAPIError_NonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Explain(context.Background(), "c")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestRequestBody(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/visualize-concepts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"diagramSyntax":"graph TD; A-->B;"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL + "/").VisualizeConcepts(context.Background(), []string{"A", "A"})
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "A"}, got["concepts"])
}
