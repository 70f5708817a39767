package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/logging"
	"github.com/jmath/jmath/internal/tutor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(responses ...llm.MockResponse) (*Server, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(tutor.NewService(mock, logging.Discard()), logging.Discard()), mock
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body.Error
}

func TestSolve_RoundTrip(t *testing.T) {
	completion := "```json\n" +
		`{"solution":[{"step_number":1,"description":"$x^2-5x+6=0$ 을 인수분해합니다.","core_concept":"인수분해"}]}` +
		"\n```"
	s, mock := newTestServer(llm.MockResponse{Text: completion})

	w := do(t, s, http.MethodPost, "/api/solve", `{"problem":"x^2 - 5x + 6 = 0의 해를 구하시오."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"solution":[{"step_number":1,"description":"$x^2-5x+6=0$ 을 인수분해합니다.","core_concept":"인수분해"}]}`,
		w.Body.String())
	assert.Equal(t, 1, mock.CallCount())
}

func TestExplain_TextPassedThrough(t *testing.T) {
	s, _ := newTestServer(llm.MockResponse{Text: "## 인수분해\n\n$a^2 - b^2 = (a-b)(a+b)$"})

	w := do(t, s, http.MethodPost, "/api/explain", `{"concept":"인수분해"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExplainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "## 인수분해\n\n$a^2 - b^2 = (a-b)(a+b)$", resp.Explanation)
}

func TestGenerateSimilar_RoundTrip(t *testing.T) {
	s, mock := newTestServer(llm.MockResponse{Text: `{"similar_problems":["a","b","c"]}`})

	w := do(t, s, http.MethodPost, "/api/generate-similar", `{"problem":"x^2 = 4"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"similar_problems":["a","b","c"]}`, w.Body.String())
	assert.Contains(t, mock.LastPrompt(), "x^2 = 4")
}

func TestVisualize_ArrowsNotEscaped(t *testing.T) {
	s, _ := newTestServer(llm.MockResponse{Text: "graph TD; A-->B;"})

	w := do(t, s, http.MethodPost, "/api/visualize-concepts", `{"concepts":["A","B"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"diagramSyntax":"graph TD; A-->B;"}`, strings.TrimSpace(w.Body.String()))
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"solve missing", "/api/solve", `{}`, "잘못된 문제 형식입니다."},
		{"solve empty", "/api/solve", `{"problem":""}`, "잘못된 문제 형식입니다."},
		{"solve number", "/api/solve", `{"problem":42}`, "잘못된 문제 형식입니다."},
		{"solve malformed body", "/api/solve", `{"problem":`, "잘못된 문제 형식입니다."},
		{"explain missing", "/api/explain", `{}`, "잘못된 개념 요청입니다."},
		{"explain array", "/api/explain", `{"concept":["a"]}`, "잘못된 개념 요청입니다."},
		{"similar missing", "/api/generate-similar", `{}`, "유효하지 않은 원본 문제입니다."},
		{"similar null", "/api/generate-similar", `{"problem":null}`, "유효하지 않은 원본 문제입니다."},
		{"visualize missing", "/api/visualize-concepts", `{}`, "유효하지 않은 개념 목록입니다."},
		{"visualize empty", "/api/visualize-concepts", `{"concepts":[]}`, "유효하지 않은 개념 목록입니다."},
		{"visualize string", "/api/visualize-concepts", `{"concepts":"A"}`, "유효하지 않은 개념 목록입니다."},
		{"visualize non-string items", "/api/visualize-concepts", `{"concepts":[1,2]}`, "유효하지 않은 개념 목록입니다."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestServer()
			w := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorMessage(t, w))
			assert.Zero(t, mock.CallCount(), "no completion call for invalid input")
		})
	}
}

func TestNotConfigured(t *testing.T) {
	s := New(tutor.NewService(nil, logging.Discard()), logging.Discard())

	for _, tt := range []struct{ path, body string }{
		{"/api/solve", `{"problem":"p"}`},
		{"/api/explain", `{"concept":"c"}`},
		{"/api/generate-similar", `{"problem":"p"}`},
		{"/api/visualize-concepts", `{"concepts":["c"]}`},
	} {
		w := do(t, s, http.MethodPost, tt.path, tt.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tt.path)
		assert.Equal(t, "서버에 API 키가 설정되지 않았습니다.", errorMessage(t, w), tt.path)
	}

	// Validation still runs first.
	w := do(t, s, http.MethodPost, "/api/solve", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpstreamStatusPassedThrough(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "payment required",
			err:        &llm.ErrUpstream{StatusCode: 402, Message: "Insufficient credits"},
			wantStatus: 402,
			wantMsg:    "API 호출 실패: Insufficient credits",
		},
		{
			name:       "rate limit",
			err:        &llm.ErrRateLimit{Upstream: &llm.ErrUpstream{StatusCode: 429, Message: "Too Many Requests"}},
			wantStatus: 429,
			wantMsg:    "API 호출 실패: Too Many Requests",
		},
		{
			name:       "unauthorized",
			err:        &llm.ErrUpstream{StatusCode: 401, Message: "No auth credentials found"},
			wantStatus: 401,
			wantMsg:    "API 호출 실패: No auth credentials found",
		},
		{
			name:       "out of range status",
			err:        &llm.ErrUpstream{StatusCode: 0, Message: "weird"},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "API 호출 실패: weird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(llm.MockResponse{Err: tt.err})
			w := do(t, s, http.MethodPost, "/api/explain", `{"concept":"c"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

func TestNetworkFailureIsInternal(t *testing.T) {
	s, _ := newTestServer(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: assert.AnError}})

	w := do(t, s, http.MethodPost, "/api/solve", `{"problem":"p"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(errorMessage(t, w), "서버 내부 오류: "))
}

func TestEmptyCompletion(t *testing.T) {
	tests := []struct {
		path string
		body string
		want string
	}{
		{"/api/solve", `{"problem":"p"}`, "AI로부터 유효한 답변을 받지 못했습니다."},
		{"/api/explain", `{"concept":"c"}`, "AI로부터 유효한 설명을 받지 못했습니다."},
		{"/api/generate-similar", `{"problem":"p"}`, "AI로부터 유효한 답변을 받지 못했습니다."},
		{"/api/visualize-concepts", `{"concepts":["c"]}`, "AI로부터 유효한 다이어그램을 받지 못했습니다."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s, _ := newTestServer(llm.MockResponse{Text: ""})
			w := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.want, errorMessage(t, w))
		})
	}
}

func TestMalformedCompletion(t *testing.T) {
	for _, path := range []string{"/api/solve", "/api/generate-similar"} {
		t.Run(path, func(t *testing.T) {
			s, _ := newTestServer(llm.MockResponse{Text: "the answer is 2"})
			w := do(t, s, http.MethodPost, path, `{"problem":"p"}`)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "AI 답변의 형식이 올바르지 않습니다.", errorMessage(t, w))
		})
	}
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer()

	w := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestPanicRecovered(t *testing.T) {
	s, _ := newTestServer()
	s.Router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := do(t, s, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "서버 내부 오류: boom", errorMessage(t, w))
}

func TestIndexPage(t *testing.T) {
	s, _ := newTestServer()

	w := do(t, s, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "J-Math")
	assert.Contains(t, w.Body.String(), "풀어보기")
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer()
	w := do(t, s, http.MethodGet, "/api/solve", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
