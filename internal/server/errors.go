package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/tutor"
)

// errorBody is the failure envelope of every endpoint.
type errorBody struct {
	Error string `json:"error"`
}

const (
	msgNotConfigured  = "서버에 API 키가 설정되지 않았습니다."
	msgUpstreamPrefix = "API 호출 실패: "
	msgMalformed      = "AI 답변의 형식이 올바르지 않습니다."
	msgInternalPrefix = "서버 내부 오류: "
)

var invalidInputMessages = map[tutor.Capability]string{
	tutor.Solve:     "잘못된 문제 형식입니다.",
	tutor.Explain:   "잘못된 개념 요청입니다.",
	tutor.Similar:   "유효하지 않은 원본 문제입니다.",
	tutor.Visualize: "유효하지 않은 개념 목록입니다.",
}

var emptyCompletionMessages = map[tutor.Capability]string{
	tutor.Solve:     "AI로부터 유효한 답변을 받지 못했습니다.",
	tutor.Explain:   "AI로부터 유효한 설명을 받지 못했습니다.",
	tutor.Similar:   "AI로부터 유효한 답변을 받지 못했습니다.",
	tutor.Visualize: "AI로부터 유효한 다이어그램을 받지 못했습니다.",
}

// classify maps an error from the tutor service to the response status and
// message.
func classify(capability tutor.Capability, err error) (int, string) {
	var up *llm.ErrUpstream
	var malformed *tutor.ErrMalformed

	switch {
	case errors.Is(err, tutor.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputMessages[capability]
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured
	case errors.As(err, &up):
		status := up.StatusCode
		if status < 100 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, msgUpstreamPrefix + up.Message
	case errors.Is(err, tutor.ErrEmptyCompletion):
		return http.StatusInternalServerError, emptyCompletionMessages[capability]
	case errors.As(err, &malformed):
		return http.StatusInternalServerError, msgMalformed
	default:
		return http.StatusInternalServerError, msgInternalPrefix + err.Error()
	}
}

// fail logs err with its capability and writes the error envelope.
func (s *Server) fail(c *gin.Context, capability tutor.Capability, err error) {
	status, msg := classify(capability, err)

	entry := s.log.WithFields(logrus.Fields{
		"capability": capability.String(),
		"status":     status,
		"request_id": c.GetString(requestIDKey),
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}

	c.PureJSON(status, errorBody{Error: msg})
}

// invalid answers a request whose body failed to bind.
func (s *Server) invalid(c *gin.Context, capability tutor.Capability, err error) {
	s.log.WithFields(logrus.Fields{
		"capability": capability.String(),
		"request_id": c.GetString(requestIDKey),
	}).WithError(err).Warn("invalid request body")

	c.PureJSON(http.StatusBadRequest, errorBody{Error: invalidInputMessages[capability]})
}
