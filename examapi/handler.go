package examapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-coach-backend/logger"
	"exam-coach-backend/questions"
)

const defaultLanguage = "English"

// Coach is the question service the handlers depend on; implemented by
// *questions.Service.
type Coach interface {
	GenerateQuestion(ctx context.Context, subject, topic, language string) questions.Question
	ExplainQuestion(ctx context.Context, questionText, language string, hintOnly bool) string
}

type Handler struct {
	coach Coach
	log   *logger.Logger
	// reported by /healthcheck
	provider string
	model    string
}

func NewHandler(coach Coach, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{coach: coach, log: log}
}

// SetUpstream records which completion backend serves requests.
func (h *Handler) SetUpstream(provider, model string) {
	h.provider = provider
	h.model = model
}

type generateRequest struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

type generateResponse struct {
	OK       bool               `json:"ok"`
	Question questions.Question `json:"question"`
}

type explainRequest struct {
	QuestionText string `json:"questionText"`
	Language     string `json:"language"`
	// only a literal JSON true enables hint mode
	Hint json.RawMessage `json:"hint"`
}

type explainResponse struct {
	OK          bool   `json:"ok"`
	Explanation string `json:"explanation"`
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/generate", h.generate)
	r.POST("/explain", h.explain)
	r.GET("/healthcheck", h.health)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Subject == "" || req.Topic == "" {
		h.log.Warn("generate: invalid request", "request_id", c.GetString("request_id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject and topic required"})
		return
	}
	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}

	q := h.coach.GenerateQuestion(c.Request.Context(), req.Subject, req.Topic, lang)
	c.JSON(http.StatusOK, generateResponse{OK: true, Question: q})
}

func (h *Handler) explain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuestionText == "" {
		h.log.Warn("explain: invalid request", "request_id", c.GetString("request_id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionText required"})
		return
	}
	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}
	hint := string(req.Hint) == "true"

	explanation := h.coach.ExplainQuestion(c.Request.Context(), req.QuestionText, lang, hint)
	c.JSON(http.StatusOK, explainResponse{OK: true, Explanation: explanation})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "provider": h.provider, "model": h.model})
}
