package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cognicore/yixiang/internal/textsrc"
	"github.com/cognicore/yixiang/pkg/yixiang"
)

// Handler serves the analysis API.
type Handler struct {
	engine *yixiang.Engine
	reader *textsrc.Reader
}

// NewHandler creates a handler; a nil reader uses the default size limit.
func NewHandler(engine *yixiang.Engine, reader *textsrc.Reader) *Handler {
	if reader == nil {
		reader = textsrc.New(0)
	}
	return &Handler{engine: engine, reader: reader}
}

// SetupRouter registers every route on a new gin engine.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = h.reader.MaxSize

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/parse", h.Parse)
		api.POST("/extract", h.Extract)
		api.POST("/relationships", h.Relationships)
		api.POST("/associations", h.Associations)
		api.POST("/stats", h.Stats)

		api.GET("/lexicon", h.Lexicon)

		api.GET("/reports", h.ListReports)
		api.GET("/reports/:id", h.GetReport)
		api.DELETE("/reports/:id", h.DeleteReport)
		api.POST("/reports/:id/rebuild", h.RebuildReport)
	}

	return r
}
