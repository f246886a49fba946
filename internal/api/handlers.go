package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/relations"
)

type textRequest struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

type relationshipsRequest struct {
	Text         string   `json:"text"`
	ImageryWords []string `json:"imageryWords"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Analyze accepts either a JSON body {source, text} or a multipart upload
// in the "file" field, and returns the stored report.
func (h *Handler) Analyze(c *gin.Context) {
	source, text, err := h.readSource(c)
	if err != nil {
		writeError(c, err)
		return
	}

	r, err := h.engine.Analyze(c.Request.Context(), source, text)
	if err != nil {
		writeError(c, err)
		return
	}

	log.Printf("Analyzed %s: %d poems, report %s", source, r.PoemCount, r.ID)
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) readSource(c *gin.Context) (string, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", "", err
		}
		defer f.Close()

		doc, err := h.reader.Read(file.Filename, f)
		if err != nil {
			return "", "", err
		}
		return doc.Name, doc.Text, nil
	}

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput)
	}
	if req.Source == "" {
		req.Source = "inline"
	}
	return req.Source, req.Text, nil
}

// Parse splits text into poems.
func (h *Handler) Parse(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput))
		return
	}
	c.JSON(http.StatusOK, gin.H{"poems": h.engine.ParsePoems(req.Text)})
}

// Extract counts imagery terms in text.
func (h *Handler) Extract(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput))
		return
	}
	c.JSON(http.StatusOK, gin.H{"imagery": h.engine.ExtractImagery(req.Text)})
}

// Relationships counts imagery/common-word pairs in text.
func (h *Handler) Relationships(c *gin.Context) {
	var req relationshipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput))
		return
	}
	c.JSON(http.StatusOK, gin.H{"relationships": h.engine.ExtractWordRelationships(req.Text, req.ImageryWords)})
}

// Associations parses text and runs the corpus-wide association pass.
func (h *Handler) Associations(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput))
		return
	}
	poems := h.engine.ParsePoems(req.Text)
	c.JSON(http.StatusOK, gin.H{"associations": h.engine.AnalyzeImageryWordAssociations(poems)})
}

// Stats parses text and returns global statistics without storing them.
func (h *Handler) Stats(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("bad request body: %v: %w", err, internalerr.ErrInvalidInput))
		return
	}
	poems := h.engine.ParsePoems(req.Text)
	poems = relations.AttachAssociations(poems, h.engine.AnalyzeImageryWordAssociations(poems))
	c.JSON(http.StatusOK, h.engine.CalculateGlobalStats(poems))
}

// Lexicon describes the active lexicon.
func (h *Handler) Lexicon(c *gin.Context) {
	lex := h.engine.Lexicon()
	c.JSON(http.StatusOK, gin.H{
		"stats":       lex.Stats(),
		"terms":       lex.Terms(),
		"taxonomy":    lex.Taxonomy(),
		"commonWords": lex.CommonWords(),
	})
}

// ListReports lists stored report summaries.
func (h *Handler) ListReports(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(c, fmt.Errorf("limit %q: %w", s, internalerr.ErrInvalidInput))
			return
		}
		limit = n
	}

	list, err := h.engine.ListReports(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list})
}

// GetReport returns one stored report.
func (h *Handler) GetReport(c *gin.Context) {
	r, err := h.engine.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteReport removes a stored report.
func (h *Handler) DeleteReport(c *gin.Context) {
	if err := h.engine.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RebuildReport re-analyzes a stored report with the current lexicon and
// returns the new report.
func (h *Handler) RebuildReport(c *gin.Context) {
	r, err := h.engine.RebuildReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// writeError maps sentinel errors to status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, internalerr.ErrInvalidInput), errors.Is(err, internalerr.ErrNotPoemFormatted):
		status = http.StatusBadRequest
	case errors.Is(err, internalerr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, internalerr.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Printf("Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
