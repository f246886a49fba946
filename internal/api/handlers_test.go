package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/yixiang/internal/textsrc"
	"github.com/cognicore/yixiang/pkg/yixiang"
	"github.com/cognicore/yixiang/pkg/yixiang/store/memstore"
)

const corpus = `1.静夜思
床前明月光，疑是地上霜。
举头望明月，低头思故乡。
2.月下独酌
花间一壶酒，独酌无相亲。
举杯邀明月，对影成三人。`

func setupTestRouter(t *testing.T, withStore bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	opts := yixiang.Options{}
	if withStore {
		opts.Store = memstore.New()
	}
	engine := yixiang.New(opts)
	t.Cleanup(func() { engine.Close() })

	return SetupRouter(NewHandler(engine, textsrc.New(0)))
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestAnalyzeReportLifecycle(t *testing.T) {
	r := setupTestRouter(t, true)

	w := doJSON(t, r, http.MethodPost, "/api/analyze", gin.H{"source": "唐诗.txt", "text": corpus})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	w = doJSON(t, r, http.MethodGet, "/api/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports, ok := decode(t, w)["reports"].([]any)
	require.True(t, ok)
	assert.Len(t, reports, 1)

	w = doJSON(t, r, http.MethodGet, "/api/reports/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, "/api/reports/"+id+"/rebuild", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEqual(t, id, decode(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, "/api/reports/missing/rebuild", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/reports/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reports/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode(t, w), "error")
}

func TestAnalyzeUpload(t *testing.T) {
	r := setupTestRouter(t, true)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "poems.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(corpus))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Equal(t, "poems.txt", out["source"])
}

func TestAnalyzeUploadUnsupported(t *testing.T) {
	r := setupTestRouter(t, true)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "poems.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeErrors(t *testing.T) {
	r := setupTestRouter(t, true)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"blank text", gin.H{"text": "   "}, http.StatusBadRequest},
		{"not poem formatted", gin.H{"text": "床前明月光\n疑是地上霜"}, http.StatusBadRequest},
		{"malformed body", "not an object", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/analyze", tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, decode(t, w), "error")
		})
	}
}

func TestReportsWithoutStore(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/api/reports", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/analyze", gin.H{"text": corpus})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListReportsBadLimit(t *testing.T) {
	r := setupTestRouter(t, true)

	w := doJSON(t, r, http.MethodGet, "/api/reports?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseAndExtract(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/parse", gin.H{"text": corpus})
	require.Equal(t, http.StatusOK, w.Code)
	poems, ok := decode(t, w)["poems"].([]any)
	require.True(t, ok)
	assert.Len(t, poems, 2)

	w = doJSON(t, r, http.MethodPost, "/api/extract", gin.H{"text": "举头望明月，低头思故乡"})
	require.Equal(t, http.StatusOK, w.Code)
	imagery, ok := decode(t, w)["imagery"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, imagery)
}

func TestRelationshipsAndAssociations(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/relationships", gin.H{
		"text":         "明月松间照。",
		"imageryWords": []string{"月", "松"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	rels, ok := decode(t, w)["relationships"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, rels)

	w = doJSON(t, r, http.MethodPost, "/api/associations", gin.H{"text": corpus})
	require.Equal(t, http.StatusOK, w.Code)
	_, ok = decode(t, w)["associations"].([]any)
	assert.True(t, ok)
}

func TestStats(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/stats", gin.H{"text": corpus})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	assert.Contains(t, out, "coOccurrenceNetwork")
	assert.Contains(t, out, "timeline")
}

func TestLexicon(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/api/lexicon", nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode(t, w)
	terms, ok := out["terms"].([]any)
	require.True(t, ok)
	assert.Contains(t, terms, "月")
	assert.Contains(t, out, "taxonomy")
	assert.Contains(t, out, "commonWords")
}
