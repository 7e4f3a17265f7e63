package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/reliefmap/relief-coordination-api/internal/dto"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

func setupItemRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := setupTestDB(t)
	handler := NewItemHandler(services.NewItemService(repository.NewItemRepository(db)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/items", handler.List)
	r.POST("/api/items", handler.Create)
	return r
}

func postItem(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemHandler_Create(t *testing.T) {
	r := setupItemRouter(t)

	w := postItem(t, r, `{"name":"Rice","unit":"kg"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var data dto.ItemDTO
	resp := decodeData(t, w.Body.Bytes(), &data)
	require.Equal(t, "Item created successfully", resp.Message)
	require.Equal(t, "Rice", data.Name)
	require.True(t, data.Active)
}

func TestItemHandler_DuplicateNameMapsToBadRequest(t *testing.T) {
	r := setupItemRouter(t)

	w := postItem(t, r, `{"name":"Rice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postItem(t, r, `{"name":"Rice"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w.Body.Bytes())
	require.False(t, resp.Success)
	require.Equal(t, "Item name already exists", resp.Error)
}
