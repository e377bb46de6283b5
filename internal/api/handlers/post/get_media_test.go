package post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gramview/internal/core/comments"
	"Gramview/internal/core/posts"
	"Gramview/internal/instagram"
)

// mockService implements comments.Service for testing
type mockService struct {
	getMediaFunc func(ctx context.Context, postID int64) (*instagram.Media, error)
}

func (m *mockService) CreateComment(ctx context.Context, postID int64, text string) (*comments.Comment, error) {
	return nil, errors.New("not implemented")
}

func (m *mockService) ListComments(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	return nil, errors.New("not implemented")
}

func (m *mockService) GetPostMedia(ctx context.Context, postID int64) (*instagram.Media, error) {
	if m.getMediaFunc != nil {
		return m.getMediaFunc(ctx, postID)
	}
	return nil, errors.New("not implemented")
}

func createTestRequest(postID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/posts/"+postID+"/media/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postID", postID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGetMedia_Success(t *testing.T) {
	svc := &mockService{
		getMediaFunc: func(ctx context.Context, postID int64) (*instagram.Media, error) {
			assert.Equal(t, int64(1), postID)
			return &instagram.Media{ID: "17896129349000001", Caption: "Sunset", MediaType: "IMAGE"}, nil
		},
	}
	handler := NewGetMediaHandler(svc)

	rec := httptest.NewRecorder()
	handler.HandleGetMedia(rec, createTestRequest("1"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "17896129349000001", resp["id"])
	assert.Equal(t, "IMAGE", resp["media_type"])
}

func TestHandleGetMedia_PostNotFound(t *testing.T) {
	svc := &mockService{
		getMediaFunc: func(ctx context.Context, postID int64) (*instagram.Media, error) {
			return nil, posts.ErrPostNotFound
		},
	}
	handler := NewGetMediaHandler(svc)

	rec := httptest.NewRecorder()
	handler.HandleGetMedia(rec, createTestRequest("42"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetMedia_UpstreamFailure(t *testing.T) {
	svc := &mockService{
		getMediaFunc: func(ctx context.Context, postID int64) (*instagram.Media, error) {
			return nil, &instagram.APIError{Message: "token expired", Code: 190}
		},
	}
	handler := NewGetMediaHandler(svc)

	rec := httptest.NewRecorder()
	handler.HandleGetMedia(rec, createTestRequest("1"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Instagram API error: token expired", resp["detail"])
}
