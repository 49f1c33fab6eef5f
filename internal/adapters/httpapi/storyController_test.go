package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tailorspace/internal/core/access"
	"tailorspace/internal/core/apperr"
	storyPort "tailorspace/internal/ports/story"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubStoryUseCase struct {
	viewResp  *storyPort.VuesDTO
	viewErr   error
	viewsResp *storyPort.VuesDTO
	viewsErr  error
}

func (s *stubStoryUseCase) Create(context.Context, access.Principal, string, string, string) (*storyPort.StoryDTO, error) {
	return nil, nil
}

func (s *stubStoryUseCase) Delete(context.Context, access.Principal, uint) (*storyPort.StoryDTO, error) {
	return nil, nil
}

func (s *stubStoryUseCase) View(context.Context, access.Principal, uint) (*storyPort.VuesDTO, error) {
	return s.viewResp, s.viewErr
}

func (s *stubStoryUseCase) Views(context.Context, access.Principal, uint) (*storyPort.VuesDTO, error) {
	return s.viewsResp, s.viewsErr
}

func (s *stubStoryUseCase) My(context.Context, access.Principal) ([]*storyPort.StoryDTO, error) {
	return nil, nil
}

func (s *stubStoryUseCase) All(context.Context) ([]*storyPort.StoryDTO, error) {
	return nil, nil
}

func (s *stubStoryUseCase) Following(context.Context, access.Principal) ([]*storyPort.StoryDTO, error) {
	return nil, nil
}

func storyTestRouter(uc StoryUseCase, p access.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("principal", p)
	})
	ctl := NewStoryController(uc)
	r.POST("/stories/:idStory/view", ctl.View)
	r.GET("/stories/:idStory/views", ctl.Views)
	return r
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  bool            `json:"status"`
}

func TestStoryViewEnvelope(t *testing.T) {
	visitor := access.Principal{UserID: 2, ActorID: 8, Role: access.RoleVendor}

	t.Run("success", func(t *testing.T) {
		uc := &stubStoryUseCase{viewResp: &storyPort.VuesDTO{Vues: 4}}
		r := storyTestRouter(uc, visitor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stories/1/view", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, "Story viewed successfully", env.Message)
		require.True(t, env.Status)
		require.JSONEq(t, `{"vues":4}`, string(env.Data))
	})

	t.Run("owner view is forbidden", func(t *testing.T) {
		uc := &stubStoryUseCase{viewErr: apperr.Forbidden("You can't view your own story")}
		r := storyTestRouter(uc, visitor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stories/1/view", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, "You can't view your own story", env.Message)
		require.False(t, env.Status)
		require.Equal(t, "null", string(env.Data))
	})

	t.Run("missing story", func(t *testing.T) {
		uc := &stubStoryUseCase{viewErr: apperr.NotFound("Story not found")}
		r := storyTestRouter(uc, visitor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stories/99/view", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, "Story not found", env.Message)
		require.False(t, env.Status)
	})

	t.Run("bad id", func(t *testing.T) {
		r := storyTestRouter(&stubStoryUseCase{}, visitor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stories/abc/view", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStoryViewsEnvelope(t *testing.T) {
	uc := &stubStoryUseCase{viewsErr: apperr.Forbidden("You are not authorized to see this information")}
	r := storyTestRouter(uc, access.Principal{UserID: 2, ActorID: 8, Role: access.RoleVendor})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stories/1/views", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, "You are not authorized to see this information", env.Message)
	require.False(t, env.Status)
}
