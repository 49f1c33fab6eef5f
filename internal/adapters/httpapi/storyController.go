package httpapi

import (
	"net/http"

	"tailorspace/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

type StoryController struct{ sc StoryUseCase }

func NewStoryController(sc StoryUseCase) *StoryController { return &StoryController{sc: sc} }

func (ctl *StoryController) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Photo       string `json:"photo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "title, description and photo are required", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	st, err := ctl.sc.Create(c.Request.Context(), p, req.Title, req.Description, req.Photo)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Story created successfully", st)
}

func (ctl *StoryController) Delete(c *gin.Context) {
	id, ok := idParam(c, "idStory")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid story id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	st, err := ctl.sc.Delete(c.Request.Context(), p, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Story deleted successfully", st)
}

func (ctl *StoryController) View(c *gin.Context) {
	id, ok := idParam(c, "idStory")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid story id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	vues, err := ctl.sc.View(c.Request.Context(), p, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Story viewed successfully", vues)
}

func (ctl *StoryController) Views(c *gin.Context) {
	id, ok := idParam(c, "idStory")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid story id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	vues, err := ctl.sc.Views(c.Request.Context(), p, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Story views retrieved successfully", vues)
}

func (ctl *StoryController) My(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	stories, err := ctl.sc.My(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Stories fetched successfully", stories)
}

func (ctl *StoryController) All(c *gin.Context) {
	stories, err := ctl.sc.All(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Stories fetched successfully", stories)
}

func (ctl *StoryController) Following(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	stories, err := ctl.sc.Following(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Stories fetched successfully", stories)
}
