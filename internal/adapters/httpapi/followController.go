package httpapi

import (
	"net/http"

	"tailorspace/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController { return &FollowController{fc: fc} }

func (ctl *FollowController) Follow(c *gin.Context) {
	var req struct {
		IDActor uint `json:"idActor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	f, err := ctl.fc.Follow(c.Request.Context(), p, req.IDActor)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Actor followed successfully", f)
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	var req struct {
		IDActor uint `json:"idActor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	if err := ctl.fc.Unfollow(c.Request.Context(), p, req.IDActor); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Actor unfollowed successfully", nil)
}

func (ctl *FollowController) Following(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	follows, err := ctl.fc.Following(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Follows fetched successfully", follows)
}
