package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"tailorspace/internal/adapters/httpapi/middleware"
	actorPort "tailorspace/internal/ports/actor"

	"github.com/gin-gonic/gin"
)

// Actor endpoints answer with the numeric-status envelope; see respond.go.
type ActorController struct{ ac ActorUseCase }

func NewActorController(ac ActorUseCase) *ActorController { return &ActorController{ac: ac} }

func (ctl *ActorController) Create(c *gin.Context) {
	var req actorPort.CreateActorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondActor(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	created, err := ctl.ac.Create(c.Request.Context(), req)
	if err != nil {
		respondActorErr(c, err)
		return
	}
	respondActor(c, http.StatusOK, fmt.Sprintf("%s created successfully", created.Role), created)
}

func (ctl *ActorController) All(c *gin.Context) {
	actors, err := ctl.ac.All(c.Request.Context())
	if err != nil {
		respondActorErr(c, err)
		return
	}
	respondActor(c, http.StatusOK, "Actors fetched successfully", actors)
}

func (ctl *ActorController) ByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respondActor(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	a, err := ctl.ac.ByID(c.Request.Context(), id)
	if err != nil {
		respondActorErr(c, err)
		return
	}
	respondActor(c, http.StatusOK, "Actor fetched successfully", a)
}

func (ctl *ActorController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respondActor(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondActor(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	a, err := ctl.ac.Update(c.Request.Context(), p, id, fields)
	if err != nil {
		respondActorErr(c, err)
		return
	}
	respondActor(c, http.StatusOK, "actor updated successfully", a)
}

func (ctl *ActorController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respondActor(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	a, err := ctl.ac.Delete(c.Request.Context(), p, id)
	if err != nil {
		respondActorErr(c, err)
		return
	}
	respondActor(c, http.StatusOK, "Actor deleted successfully", a)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
