package httpapi

import (
	"net/http"
	"strconv"

	"tailorspace/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
		Photo   string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	created, err := ctl.pc.CreatePost(c.Request.Context(), p, req.Content, req.Photo)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Post created successfully", created)
}

func (ctl *PostController) All(c *gin.Context) {
	posts, err := ctl.pc.AllPosts(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Posts fetched successfully", posts)
}

func (ctl *PostController) My(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	posts, err := ctl.pc.MyPosts(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Posts fetched successfully", posts)
}

func (ctl *PostController) ByActor(c *gin.Context) {
	actorID, ok := queryID(c, "idActor")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid actor id", nil)
		return
	}
	posts, err := ctl.pc.PostsByActor(c.Request.Context(), actorID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Posts fetched successfully", posts)
}

func (ctl *PostController) Update(c *gin.Context) {
	id, ok := idParam(c, "postId")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	var req struct {
		Content string `json:"content"`
		Photo   string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	updated, err := ctl.pc.UpdatePost(c.Request.Context(), p, id, req.Content, req.Photo)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Post updated successfully", updated)
}

func (ctl *PostController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	deleted, err := ctl.pc.DeletePost(c.Request.Context(), p, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Post deleted successfully", deleted)
}

func (ctl *PostController) CreateShare(c *gin.Context) {
	var req struct {
		IDPost    uint `json:"idPost" binding:"required"`
		Recipient uint `json:"recipient" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	created, err := ctl.pc.CreateShare(c.Request.Context(), p, req.IDPost, req.Recipient)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Post shared successfully", created)
}

func (ctl *PostController) MyShares(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	shares, err := ctl.pc.SharedByMe(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Shares fetched successfully", shares)
}

func (ctl *PostController) SharedWithMe(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	shares, err := ctl.pc.SharedWithMe(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Shares fetched successfully", shares)
}

func (ctl *PostController) DeleteShare(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid share id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	if err := ctl.pc.DeleteShare(c.Request.Context(), p, id); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Share deleted successfully", nil)
}

func (ctl *PostController) CreateComment(c *gin.Context) {
	postID, ok := idParam(c, "postId")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	created, err := ctl.pc.CreateComment(c.Request.Context(), p, postID, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Comment created successfully", created)
}

// Comments lists every comment, or one post's comments when idPost is given.
func (ctl *PostController) Comments(c *gin.Context) {
	var postID uint
	if raw := c.Query("idPost"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			respond(c, http.StatusBadRequest, "invalid post id", nil)
			return
		}
		postID = uint(id)
	}
	comments, err := ctl.pc.Comments(c.Request.Context(), postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Comments fetched successfully", comments)
}

func (ctl *PostController) UpdateComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	updated, err := ctl.pc.UpdateComment(c.Request.Context(), p, id, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Comment updated successfully", updated)
}

func (ctl *PostController) DeleteComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	if err := ctl.pc.DeleteComment(c.Request.Context(), p, id); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Comment deleted successfully", nil)
}

func (ctl *PostController) CreateTag(c *gin.Context) {
	postID, ok := idParam(c, "postId")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	var req struct {
		TaggedActor uint `json:"taggedActor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	created, err := ctl.pc.CreateTag(c.Request.Context(), p, postID, req.TaggedActor)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Tag created successfully", created)
}

func (ctl *PostController) MyTags(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	tags, err := ctl.pc.MyTags(c.Request.Context(), p)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tags fetched successfully", tags)
}

func (ctl *PostController) TagsByPost(c *gin.Context) {
	postID, ok := idParam(c, "postId")
	if !ok {
		respond(c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	tags, err := ctl.pc.TagsByPost(c.Request.Context(), postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tags fetched successfully", tags)
}

func (ctl *PostController) CreateReport(c *gin.Context) {
	var req struct {
		IDPost uint   `json:"idPost" binding:"required"`
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid input", nil)
		return
	}
	p, _ := middleware.PrincipalFrom(c)

	created, err := ctl.pc.CreateReport(c.Request.Context(), p, req.IDPost, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Report created successfully", created)
}

func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
