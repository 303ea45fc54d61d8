package handlers

import (
	"encoding/json"
	"net/http"

	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

// bindGroupInput reads name, packages (JSON array) and existingPhoto (JSON
// object) from form values, or the whole input from a JSON body.
func bindGroupInput(c *gin.Context) (models.GroupInput, error) {
	var in models.GroupInput
	if !isMultipart(c) {
		if err := c.ShouldBindJSON(&in); err != nil {
			return in, utils.InvalidInput("body", err.Error())
		}
		return in, nil
	}
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("packages"); ok && v != "" {
		if err := json.Unmarshal([]byte(v), &in.PackageIDs); err != nil {
			return in, utils.InvalidInput("packages", "packages must be a JSON array of ids")
		}
	}
	if v, ok := c.GetPostForm("existingPhoto"); ok && v != "" {
		var img models.Image
		if err := json.Unmarshal([]byte(v), &img); err != nil {
			return in, utils.InvalidInput("existingPhoto", "existingPhoto must be a JSON object")
		}
		in.ExistingPhoto = &img
	}
	return in, nil
}

// groupPhoto opens the single "photo" upload, if any.
func groupPhoto(c *gin.Context) (*models.Upload, func(), error) {
	files := formFiles(c, "photo")
	if len(files) == 0 {
		return nil, func() {}, nil
	}
	uploads, release, err := openUploads(files[:1])
	if err != nil {
		return nil, release, err
	}
	return &uploads[0], release, nil
}

// CreateGroupHandler handles POST /api/groups.
func (h *CatalogHandler) CreateGroupHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	in, err := bindGroupInput(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	photo, release, err := groupPhoto(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer release()

	view, err := h.Catalog.CreateGroup(c.Request.Context(), actor, in, photo)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ListGroupsHandler handles GET /api/groups.
func (h *CatalogHandler) ListGroupsHandler(c *gin.Context) {
	views, err := h.Catalog.ListGroups(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetGroupHandler handles GET /api/groups/:id.
func (h *CatalogHandler) GetGroupHandler(c *gin.Context) {
	view, err := h.Catalog.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateGroupHandler handles PUT /api/groups/:id.
func (h *CatalogHandler) UpdateGroupHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	in, err := bindGroupInput(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	photo, release, err := groupPhoto(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer release()

	view, err := h.Catalog.UpdateGroup(c.Request.Context(), actor, c.Param("id"), in, photo)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteGroupHandler handles DELETE /api/groups/:id.
func (h *CatalogHandler) DeleteGroupHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteGroup(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package group deleted"})
}
