package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"tourbook/models"
	"tourbook/services/catalog"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindPackageInput reads package fields from JSON or from multipart form
// values. Form values for itinerary and tags carry JSON arrays.
func bindPackageInput(c *gin.Context) (models.PackageInput, error) {
	var in models.PackageInput
	if !isMultipart(c) {
		if err := c.ShouldBindJSON(&in); err != nil {
			return in, utils.InvalidInput("body", err.Error())
		}
		return in, nil
	}

	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("duration"); ok {
		in.Duration = &v
	}
	if v, ok := c.GetPostForm("group"); ok {
		in.GroupID = &v
	}
	for field, dst := range map[string]**float64{"price": &in.Price, "discount": &in.Discount} {
		v, ok := c.GetPostForm(field)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, utils.InvalidInput(field, field+" must be a number")
		}
		*dst = &f
	}
	if v, ok := c.GetPostForm("hot"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, utils.InvalidInput("hot", "hot must be true or false")
		}
		in.Hot = &b
	}
	if v, ok := c.GetPostForm("itinerary"); ok && v != "" {
		if err := json.Unmarshal([]byte(v), &in.Itinerary); err != nil {
			return in, utils.InvalidInput("itinerary", "itinerary must be a JSON array")
		}
	}
	if tags, ok := c.GetPostFormArray("tags"); ok {
		in.Tags = parseTags(tags)
	}
	return in, nil
}

func parseTags(values []string) []string {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var tags []string
		if err := json.Unmarshal([]byte(values[0]), &tags); err == nil {
			return tags
		}
	}
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			tags = append(tags, v)
		}
	}
	return tags
}

// CreatePackageHandler handles POST /api/packages.
func (h *CatalogHandler) CreatePackageHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	in, err := bindPackageInput(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	uploads, release, err := openUploads(formFiles(c, "images"))
	if err != nil {
		badRequest(c, err)
		return
	}
	defer release()

	pkg, err := h.Catalog.CreatePackage(c.Request.Context(), actor, in, uploads)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackageHandler handles PUT /api/packages/:id.
func (h *CatalogHandler) UpdatePackageHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	in, err := bindPackageInput(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	uploads, release, err := openUploads(formFiles(c, "images"))
	if err != nil {
		badRequest(c, err)
		return
	}
	defer release()

	pkg, err := h.Catalog.UpdatePackage(c.Request.Context(), actor, c.Param("id"), in, uploads)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListPackagesHandler handles GET /api/packages.
func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	pkgs, err := h.Catalog.ListPackages(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackageHandler handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Catalog.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackageHandler handles DELETE /api/packages/:id.
func (h *CatalogHandler) DeletePackageHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeletePackage(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}

// PackagesByGroupHandler handles GET /api/packages/group/:groupId.
func (h *CatalogHandler) PackagesByGroupHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	pkgs, err := h.Catalog.PackagesByGroup(c.Request.Context(), actor, c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// ListTagsHandler handles GET /api/tags.
func (h *CatalogHandler) ListTagsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": h.Catalog.ListTags()})
}
