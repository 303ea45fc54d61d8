package handlers

import (
	"mime/multipart"
	"net/http"

	"tourbook/middleware"
	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

// requireActor returns the authenticated caller or writes a 401.
func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.RespondError(c, utils.Unauthorized("authentication required"))
		return models.Actor{}, false
	}
	return actor, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: "Invalid request body", Details: err.Error()})
}

// openUploads opens every file in the multipart field. The returned closer
// releases all of them.
func openUploads(files []*multipart.FileHeader) ([]models.Upload, func(), error) {
	uploads := make([]models.Upload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		uploads = append(uploads, models.Upload{Filename: fh.Filename, Content: f})
	}
	return uploads, closeAll, nil
}

// formFiles returns the files under field, or nil for non-multipart requests.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
