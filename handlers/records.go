package handlers

import (
	"net/http"

	"tourbook/models"
	"tourbook/services/records"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

type RecordsHandler struct {
	Records records.RecordsService
}

func NewRecordsHandler(svc records.RecordsService) *RecordsHandler {
	return &RecordsHandler{Records: svc}
}

// CreateInquiryHandler handles POST /api/inquiries.
func (h *RecordsHandler) CreateInquiryHandler(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	inquiry, err := h.Records.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inquiry)
}

// ListInquiriesHandler handles GET /api/inquiries.
func (h *RecordsHandler) ListInquiriesHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inquiries, err := h.Records.ListInquiries(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// DeleteInquiryHandler handles DELETE /api/inquiries/:id.
func (h *RecordsHandler) DeleteInquiryHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.Records.DeleteInquiry(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}

// CreateReviewHandler handles POST /api/reviews. Accepts multipart with an
// optional "image" file, or JSON.
func (h *RecordsHandler) CreateReviewHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var in models.ReviewInput
	var err error
	if isMultipart(c) {
		err = c.ShouldBind(&in)
	} else {
		err = c.ShouldBindJSON(&in)
	}
	if err != nil {
		badRequest(c, err)
		return
	}

	var image *models.Upload
	if files := formFiles(c, "image"); len(files) > 0 {
		uploads, release, err := openUploads(files[:1])
		if err != nil {
			badRequest(c, err)
			return
		}
		defer release()
		image = &uploads[0]
	}

	review, err := h.Records.CreateReview(c.Request.Context(), actor, in, image)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviewsHandler handles GET /api/reviews.
func (h *RecordsHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Records.ListReviews(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *RecordsHandler) DeleteReviewHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.Records.DeleteReview(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
