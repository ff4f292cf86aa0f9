package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profile", handler.Get)
	public.GET("/profile/cv", handler.DownloadCV)

	protected.PUT("/profile", handler.Update)
	protected.POST("/profile/upload-photo", handler.UploadPhoto)
	protected.POST("/profile/upload-cv", handler.UploadCV)
}

// Get godoc
// @Summary      Get the public profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary      Update the profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  map[string]interface{}
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPhoto godoc
// @Summary      Upload the profile photo
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photo  formData  file  true  "Image file"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      413  {object}  map[string]interface{}
// @Router       /profile/upload-photo [post]
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	file, err := fileFromForm(c, "photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid upload")
		return
	}
	if file == nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	url, err := h.profileUC.UploadPhoto(c.Request.Context(), *file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded successfully", "photo": url})
}

// UploadCV godoc
// @Summary      Upload the CV
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        cv  formData  file  true  "PDF file"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      413  {object}  map[string]interface{}
// @Router       /profile/upload-cv [post]
func (h *ProfileHandler) UploadCV(c *gin.Context) {
	file, err := fileFromForm(c, "cv")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid upload")
		return
	}
	if file == nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	url, err := h.profileUC.UploadCV(c.Request.Context(), *file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "CV uploaded successfully", "cv_url": url})
}

// DownloadCV godoc
// @Summary      Download the CV
// @Tags         profile
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]interface{}
// @Router       /profile/cv [get]
func (h *ProfileHandler) DownloadCV(c *gin.Context) {
	path, err := h.profileUC.CVPath(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.FileAttachment(path, "cv.pdf")
}
