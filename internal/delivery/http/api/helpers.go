package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

// parseID reads the :id path parameter. On failure it writes the 400
// envelope and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// fileFromForm extracts one multipart file. A missing field returns
// (nil, nil) so callers can treat the file as optional.
func fileFromForm(c *gin.Context, field string) (*domain.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &domain.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}

// formValue returns a pointer to a form field, nil when absent or empty.
func formValue(c *gin.Context, field string) *string {
	if v := c.PostForm(field); v != "" {
		return &v
	}
	return nil
}

func formBool(c *gin.Context, field string) bool {
	v := c.PostForm(field)
	return v == "true" || v == "1"
}
