package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.List)
	public.GET("/projects/:id", handler.Get)

	protected.POST("/projects", handler.Create)
	protected.PUT("/projects/:id", handler.Update)
	protected.DELETE("/projects/:id", handler.Delete)
}

// List godoc
// @Summary      List active projects
// @Tags         projects
// @Produce      json
// @Param        category  query  string  false  "Filter by category, 'all' disables the filter"
// @Param        featured  query  bool    false  "Only featured projects"
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	filter := domain.ProjectFilter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	projects, err := h.projectUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary      Create a project
// @Description  Accepts JSON, or multipart form data with an optional image file
// @Tags         projects
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      domain.ProjectInput  true  "Project fields"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  map[string]interface{}
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	input, image, ok := h.bindProject(c)
	if !ok {
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), input, image)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary      Update a project
// @Description  Replaces all fields; the image only changes when a new file is sent
// @Tags         projects
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                  true  "Project id"
// @Param        project  body      domain.ProjectInput  true  "Project fields"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	input, image, ok := h.bindProject(c)
	if !ok {
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), id, input, image)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Project deleted successfully")
}

// bindProject reads a project from either a JSON body or a multipart form
// (field names match the JSON tags; the image travels in the "image" file
// part). Reports false after writing the error response.
func (h *ProjectHandler) bindProject(c *gin.Context) (domain.ProjectInput, *domain.FileUpload, bool) {
	var input domain.ProjectInput

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BindError(c, err)
			return input, nil, false
		}
		return input, nil, true
	}

	input = domain.ProjectInput{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		LongDescription: formValue(c, "long_description"),
		DemoURL:         formValue(c, "demo_url"),
		GithubURL:       formValue(c, "github_url"),
		Category:        c.PostForm("category"),
		Technologies:    domain.DecodeStringList(c.PostForm("technologies")),
		Status:          c.PostForm("status"),
		Featured:        formBool(c, "featured"),
		StartDate:       formValue(c, "start_date"),
		EndDate:         formValue(c, "end_date"),
		Client:          formValue(c, "client"),
	}
	if v := c.PostForm("active"); v != "" {
		active := v == "true" || v == "1"
		input.Active = &active
	}

	var missing []string
	if input.Title == "" {
		missing = append(missing, "title is required")
	}
	if input.Description == "" {
		missing = append(missing, "description is required")
	}
	if input.Category == "" {
		missing = append(missing, "category is required")
	}
	if len(missing) > 0 {
		response.ValidationErrors(c, missing)
		return input, nil, false
	}

	image, err := fileFromForm(c, "image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid upload")
		return input, nil, false
	}
	return input, image, true
}
