package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/validation"
)

type AuthorHandler struct {
	repo repository.AuthorRepository
	log  zerolog.Logger
}

func NewAuthorHandler(repo repository.AuthorRepository, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{repo: repo, log: log}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.PUT("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author. The response never carries a password.
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      AuthorRequest             true  "Author to create"
// @Success      201      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      409      {object}  validation.ErrorResponse  "Email already taken"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	req, ok := bindAuthorRequest(c)
	if !ok {
		return
	}

	author, err := h.repo.Create(c.Request.Context(), req.toDto())
	if err != nil {
		h.writeRepoError(c, err, "AUTHOR_CREATE_FAILED", "failed to create author")
		return
	}

	c.JSON(http.StatusCreated, AuthorResponse{Data: toAuthor(*author)})
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Get every author together with their books
// @Tags         authors
// @Accept       json
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.repo.ReadAll(c.Request.Context())
	if err != nil {
		h.writeRepoError(c, err, "AUTHOR_LIST_FAILED", "failed to list authors")
		return
	}

	res := make([]Author, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthor(a))
	}

	c.JSON(http.StatusOK, ListAuthorsResponse{Data: res})
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Description  Get a single author and their books
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	author, err := h.repo.ReadByID(c.Request.Context(), id)
	if err != nil {
		h.writeRepoError(c, err, "AUTHOR_FETCH_FAILED", "failed to fetch author")
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthor(*author)})
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Description  Overwrite every writable field of an existing author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Author ID (UUID)"
// @Param        payload  body      AuthorRequest             true  "Author fields"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      409      {object}  validation.ErrorResponse  "Email already taken"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	req, ok := bindAuthorRequest(c)
	if !ok {
		return
	}

	author, err := h.repo.Update(c.Request.Context(), id, req.toDto())
	if err != nil {
		h.writeRepoError(c, err, "AUTHOR_UPDATE_FAILED", "failed to update author")
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthor(*author)})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author and respond with it as it was before removal
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      409  {object}  validation.ErrorResponse  "Author still owns books"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	author, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeRepoError(c, err, "AUTHOR_DELETE_FAILED", "failed to delete author")
		return
	}

	c.JSON(http.StatusOK, AuthorResponse{Data: toAuthor(*author)})
}

func parseAuthorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"AUTHOR_INVALID_ID",
			"invalid author id",
		)
		return uuid.Nil, false
	}
	return id, true
}

func bindAuthorRequest(c *gin.Context) (AuthorRequest, bool) {
	var req AuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return req, false
	}
	if req.BirthDate.IsZero() {
		validation.Required(c, "birthDate")
		return req, false
	}
	return req, true
}
