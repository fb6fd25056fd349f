package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/errs"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/validation"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeRepoError turns a repository error into a response. code and message
// describe the failure used when the error is not one we classify.
func (h *AuthorHandler) writeRepoError(c *gin.Context, err error, code, message string) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		writeError(c, httpErr.Status, "AUTHOR_"+errorCode(httpErr.Title), httpErr.Message)
		return
	}

	if isPgError(err, pgUniqueViolation) || errors.Is(err, gorm.ErrDuplicatedKey) {
		writeError(c, http.StatusConflict,
			"AUTHOR_EMAIL_TAKEN",
			"an author with this email already exists",
		)
		return
	}

	if isPgError(err, pgForeignKeyViolation) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		writeError(c, http.StatusConflict,
			"AUTHOR_HAS_BOOKS",
			"author still owns books",
		)
		return
	}

	h.log.Error().Err(err).Str("code", code).Msg(message)
	writeError(c, http.StatusInternalServerError, code, message)
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// errorCode turns "Not Found" into "NOT_FOUND".
func errorCode(title string) string {
	return strings.ToUpper(strings.ReplaceAll(title, " ", "_"))
}
