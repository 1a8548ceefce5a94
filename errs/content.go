package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content & Page Errors
var (
	ErrContentLoad  = errors.New("content load failed")
	ErrPageNotFound = errors.New("page not found")
)

func NewContentLoadError(path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrContentLoad,
		Details:    fmt.Sprintf("Failed to load content from %s", path),
		Cause:      cause,
		Field:      "content",
	}
}

func NewPageNotFoundError(pageID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrPageNotFound,
		Details:    fmt.Sprintf("Page %s is not mounted", pageID),
		Field:      "pageID",
	}
}

func IsContentLoadError(err error) bool {
	return errors.Is(err, ErrContentLoad)
}

// IsPageNotFoundError also reports true for generic not-found errors.
func IsPageNotFoundError(err error) bool {
	return errors.Is(err, ErrPageNotFound) || errors.Is(err, ErrNotFound)
}
