package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/guitarshop-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ParsePathID reads an integer route parameter. Zero and negative ids parse so
// the lookup reports them as not found.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "missing path parameter").WithDetails(map[string]any{"field": key})
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be an integer").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
