package orgchart

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/org-directory/internal"
	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/transport"
	"github.com/frahmantamala/org-directory/pkg/logger"
)

type ServiceAPI interface {
	ChartFor(viewerID string) (*ChartResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetOrgChart handles GET /org-chart. The chart is always scoped to the
// authenticated viewer; an empty forest is a 200, not an error.
func (h *Handler) GetOrgChart(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.UserFromContext(r.Context())
	if !ok || viewer == nil {
		h.Logger.Error("GetOrgChart: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	chart, err := h.Service.ChartFor(viewer.ID)
	if err != nil {
		h.Logger.Error("GetOrgChart: projection failed", "viewer_id", viewer.ID, "error", err)
		if appErr, ok := internal.IsAppError(err); ok {
			status, body := appErr.ToHTTPResponse()
			h.WriteJSON(w, status, body)
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, chart)
}
