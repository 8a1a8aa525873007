package orgchart

import (
	"log/slog"

	"github.com/frahmantamala/org-directory/internal"
	"github.com/frahmantamala/org-directory/internal/person"
)

// RecordSource is the query capability the projection consumes: an
// already-fetched flat record set. The engine issues no queries of its
// own beyond this single snapshot fetch.
type RecordSource interface {
	Records(params person.ListParams) ([]person.Person, error)
}

type Service struct {
	source RecordSource
	logger *slog.Logger
}

func NewService(source RecordSource, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// ChartFor runs the full projection for a viewer: snapshot fetch, index
// build, visibility scoping, tree construction. An empty chart is a
// normal result; only the snapshot fetch can fail.
func (s *Service) ChartFor(viewerID string) (*ChartResponse, error) {
	records, err := s.source.Records(person.ListParams{ActiveOnly: true})
	if err != nil {
		s.logger.Error("failed to fetch directory snapshot", "viewer_id", viewerID, "error", err)
		return nil, internal.NewExternalError("directory query failed", internal.ErrCodeDirectoryQuery, err)
	}

	ix := NewIndex(records)
	scope := Scope(ix, viewerID)
	forest := Build(ix, scope)

	resp := toChartResponse(forest)
	s.logger.Info("built org chart",
		"viewer_id", viewerID,
		"records", len(records),
		"indexed", ix.Len(),
		"visible", resp.TotalVisible,
		"roots", len(resp.Roots))

	return resp, nil
}
