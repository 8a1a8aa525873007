package person

import (
	"log/slog"

	personDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/person"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*personDatamodel.Person, error)
	GetByID(id string) (*personDatamodel.Person, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Records returns domain person records matching the filter. This is the
// query capability the org chart projection consumes.
func (s *Service) Records(params ListParams) ([]Person, error) {
	dataPeople, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list people from repository", "error", err)
		return nil, err
	}

	records := make([]Person, 0, len(dataPeople))
	for _, dm := range dataPeople {
		records = append(records, *FromDataModel(dm))
	}
	return records, nil
}

func (s *Service) ListPeople(params ListParams) ([]PersonResponse, error) {
	records, err := s.Records(params)
	if err != nil {
		return nil, err
	}

	responses := make([]PersonResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}

	s.logger.Info("retrieved people", "count", len(responses))
	return responses, nil
}

func (s *Service) GetByID(id string) (*PersonResponse, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get person from repository", "person_id", id, "error", err)
		return nil, err
	}
	if dm == nil {
		return nil, ErrNotFound
	}

	resp := FromDataModel(dm).ToResponse()
	return &resp, nil
}
