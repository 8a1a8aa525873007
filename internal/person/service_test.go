package person_test

import (
	"errors"
	"log/slog"
	"os"

	personDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/person"
	"github.com/frahmantamala/org-directory/internal/person"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements person.RepositoryAPI for testing
type MockRepository struct {
	people     []*personDatamodel.Person
	shouldFail bool
	failError  error
}

func (m *MockRepository) List(params person.ListParams) ([]*personDatamodel.Person, error) {
	if m.shouldFail {
		return nil, m.failError
	}

	var result []*personDatamodel.Person
	for _, p := range m.people {
		if params.ActiveOnly && !p.IsActive {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *MockRepository) GetByID(id string) (*personDatamodel.Person, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, p := range m.people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

var _ = Describe("Person Service", func() {
	var (
		mockRepo *MockRepository
		service  *person.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = &MockRepository{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = person.NewService(mockRepo, logger)
	})

	Describe("Records", func() {
		It("converts data models to domain records with company names", func() {
			mgrID := "m1"
			mockRepo.people = []*personDatamodel.Person{
				{
					ID:       "m1",
					Username: "sari.manager",
					Name:     "Sari Wulandari",
					Role:     "MANAGER",
					IsActive: true,
					Company:  &personDatamodel.Company{Name: "PT Kebun Sejahtera"},
				},
				{
					ID:        "s1",
					Username:  "dewi.asisten",
					Name:      "Dewi Lestari",
					Role:      "ASISTEN",
					ManagerID: &mgrID,
					IsActive:  true,
				},
			}

			records, err := service.Records(person.ListParams{ActiveOnly: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Company).To(Equal("PT Kebun Sejahtera"))
			Expect(records[1].ManagerID).To(Equal(&mgrID))
			Expect(records[1].Role).To(Equal(person.RoleAssistant))
		})

		It("propagates repository failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("db down")

			_, err := service.Records(person.ListParams{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListPeople", func() {
		It("excludes inactive entries when filtering active only", func() {
			mockRepo.people = []*personDatamodel.Person{
				{ID: "p1", Username: "u1", Name: "Budi", Role: "MANAGER", IsActive: true},
				{ID: "p2", Username: "u2", Name: "Tono", Role: "ASISTEN", IsActive: false},
			}

			people, err := service.ListPeople(person.ListParams{ActiveOnly: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(people).To(HaveLen(1))
			Expect(people[0].ID).To(Equal("p1"))
		})
	})

	Describe("GetByID", func() {
		It("returns ErrNotFound for a missing person", func() {
			_, err := service.GetByID("ghost")
			Expect(err).To(Equal(person.ErrNotFound))
		})

		It("returns the person when present", func() {
			mockRepo.people = []*personDatamodel.Person{
				{ID: "p1", Username: "u1", Name: "Budi", Role: "AREA_MANAGER", IsActive: true},
			}

			resp, err := service.GetByID("p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Username).To(Equal("u1"))
			Expect(resp.Role).To(Equal("AREA_MANAGER"))
		})
	})
})
