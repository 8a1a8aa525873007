package orgchart_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/orgchart"
	"github.com/frahmantamala/org-directory/internal/person"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OrgChart Handler", func() {
	var (
		source  *MockRecordSource
		handler *orgchart.Handler
	)

	authedRequest := func(user *auth.User) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/org-chart", nil)
		if user != nil {
			req = req.WithContext(auth.ContextWithUser(req.Context(), user))
		}
		return req
	}

	BeforeEach(func() {
		source = &MockRecordSource{
			records: []person.Person{
				newPerson("a", "Budi Hartono", "AREA_MANAGER", nil),
				newPerson("m1", "Sari Wulandari", "MANAGER", ptr("a")),
				newPerson("s1", "Dewi Lestari", "ASISTEN", ptr("m1")),
			},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = orgchart.NewHandler(orgchart.NewService(source, logger))
	})

	It("returns the viewer-scoped chart as JSON", func() {
		w := httptest.NewRecorder()
		handler.GetOrgChart(w, authedRequest(&auth.User{ID: "s1", Username: "dewi.asisten", Role: "ASISTEN", IsActive: true}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var chart orgchart.ChartResponse
		err := json.NewDecoder(w.Body).Decode(&chart)
		Expect(err).NotTo(HaveOccurred())

		Expect(chart.TotalVisible).To(Equal(3))
		Expect(chart.Roots).To(HaveLen(1))
		Expect(chart.Roots[0].Person.ID).To(Equal("a"))
	})

	It("rejects a request without an authenticated user", func() {
		w := httptest.NewRecorder()
		handler.GetOrgChart(w, authedRequest(nil))

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("maps a snapshot fetch failure to an upstream error status", func() {
		source.shouldFail = true
		source.failError = errors.New("connection refused")

		w := httptest.NewRecorder()
		handler.GetOrgChart(w, authedRequest(&auth.User{ID: "m1", Username: "sari.manager", Role: "MANAGER", IsActive: true}))

		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})

	It("returns an empty chart for a viewer outside the snapshot", func() {
		w := httptest.NewRecorder()
		handler.GetOrgChart(w, authedRequest(&auth.User{ID: "ghost", Username: "ghost", Role: "MANAGER", IsActive: true}))

		Expect(w.Code).To(Equal(http.StatusOK))

		var chart orgchart.ChartResponse
		err := json.NewDecoder(w.Body).Decode(&chart)
		Expect(err).NotTo(HaveOccurred())
		Expect(chart.TotalVisible).To(Equal(0))
		Expect(chart.Roots).To(BeEmpty())
	})
})
