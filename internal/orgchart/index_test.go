package orgchart_test

import (
	"github.com/frahmantamala/org-directory/internal/orgchart"
	"github.com/frahmantamala/org-directory/internal/person"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Index", func() {
	Describe("record validation", func() {
		It("excludes unrecognized roles as both nodes and edge endpoints", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
				newPerson("x", "Xavier", "SUPER_ADMIN", ptr("a")),
				newPerson("s", "Dewi", "ASISTEN", ptr("x")),
			})

			Expect(ix.Len()).To(Equal(2))

			_, ok := ix.Record("x")
			Expect(ok).To(BeFalse())

			// neither the edge into x nor the edge out of x survives
			Expect(ix.Children("a")).To(BeEmpty())
			Expect(ix.Children("x")).To(BeEmpty())
		})

		It("normalizes case-variant role strings to their canonical ranks", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("s", "Dewi", "ASISTEN", nil),
				newPerson("a", "Budi", "area_manager", ptr("s")),
			})

			rec, ok := ix.Record("a")
			Expect(ok).To(BeTrue())
			Expect(rec.Role).To(Equal(person.RoleAreaManager))

			// with the canonical rank the edge decreases rank, so it is dropped
			Expect(ix.Children("s")).To(BeEmpty())
		})

		It("drops edges whose manager record does not exist", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("s", "Dewi", "ASISTEN", ptr("missing")),
			})

			Expect(ix.Children("missing")).To(BeEmpty())
			_, ok := ix.Record("s")
			Expect(ok).To(BeTrue())
		})

		It("drops edges that do not strictly increase role rank", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m1", "Sari", "MANAGER", ptr("m2")),
				newPerson("m2", "Agus", "MANAGER", nil),
				newPerson("a", "Budi", "AREA_MANAGER", ptr("m2")),
			})

			// manager under manager: equal rank, dropped
			// area manager under manager: rank decrease, dropped
			Expect(ix.Children("m2")).To(BeEmpty())
		})

		It("keeps no edge with child rank less than or equal to parent rank", func() {
			records := []person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
				newPerson("m1", "Sari", "MANAGER", ptr("a")),
				newPerson("m2", "Agus", "MANAGER", ptr("m1")),
				newPerson("s1", "Dewi", "ASISTEN", ptr("m1")),
				newPerson("a2", "Citra", "AREA_MANAGER", ptr("s1")),
			}
			ix := orgchart.NewIndex(records)

			for _, rec := range records {
				parent, ok := ix.Record(rec.ID)
				if !ok {
					continue
				}
				for _, child := range ix.Children(rec.ID) {
					Expect(child.Role.Rank()).To(BeNumerically(">", parent.Role.Rank()))
				}
			}
		})
	})

	Describe("sibling ordering", func() {
		It("orders shallower roles before deeper ones", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
				newPerson("s1", "Anton", "ASISTEN", ptr("a")),
				newPerson("m1", "Zainal", "MANAGER", ptr("a")),
			})

			children := ix.Children("a")
			Expect(children).To(HaveLen(2))
			Expect(children[0].ID).To(Equal("m1"))
			Expect(children[1].ID).To(Equal("s1"))
		})

		It("orders same-role siblings by name regardless of input order", func() {
			forward := orgchart.NewIndex([]person.Person{
				newPerson("m1", "Sari", "MANAGER", nil),
				newPerson("s1", "Citra", "ASISTEN", ptr("m1")),
				newPerson("s2", "Agus", "ASISTEN", ptr("m1")),
			})
			reversed := orgchart.NewIndex([]person.Person{
				newPerson("m1", "Sari", "MANAGER", nil),
				newPerson("s2", "Agus", "ASISTEN", ptr("m1")),
				newPerson("s1", "Citra", "ASISTEN", ptr("m1")),
			})

			for _, ix := range []*orgchart.Index{forward, reversed} {
				children := ix.Children("m1")
				Expect(children).To(HaveLen(2))
				Expect(children[0].Name).To(Equal("Agus"))
				Expect(children[1].Name).To(Equal("Citra"))
			}
		})

		It("keeps snapshot order for siblings with identical sort keys", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m1", "Sari", "MANAGER", nil),
				newPerson("s1", "Dewi", "ASISTEN", ptr("m1")),
				newPerson("s2", "Dewi", "ASISTEN", ptr("m1")),
			})

			children := ix.Children("m1")
			Expect(children).To(HaveLen(2))
			Expect(children[0].ID).To(Equal("s1"))
			Expect(children[1].ID).To(Equal("s2"))
		})
	})
})
