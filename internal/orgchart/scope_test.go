package orgchart_test

import (
	"github.com/frahmantamala/org-directory/internal/orgchart"
	"github.com/frahmantamala/org-directory/internal/person"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scope", func() {
	Describe("viewer resolution", func() {
		It("returns an empty scope for an unknown viewer", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
			})

			scope := orgchart.Scope(ix, "ghost")
			Expect(scope.Visible).To(BeEmpty())
			Expect(scope.Roots).To(BeEmpty())
		})
	})

	Describe("ancestor walk", func() {
		It("gives an assistant exactly their management chain, not their siblings", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
				newPerson("m", "Sari", "MANAGER", ptr("a")),
				newPerson("s", "Dewi", "ASISTEN", ptr("m")),
				newPerson("sib1", "Rina", "ASISTEN", ptr("m")),
				newPerson("sib2", "Tono", "ASISTEN", ptr("m")),
			})

			scope := orgchart.Scope(ix, "s")
			Expect(scope.Visible).To(HaveLen(3))
			Expect(scope.Visible).To(HaveKey("s"))
			Expect(scope.Visible).To(HaveKey("m"))
			Expect(scope.Visible).To(HaveKey("a"))
			Expect(scope.Roots).To(Equal([]string{"a"}))
		})

		It("stops at a dangling manager reference", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m", "Sari", "MANAGER", ptr("gone")),
				newPerson("s", "Dewi", "ASISTEN", ptr("m")),
			})

			scope := orgchart.Scope(ix, "s")
			Expect(scope.Visible).To(HaveLen(2))
			Expect(scope.Roots).To(Equal([]string{"m"}))
		})

		It("includes a self-referencing viewer exactly once and terminates", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", ptr("a")),
			})

			scope := orgchart.Scope(ix, "a")
			Expect(scope.Visible).To(HaveLen(1))
			Expect(scope.Roots).To(Equal([]string{"a"}))
		})

		It("terminates on a cyclic manager chain", func() {
			// m1 and m2 reference each other; the raw manager fields are
			// followed by the walk even though no adjacency edge survives
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m1", "Sari", "MANAGER", ptr("m2")),
				newPerson("m2", "Agus", "MANAGER", ptr("m1")),
				newPerson("s", "Dewi", "ASISTEN", ptr("m1")),
			})

			scope := orgchart.Scope(ix, "s")
			Expect(scope.Visible).To(HaveLen(3))
			Expect(scope.Roots).To(Equal([]string{"m2"}))
		})
	})

	Describe("descendant walk", func() {
		records := func() []person.Person {
			return []person.Person{
				newPerson("a", "Budi", "AREA_MANAGER", nil),
				newPerson("m1", "Sari", "MANAGER", ptr("a")),
				newPerson("m2", "Agus", "MANAGER", ptr("a")),
				newPerson("s1", "Dewi", "ASISTEN", ptr("m1")),
				newPerson("s2", "Rina", "ASISTEN", ptr("m2")),
			}
		}

		It("includes the whole subtree for a manager viewer", func() {
			scope := orgchart.Scope(orgchart.NewIndex(records()), "m1")
			Expect(scope.Visible).To(HaveLen(3))
			Expect(scope.Visible).To(HaveKey("s1"))
			Expect(scope.Visible).NotTo(HaveKey("m2"))
			Expect(scope.Visible).NotTo(HaveKey("s2"))
		})

		It("includes every report transitively for an area manager viewer", func() {
			scope := orgchart.Scope(orgchart.NewIndex(records()), "a")
			Expect(scope.Visible).To(HaveLen(5))
		})

		It("walks descendants for a viewer whose stored role is lowercase", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m", "Sari", "manager", nil),
				newPerson("s", "Dewi", "ASISTEN", ptr("m")),
			})

			scope := orgchart.Scope(ix, "m")
			Expect(scope.Visible).To(HaveKey("s"))
			Expect(scope.Roots).To(Equal([]string{"m"}))
		})
	})

	Describe("root selection", func() {
		It("makes an area manager their own single root even with a supervisor reference", func() {
			// the reference to another area manager is still walked for
			// visibility, but never surfaces as a root above the viewer
			ix := orgchart.NewIndex([]person.Person{
				newPerson("boss", "Citra", "AREA_MANAGER", nil),
				newPerson("a", "Budi", "AREA_MANAGER", ptr("boss")),
			})

			scope := orgchart.Scope(ix, "a")
			Expect(scope.Roots).To(Equal([]string{"a"}))
			Expect(scope.Visible).To(HaveKey("boss"))
		})

		It("falls back to the viewer as root when no ancestor resolves", func() {
			ix := orgchart.NewIndex([]person.Person{
				newPerson("m", "Sari", "MANAGER", nil),
				newPerson("s", "Dewi", "ASISTEN", ptr("m")),
			})

			scope := orgchart.Scope(ix, "m")
			Expect(scope.Roots).To(Equal([]string{"m"}))
		})
	})
})
