package department_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	"github.com/pattarapon/hr-console/internal/department"
	"github.com/pattarapon/hr-console/internal/validation"
)

func TestDepartment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Suite")
}

var _ = Describe("ValidateForm", func() {
	It("should accept a complete draft", func() {
		result := department.ValidateForm(departmentmodel.Form{
			Name:        "Engineering",
			Description: "Builds the product",
		})
		Expect(result.Valid()).To(BeTrue())
	})

	It("should require both fields", func() {
		result := department.ValidateForm(departmentmodel.Form{})
		Expect(result.FieldErrors).To(HaveKeyWithValue("name", validation.KindRequired))
		Expect(result.FieldErrors).To(HaveKeyWithValue("description", validation.KindRequired))
	})
})
