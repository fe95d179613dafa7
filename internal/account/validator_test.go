package account_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pattarapon/hr-console/internal/account"
	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	"github.com/pattarapon/hr-console/internal/validation"
)

func TestAccount(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Account Suite")
}

func validForm() accountmodel.Form {
	return accountmodel.Form{
		Username:        "somsak",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            accountmodel.RoleHR,
		EmployeeID:      7,
	}
}

var _ = Describe("ValidateForm", func() {
	It("should accept a complete draft", func() {
		Expect(account.ValidateForm(validForm()).Valid()).To(BeTrue())
	})

	It("should flag a short password without blaming the confirmation", func() {
		form := validForm()
		form.Password = "short"
		form.ConfirmPassword = "short"
		result := account.ValidateForm(form)
		Expect(result.FieldErrors).To(HaveKeyWithValue("password", validation.KindTooShort))
		Expect(result.FieldErrors).NotTo(HaveKey("confirmPassword"))
	})

	It("should flag a mismatched confirmation without blaming the password", func() {
		form := validForm()
		form.ConfirmPassword = "different1"
		result := account.ValidateForm(form)
		Expect(result.FieldErrors).To(HaveKeyWithValue("confirmPassword", validation.KindMismatch))
		Expect(result.FieldErrors).NotTo(HaveKey("password"))
	})

	It("should reject a role outside the known three", func() {
		form := validForm()
		form.Role = "SUPERUSER"
		Expect(account.ValidateForm(form).FieldErrors).To(HaveKeyWithValue("role", validation.KindInvalidValue))
	})

	It("should require an employee to attach the credential to", func() {
		form := validForm()
		form.EmployeeID = 0
		Expect(account.ValidateForm(form).FieldErrors).To(HaveKeyWithValue("employeeId", validation.KindRequired))
	})

	It("should require every field of an empty draft", func() {
		result := account.ValidateForm(accountmodel.Form{})
		for _, field := range account.RequiredFields {
			Expect(result.FieldErrors).To(HaveKeyWithValue(field, validation.KindRequired), field)
		}
	})
})
