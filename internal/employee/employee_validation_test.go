package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreate(t *testing.T) {
	t.Run("trims and lowercases", func(t *testing.T) {
		fields, errs := validateCreate(CreateEmployeeRequest{
			EmployeeID: "  E1  ",
			FullName:   " Ann Lee ",
			Email:      "  Ann.Lee@X.Com ",
			Department: " Eng ",
		})
		assert.Nil(t, errs)
		assert.Equal(t, "E1", fields.EmployeeID)
		assert.Equal(t, "Ann Lee", fields.FullName)
		assert.Equal(t, "ann.lee@x.com", fields.Email)
		assert.Equal(t, "Eng", fields.Department)
	})

	t.Run("whitespace-only fields are required", func(t *testing.T) {
		_, errs := validateCreate(CreateEmployeeRequest{
			EmployeeID: "   ",
			FullName:   "\t",
			Email:      " ",
			Department: "",
		})
		assert.Equal(t, map[string]string{
			"employee_id": "Employee ID is required.",
			"full_name":   "Full name is required.",
			"email":       "Email is required.",
			"department":  "Department is required.",
		}, errs)
	})

	t.Run("email pattern", func(t *testing.T) {
		cases := map[string]bool{
			"ann.lee@x.com":      true,
			"a_b%c+d-e@sub.x.io": true,
			"ann@x":              false,
			"ann@x.c":            false,
			"@x.com":             false,
			"ann lee@x.com":      false,
		}
		for input, ok := range cases {
			_, errs := validateCreate(CreateEmployeeRequest{
				EmployeeID: "E1",
				FullName:   "Ann",
				Email:      input,
				Department: "Eng",
			})
			if ok {
				assert.Nil(t, errs, "email %q should be valid", input)
			} else {
				assert.Equal(t, "Enter a valid email address.", errs["email"], "email %q", input)
			}
		}
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("unsupplied fields are skipped", func(t *testing.T) {
		out, errs := validateUpdate(UpdateEmployeeRequest{})
		assert.Nil(t, errs)
		assert.Nil(t, out.EmployeeID)
		assert.Nil(t, out.Email)
	})

	t.Run("supplied fields validated and normalized", func(t *testing.T) {
		email := " Ann.Lee@Y.COM "
		out, errs := validateUpdate(UpdateEmployeeRequest{Email: &email})
		assert.Nil(t, errs)
		assert.Equal(t, "ann.lee@y.com", *out.Email)
	})

	t.Run("supplied empty field fails", func(t *testing.T) {
		blank := "  "
		_, errs := validateUpdate(UpdateEmployeeRequest{Department: &blank})
		assert.Equal(t, "Department is required.", errs["department"])
	})
}
