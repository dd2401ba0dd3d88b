package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mobileNumberFixture struct {
	MobileNumber string `validate:"required,mobile_number"`
}

func TestValidateStruct_MobileNumber(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "ten digits", input: "9000000000", valid: true},
		{name: "with country code", input: "+919000000000", valid: true},
		{name: "seven digits minimum", input: "9000000", valid: true},
		{name: "too short", input: "123", valid: false},
		{name: "letters", input: "not-a-number", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "plus in the middle", input: "90+0000000", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&mobileNumberFixture{MobileNumber: tc.input})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
