package utils

import (
	"Foodgram-Backend/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTagColor(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"#fff", true},
		{"#1a2b3c", true},
		{"#FFF", true},
		{"#A1B2C3", true},
		{"#12", false},
		{"#1a2b3", false},
		{"red", false},
		{"fff", false},
		{"#ggg", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidateTagColor(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidFormat, tc.in)
		}
	}

	assert.Equal(t, "#a1b2c3", NormalizeTagColor("#A1B2C3"))
}

func TestValidateLettersOnly(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"Anna", true},
		{"Анна", true},
		{"Ёжик", true},
		{"ёж", true},
		{"Jean-Luc", true},
		{"Mary Ann", true},
		{"A", false},
		{"Ё", false},
		{"Anna1", false},
		{"O'Neil", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidateLettersOnly(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidCharacters, tc.in)
		}
	}
}

func TestValidateReservedUsername(t *testing.T) {
	for _, in := range []string{"me", "Me", "mE", "ME"} {
		assert.ErrorIs(t, ValidateReservedUsername(in), ErrReservedValue, in)
	}
	for _, in := range []string{"meme", "m", "anna"} {
		assert.NoError(t, ValidateReservedUsername(in), in)
	}
}

func TestValidateUsernameAndSlug(t *testing.T) {
	assert.NoError(t, ValidateUsername("anna.smith+1@mail"))
	assert.NoError(t, ValidateUsername("иван_1"))
	assert.ErrorIs(t, ValidateUsername("bad name"), ErrInvalidUsername)
	assert.ErrorIs(t, ValidateUsername("bad!"), ErrInvalidUsername)

	assert.NoError(t, ValidateSlug("breakfast_1-a"))
	assert.ErrorIs(t, ValidateSlug("завтрак"), ErrInvalidSlug)
	assert.ErrorIs(t, ValidateSlug("with space"), ErrInvalidSlug)
}

func TestTranslateValidation(t *testing.T) {
	InitValidator()

	register := domain.RegisterRequest{
		Email:     "me@example.com",
		Username:  "Me",
		FirstName: "Anna",
		LastName:  "Smith",
		Password:  "password123",
	}

	cases := []struct {
		name   string
		req    any
		reason string
	}{
		{"tag color", domain.CreateTagRequest{Name: "Lunch", Color: "red", Slug: "lunch"}, ErrInvalidFormat.Error()},
		{"tag slug", domain.CreateTagRequest{Name: "Lunch", Color: "#fff", Slug: "об ед"}, ErrInvalidSlug.Error()},
		{"tag name", domain.CreateTagRequest{Name: "L", Color: "#fff", Slug: "lunch"}, ErrInvalidCharacters.Error()},
		{"reserved username", register, ErrReservedValue.Error()},
		{"required field", domain.CreateTagRequest{}, "name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := TranslateValidation(Validate.Struct(tc.req))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
			assert.EqualError(t, err, tc.reason)
		})
	}

	plain := errors.New("not a validator error")
	assert.Same(t, plain, TranslateValidation(plain))
}
