package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessGetTag    = "success get tag"
	MessageSuccessCreateTag = "tag created successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedGetTag    = "failed to get tag"
	MessageFailedCreateTag = "failed to create tag"

	ErrTagNotFound = errors.New("tag not found")
	ErrTagExists   = errors.New("a tag with this name or slug already exists")
)

type (
	CreateTagRequest struct {
		Name  string `json:"name" validate:"required,max=200,letters"`
		Color string `json:"color" validate:"required,tagcolor"`
		Slug  string `json:"slug" validate:"required,max=200,slug"`
	}

	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}
)
