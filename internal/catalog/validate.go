// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"catalog/internal/slug"
)

// CreateBrandRequest is the body of POST /brands.
type CreateBrandRequest struct {
	Brand string `json:"brand" validate:"notblank,max=100"`
}

// UpdateBrandRequest is the body of PUT /brands.
type UpdateBrandRequest struct {
	ID    int    `json:"id" validate:"gt=0,lte=2147483647"`
	Brand string `json:"brand" validate:"notblank,max=100"`
}

// CreateCategoryRequest is the body of POST /categories. A nil ParentID
// creates a root category.
type CreateCategoryRequest struct {
	Category string `json:"category" validate:"notblank,max=100"`
	ParentID *int   `json:"parentId" validate:"omitempty,gt=0,lte=2147483647"`
}

// UpdateCategoryRequest is the body of PUT /categories.
type UpdateCategoryRequest struct {
	ID       int    `json:"id" validate:"gt=0,lte=2147483647"`
	Category string `json:"category" validate:"notblank,max=100"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name              string `json:"name" validate:"notblank,max=100"`
	Description       string `json:"description" validate:"notblank,max=5000"`
	MaxStockThreshold int    `json:"maxStockThreshold" validate:"gte=0,lte=2147483647"`
	BrandID           int    `json:"brandId" validate:"gt=0,lte=2147483647"`
	CategoryID        int    `json:"catalogId" validate:"gt=0,lte=2147483647"`
}

// UpdateItemRequest is the body of PUT /items.
type UpdateItemRequest struct {
	Slug        string `json:"slug" validate:"notblank"`
	Description string `json:"description" validate:"notblank,max=5000"`
	BrandID     int    `json:"brandId" validate:"gt=0,lte=2147483647"`
	CategoryID  int    `json:"catalogId" validate:"gt=0,lte=2147483647"`
}

// UpdateMaxStockThresholdRequest is the body of PATCH /items/max_stock_threshold.
type UpdateMaxStockThresholdRequest struct {
	Slug              string `json:"slug" validate:"notblank"`
	MaxStockThreshold int    `json:"maxStockThreshold" validate:"gte=0,lte=2147483647"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return v
}

// validateStruct runs the tag rules and collects every failure.
func validateStruct(req any) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a non-struct argument.
		panic(fmt.Sprintf("validate %T: %v", req, err))
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.add(fe.Field(), message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "max":
		return fmt.Sprintf("The length of '%s' must be %s characters or fewer.", field, fe.Param())
	case "gt":
		if field == "parentId" {
			return "ParentId, if provided, must be a greater than zero."
		}
		return fmt.Sprintf("'%s' must be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' must be greater than or equal to %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be less than or equal to %s.", field, fe.Param())
	default:
		return fmt.Sprintf("'%s' is not valid.", field)
	}
}

// asError avoids returning a typed nil inside the error interface.
func asError(ve *ValidationError) error {
	if ve == nil {
		return nil
	}
	return ve
}

// Validate checks the request shape.
func (r CreateBrandRequest) Validate() error { return asError(validateStruct(r)) }

// Validate checks the request shape.
func (r UpdateBrandRequest) Validate() error { return asError(validateStruct(r)) }

// Validate checks the request shape.
func (r CreateCategoryRequest) Validate() error { return asError(validateStruct(r)) }

// Validate checks the request shape.
func (r UpdateCategoryRequest) Validate() error { return asError(validateStruct(r)) }

// Validate checks the request shape. The name must also produce a
// non-empty slug, since the slug is the item's identity.
func (r CreateItemRequest) Validate() error {
	ve := validateStruct(r)
	if !fieldFailed(ve, "name") && slug.Generate(r.Name) == "" {
		if ve == nil {
			ve = &ValidationError{}
		}
		ve.add("name", "'name' must contain at least one letter or digit.")
	}
	return asError(ve)
}

// Validate checks the request shape.
func (r UpdateItemRequest) Validate() error { return asError(validateStruct(r)) }

// Validate checks the request shape.
func (r UpdateMaxStockThresholdRequest) Validate() error { return asError(validateStruct(r)) }

func fieldFailed(ve *ValidationError, field string) bool {
	if ve == nil {
		return false
	}
	_, ok := ve.Fields[field]
	return ok
}

// maxID is the largest value of the serial (int4) id columns.
const maxID = math.MaxInt32

// validID rejects identifiers from the URL that no row can have.
func validID(id int) error {
	if id <= 0 || id > maxID {
		return fieldError("id", "Id is not valid.")
	}
	return nil
}

// validSlug rejects blank slugs from the URL.
func validSlug(s string) error {
	if strings.TrimSpace(s) == "" {
		return fieldError("slug", "Slug is not valid.")
	}
	return nil
}
