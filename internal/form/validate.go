package form

import (
	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// Field names used as keys in validation error maps.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPriority    = "priority"
	FieldEmail       = "email"
)

// draftRules mirrors the draft fields that carry validation rules.
type draftRules struct {
	Title       string `validate:"required,min=5"`
	Description string `validate:"required,min=10"`
	Category    string `validate:"required,category"`
	Priority    string `validate:"required,priority"`
	Email       string `validate:"omitempty,email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.ValidCategory(domain.TicketCategory(fl.Field().String()))
	})
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return domain.ValidPriority(domain.TicketPriority(fl.Field().String()))
	})
	return v
}

// validateDraft runs the field rules and translates failures into the
// per-field messages shown inline next to each field.
func validateDraft(d domain.Draft) map[string]string {
	rules := draftRules{
		Title:       d.Title,
		Description: d.Description,
		Category:    string(d.Category),
		Priority:    string(d.Priority),
		Email:       d.ContactEmail,
	}
	err := validate.Struct(rules)
	if err == nil {
		return map[string]string{}
	}

	errs := map[string]string{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "validation failed"
		return errs
	}
	for _, fieldErr := range validationErrs {
		switch fieldErr.StructField() {
		case "Title":
			if fieldErr.Tag() == "required" {
				errs[FieldTitle] = "title is required"
			} else {
				errs[FieldTitle] = "minimum 5 characters"
			}
		case "Description":
			if fieldErr.Tag() == "required" {
				errs[FieldDescription] = "description is required"
			} else {
				errs[FieldDescription] = "minimum 10 characters"
			}
		case "Category":
			if fieldErr.Tag() == "required" {
				errs[FieldCategory] = "category is required"
			} else {
				errs[FieldCategory] = "invalid category"
			}
		case "Priority":
			if fieldErr.Tag() == "required" {
				errs[FieldPriority] = "priority is required"
			} else {
				errs[FieldPriority] = "invalid priority"
			}
		case "Email":
			errs[FieldEmail] = "invalid email address"
		}
	}
	return errs
}
