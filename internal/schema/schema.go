// Package schema validates the event draft tree and the auth payloads.
// Errors carry dotted field paths the way the form layer addresses
// fields, e.g. days.0.batches.1.tickets.0.quantity.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ticketeiro/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error paths use the json tag names, matching the form bindings.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose FlexTime as its underlying time.Time so required and the
	// comparison rules see the zero value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ft, ok := field.Interface().(models.FlexTime); ok {
			return ft.Time
		}
		return nil
	}, models.FlexTime{})

	v.RegisterStructValidation(eventDraftRules, models.EventDraft{})

	return v
}

// eventDraftRules enforces the cross-field invariant: address fields
// are mandatory iff the event is in person.
func eventDraftRules(sl validator.StructLevel) {
	draft := sl.Current().Interface().(models.EventDraft)
	if draft.Mode != models.EventModeInPerson {
		return
	}
	if strings.TrimSpace(draft.City) == "" {
		sl.ReportError(draft.City, "city", "City", "required_in_person", "")
	}
	if strings.TrimSpace(draft.Neighborhood) == "" {
		sl.ReportError(draft.Neighborhood, "neighborhood", "Neighborhood", "required_in_person", "")
	}
	if strings.TrimSpace(draft.Address) == "" {
		sl.ReportError(draft.Address, "address", "Address", "required_in_person", "")
	}
	if strings.TrimSpace(draft.UF) == "" {
		sl.ReportError(draft.UF, "uf", "UF", "required_in_person", "")
	}
}

// FieldError is one failed rule, addressed by field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Path, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldPaths returns just the failed paths, in reported order.
func (e *ValidationError) FieldPaths() []string {
	paths := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		paths[i] = f.Path
	}
	return paths
}

// ValidateEventDraft checks the whole tree as a unit. On failure every
// leaf error is reported with its full path.
func ValidateEventDraft(draft *models.EventDraft) error {
	return run(draft)
}

func ValidateCredentialsSignUp(payload *models.CredentialsSignUp) error {
	return run(payload)
}

func ValidateCredentialsSignIn(payload *models.CredentialsSignIn) error {
	return run(payload)
}

func ValidateOAuthRegister(payload *models.OAuthRegister) error {
	return run(payload)
}

func run(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Path:    fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath converts a validator namespace such as
// EventDraft.days[0].batches[1].tickets[0].quantity into
// days.0.batches.1.tickets.0.quantity.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	namespace = strings.ReplaceAll(namespace, "]", "")
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "required_in_person":
		return "Campo obrigatório para eventos presenciais"
	case "email":
		return "Email inválido"
	case "eqfield":
		return "As senhas não coincidem"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Deve ter pelo menos %s caracteres", fe.Param())
		case reflect.Slice:
			return "Informe pelo menos um item"
		default:
			return fmt.Sprintf("Deve ser no mínimo %s", fe.Param())
		}
	case "max":
		return fmt.Sprintf("Deve ser no máximo %s", fe.Param())
	case "oneof":
		return "Valor inválido"
	}
	return "Valor inválido"
}
