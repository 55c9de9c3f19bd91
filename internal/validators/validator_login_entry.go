package validators

import (
	"context"
	"strings"

	"github.com/stenlik26/passvault/models"
)

const (
	FieldAddress  = "address"
	FieldUsername = "username"
	FieldPassword = "password"
)

// LoginEntryValidator checks the user-supplied fields of a login entry
// before it reaches the vault. The identity and timestamp fields are
// service-owned and never validated here.
type LoginEntryValidator struct {
}

func NewLoginEntryValidator() Validator {
	return &LoginEntryValidator{}
}

func (v *LoginEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginEntry:
		return v.validateLoginEntry(ctx, value, fields...)
	case *models.LoginEntry:
		return v.validateLoginEntry(ctx, *value, fields...)
	}
	return ErrUnsupportedType
}

func (v *LoginEntryValidator) validateLoginEntry(_ context.Context, entry models.LoginEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldAddress:
			if strings.TrimSpace(entry.Address) == "" {
				return ErrEmptyAddress
			}
		case FieldUsername:
			if strings.TrimSpace(entry.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if entry.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
