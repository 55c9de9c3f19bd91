// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stenlik26/passvault/models"
)

func TestLoginEntryValidator_Validate(t *testing.T) {
	ctx := context.Background()
	validator := NewLoginEntryValidator()

	valid := models.LoginEntry{
		Address:  "https://example.com",
		Username: "john",
		Password: "p@ss1",
	}

	tests := []struct {
		name    string
		input   any
		fields  []string
		wantErr error
	}{
		{name: "valid entry", input: valid},
		{name: "valid entry pointer", input: &valid},
		{name: "unsupported type", input: "not an entry", wantErr: ErrUnsupportedType},
		{name: "unknown field", input: valid, fields: []string{"id"}, wantErr: ErrUnknownField},
		{
			name:    "empty address",
			input:   models.LoginEntry{Username: "john", Password: "p@ss1"},
			wantErr: ErrEmptyAddress,
		},
		{
			name:    "whitespace address",
			input:   models.LoginEntry{Address: "   ", Username: "john", Password: "p@ss1"},
			wantErr: ErrEmptyAddress,
		},
		{
			name:    "empty username",
			input:   models.LoginEntry{Address: "https://example.com", Password: "p@ss1"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty password",
			input:   models.LoginEntry{Address: "https://example.com", Username: "john"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:   "scoped to address only ignores missing password",
			input:  models.LoginEntry{Address: "https://example.com"},
			fields: []string{FieldAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(ctx, tt.input, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
