package validation

import (
	"strings"
	"testing"

	"github.com/RoGogDBD/items/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidation(t *testing.T) {
	v := New()

	name := "Test Item"
	longName := strings.Repeat("x", 226)
	emptyName := ""
	description := "Test Description"
	price := 199.99
	negativePrice := -1.0

	tests := []struct {
		name       string
		form       models.ItemForm
		wantErrors map[string]string
	}{
		{
			name: "valid full form",
			form: models.ItemForm{Name: &name, Description: &description, Price: &price},
		},
		{
			name: "empty form is valid",
			form: models.ItemForm{},
		},
		{
			name:       "negative price",
			form:       models.ItemForm{Name: &name, Price: &negativePrice},
			wantErrors: map[string]string{"price": "Price must be a positive number."},
		},
		{
			name:       "blank name",
			form:       models.ItemForm{Name: &emptyName},
			wantErrors: map[string]string{"name": "This field may not be blank."},
		},
		{
			name:       "name too long",
			form:       models.ItemForm{Name: &longName},
			wantErrors: map[string]string{"name": "Ensure this field has no more than 225 characters."},
		},
		{
			name:       "description too long",
			form:       models.ItemForm{Description: &longName},
			wantErrors: map[string]string{"description": "Ensure this field has no more than 225 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.form)
			if tt.wantErrors == nil {
				require.NoError(t, err)
				assert.Nil(t, FormatErrors(err))
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErrors, FormatErrors(err))
		})
	}
}

func TestFormatErrorsFirstMessageWins(t *testing.T) {
	v := New()

	negativePrice := -5.0
	emptyName := ""
	form := models.ItemForm{Name: &emptyName, Price: &negativePrice}

	errs := FormatErrors(v.Struct(&form))
	require.Len(t, errs, 2)
	assert.Equal(t, "This field may not be blank.", errs["name"])
	assert.Equal(t, "Price must be a positive number.", errs["price"])
}
