package app_error

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Tags   []string `json:"tags" validate:"min=1"`
	Hidden string   `json:"-"`
	Level  string   `validate:"omitempty,oneof=School College"`
}

func TestFromBindingErrorUsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(signup{Name: "too long", Email: "nope", Level: "Kindergarten"})
	require.Error(t, err)

	verr := FromBindingError(err)
	messages := map[string]string{}
	for _, f := range verr.Fields {
		messages[f.Field] = f.Message
	}
	assert.Equal(t, "must be at most 5 characters", messages["name"])
	assert.Equal(t, "must be a valid email address", messages["email"])
	assert.Equal(t, "must be at least 1 item(s)", messages["tags"])
	assert.Equal(t, "must be one of: School, College", messages["Level"])
}

func TestFromBindingErrorReportsBody(t *testing.T) {
	var target signup
	err := json.Unmarshal([]byte("{"), &target)
	require.Error(t, err)

	verr := FromBindingError(err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "body", verr.Fields[0].Field)
}
