package apierror

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFieldErrors(t *testing.T) {
	assert.Nil(t, FromFieldErrors(nil))
	assert.Nil(t, FromFieldErrors(map[string]string{}))

	structured := FromFieldErrors(map[string]string{"cpf": "CPF é obrigatório"})
	require.NotNil(t, structured)
	assert.Equal(t, http.StatusUnprocessableEntity, structured.Code())

	body, err := json.Marshal(structured)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors": {"cpf": ["CPF é obrigatório"]}}`, string(body))
}

func TestDuplicateSubmissionError(t *testing.T) {
	apierr := DuplicateSubmissionError

	assert.Equal(t, http.StatusConflict, apierr.Code())

	body, err := json.Marshal(apierr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "This proposal is already being submitted"}`, string(body))
}
