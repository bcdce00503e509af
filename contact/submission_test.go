package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/contact"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

func validRequest() contact.SubmitRequest {
	return contact.SubmitRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I would like to get in touch.",
	}
}

func TestSubmitRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid minimal submission", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validRequest().Validate(0))
	})

	t.Run("optional fields accepted unchecked", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Subject = strings.Repeat("s", 5000)
		req.Phone = "not a phone at all"
		req.Company = "<Company/>"
		assert.NoError(t, req.Validate(0))
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Name = ""
		err := req.Validate(0)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("name"))
	})

	t.Run("name too short after trimming", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Name = " J "
		err := req.Validate(0)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("name"))
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Email = "not-an-email"
		err := req.Validate(0)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("email"))
	})

	t.Run("message too short after trimming", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Message = "   short   "
		err := req.Validate(0)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("message"))
	})

	t.Run("message exceeds raw length cap", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Message = strings.Repeat("a", contact.DefaultMaxMessageLength+1)
		err := req.Validate(0)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("message"))
	})

	t.Run("custom message cap applies", func(t *testing.T) {
		t.Parallel()
		req := validRequest()
		req.Message = strings.Repeat("a", 101)
		assert.Error(t, req.Validate(100))
		assert.NoError(t, req.Validate(200))
	})

	t.Run("all failures collected", func(t *testing.T) {
		t.Parallel()
		req := contact.SubmitRequest{Name: "J", Email: "not-an-email", Message: "short"}
		err := req.Validate(0)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("message"))
		assert.Len(t, errs, 3)
	})
}

func TestSubmitRequest_Submission(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Subject = "Hi"
	req.Phone = "+1 555 0100"
	req.Company = "Acme"

	sub := req.Submission()
	assert.Equal(t, req.Name, sub.Name)
	assert.Equal(t, req.Email, sub.Email)
	assert.Equal(t, req.Message, sub.Message)
	assert.Equal(t, req.Subject, sub.Subject)
	assert.Equal(t, req.Phone, sub.Phone)
	assert.Equal(t, req.Company, sub.Company)
}
