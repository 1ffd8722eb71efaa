package identity

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Request is the name/email pair typed on the login form or for an invitee.
type Request struct {
	Name  string `validate:"required,max=80"`
	Email string `validate:"required,email,max=254"`
}

// Normalize trims both fields.
func (r Request) Normalize() Request {
	return Request{Name: strings.TrimSpace(r.Name), Email: strings.TrimSpace(r.Email)}
}

func Validate(req Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidUser, err)
	}
	return nil
}

// NewUser validates the request and allocates a fresh identity.
func NewUser(req Request) (domain.User, error) {
	req = req.Normalize()
	if err := Validate(req); err != nil {
		return domain.User{}, err
	}
	return domain.NewUser(req.Name, req.Email), nil
}

// NewInvitee validates the request and allocates an invitation placeholder.
func NewInvitee(req Request) (domain.User, error) {
	req = req.Normalize()
	if err := Validate(req); err != nil {
		return domain.User{}, err
	}
	return domain.NewInvitee(req.Name, req.Email), nil
}
