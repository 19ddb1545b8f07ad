package types

import (
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Payload Validation
// ------------------------------

// nodeNameRegex matches DNS-label style node names.
var nodeNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-.]*[a-z0-9])?$`)

// Authorities accepted by the accounts endpoint.
const (
	AuthorityAdmin = "admin"
	AuthorityUser  = "user"
)

func (r NewAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.APIKey, validation.Required),
		validation.Field(&r.Authority, validation.In(AuthorityAdmin, AuthorityUser)),
	)
}

func (r NewNodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NodeName, validation.Required, validation.Length(1, 255), validation.Match(nodeNameRegex)),
		validation.Field(&r.Command, validation.Required),
	)
}

func (r NewPredefRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Provider, validation.Required),
	)
}

func (r NewPredefCloudRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Spec),
	)
}

func (s PredefCloudSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.TypeName, validation.Required),
	)
}

// ValidateIDPresent rejects empty path identifiers before a request is built.
func ValidateIDPresent(id, field string) error {
	return validation.Validate(id, validation.Required.Error(field+" is required"))
}
