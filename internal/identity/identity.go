// Package identity resolves the author of generated files from the user's
// global Git configuration.
package identity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingConfig is matched by errors.Is for any identity lookup that
// found user.name or user.email unset.
var ErrMissingConfig = errors.New("missing git identity")

const remediation = `your global Git config must contain both user.name and user.email.

To set your name:
    $ git config --global user.name 'John Doe'
To set your email:
    $ git config --global user.email 'john@doe.com'`

// Identity is the author stamped into generated files.
type Identity struct {
	Name  string
	Email string
}

// String formats the identity as "name <email>".
func (id Identity) String() string {
	return fmt.Sprintf("%s <%s>", id.Name, id.Email)
}

// Validate reports a *MissingError naming every empty field.
func (id Identity) Validate() error {
	var missing []string
	if strings.TrimSpace(id.Name) == "" {
		missing = append(missing, "user.name")
	}
	if strings.TrimSpace(id.Email) == "" {
		missing = append(missing, "user.email")
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

// Provider looks up the current author.
type Provider interface {
	Identity() (Identity, error)
}

// Static is a Provider returning a fixed identity.
type Static Identity

// Identity implements Provider.
func (s Static) Identity() (Identity, error) {
	id := Identity(s)
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// MissingError is returned when one or both identity keys are unset.
type MissingError struct {
	// Keys lists the unset configuration keys, e.g. "user.email".
	Keys []string
}

func (e *MissingError) Error() string {
	return remediation
}

// Is makes errors.Is(err, ErrMissingConfig) succeed.
func (e *MissingError) Is(target error) bool {
	return target == ErrMissingConfig
}

// UserFacing marks the error as an expected, reportable condition.
func (e *MissingError) UserFacing() {}
