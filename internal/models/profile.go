package models

import (
	"strings"

	"github.com/pkg/errors"
)

// Profile kinds, one JSON object file each.
const (
	ProfileAdmin    = "admin"
	ProfileClient   = "client"
	ProfileDelivery = "delivery"
)

var profileKinds = map[string]struct{}{
	ProfileAdmin:    {},
	ProfileClient:   {},
	ProfileDelivery: {},
}

func IsProfileKind(kind string) bool {
	_, ok := profileKinds[kind]
	return ok
}

// Profile holds portal display data plus the demo credentials used by the
// sign-in form. There is no real session model behind them.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}
