package validation

import "github.com/Skotchmaster/marketplace/internal/domain"

type ProfileInput struct {
	Name    string
	TaxID   string
	Phone   string
	City    string
	Address string
}

type RegistrationInput struct {
	Username string
	Password string
	Profile  ProfileInput
}

const minPasswordLen = 8

func profileName(p ProfileInput) (ProfileInput, error) {
	var err error
	p.Name, err = requireText("name", p.Name, 255)
	return p, err
}

func profileTaxID(p ProfileInput) (ProfileInput, error) {
	var err error
	p.TaxID, err = requireText("tax_id", p.TaxID, 18)
	return p, err
}

func profileContact(p ProfileInput) (ProfileInput, error) {
	var err error
	if p.Phone, err = optionalText("phone", p.Phone, 20); err != nil {
		return p, err
	}
	if p.City, err = optionalText("city", p.City, 100); err != nil {
		return p, err
	}
	p.Address, err = optionalText("address", p.Address, 255)
	return p, err
}

func Profile(p ProfileInput) (ProfileInput, error) {
	return Apply(p, profileName, profileTaxID, profileContact)
}

// ProfileUpdate skips tax id, it cannot change after registration.
func ProfileUpdate(p ProfileInput) (ProfileInput, error) {
	return Apply(p, profileName, profileContact)
}

// Credentials checks username and password only.
func Credentials(r RegistrationInput) (RegistrationInput, error) {
	var err error
	if r.Username, err = requireText("username", r.Username, 150); err != nil {
		return r, err
	}
	if len(r.Password) < minPasswordLen {
		return r, domain.Validationf("password must be at least %d characters", minPasswordLen)
	}
	return r, nil
}

func registrationProfile(r RegistrationInput) (RegistrationInput, error) {
	var err error
	r.Profile, err = Profile(r.Profile)
	return r, err
}

func Registration(r RegistrationInput) (RegistrationInput, error) {
	return Apply(r, Credentials, registrationProfile)
}
