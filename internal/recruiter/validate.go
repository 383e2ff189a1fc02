package recruiter

import (
	"regexp"
	"strings"

	"github.com/spigell/interview-panel/internal/platform"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidateParticipant checks the new participant form.
func ValidateParticipant(p platform.NewParticipant) error {
	var fields []string
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, "name")
	}
	if !ValidEmail(p.Email) {
		fields = append(fields, "email")
	}

	if len(fields) > 0 {
		return &platform.ValidationError{Message: "Check the participant name and email.", Fields: fields}
	}
	return nil
}

// ValidateCredentials checks the login form before anything is sent.
func ValidateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		var fields []string
		if email == "" {
			fields = append(fields, "email")
		}
		if password == "" {
			fields = append(fields, "password")
		}
		return &platform.ValidationError{Message: "Please fill in all fields.", Fields: fields}
	}

	if !ValidEmail(email) {
		return &platform.ValidationError{Message: "Invalid email address.", Fields: []string{"email"}}
	}

	return nil
}
