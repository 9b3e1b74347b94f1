package models

import (
	"strings"
	"time"
)

// User represents a registered parent account
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ParentName   string    `json:"parent_name" db:"parent_name"`
	BabyName     string    `json:"baby_name" db:"baby_name"`
	BabyDOB      string    `json:"baby_dob" db:"baby_dob"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	SubscriptionState
}

// RegisterForm represents form data for creating an account
type RegisterForm struct {
	Email      string `json:"email"`
	Password   string `json:"-"`
	ParentName string `json:"parent_name"`
	BabyName   string `json:"baby_name"`
	BabyDOB    string `json:"baby_dob"`
}

// Validate validates the registration form data
func (f *RegisterForm) Validate() []string {
	var errors []string

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errors = append(errors, "Email is required")
	} else if len(email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	} else if !isValidEmail(email) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}

	if strings.TrimSpace(f.ParentName) == "" {
		errors = append(errors, "Parent name is required")
	}

	if strings.TrimSpace(f.BabyName) == "" {
		errors = append(errors, "Baby name is required")
	}

	if _, err := ParseDate(f.BabyDOB); err != nil {
		errors = append(errors, "Baby date of birth must be in YYYY-MM-DD format")
	}

	return errors
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false // No @, or @ at start/end
	}

	// Check for dot after @
	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
