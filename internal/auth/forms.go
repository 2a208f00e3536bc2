package auth

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var phoneCleaner = regexp.MustCompile(`[\s\-()]+`)

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// isValidPhone accepts at least ten digits after stripping separators.
func isValidPhone(phone string) bool {
	cleaned := phoneCleaner.ReplaceAllString(phone, "")
	if len(cleaned) < 10 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LoginForm is the login screen's state. Validation errors are
// per-field, user-visible, and block the submit without being fatal.
type LoginForm struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password" validate:"required,min=8"`
}

func (f LoginForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.EmailOrPhone) == "" {
		errs["email_or_phone"] = "Email or phone number is required"
	} else if !isValidEmail(f.EmailOrPhone) && !isValidPhone(f.EmailOrPhone) {
		errs["email_or_phone"] = "Please enter a valid email address or phone number"
	}

	if err := validate.Var(f.Password, "required"); err != nil {
		errs["password"] = "Password is required"
	} else if err := validate.Var(f.Password, "min=8"); err != nil {
		errs["password"] = "Password must be at least 8 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsEmail reports whether the identifier the user typed is an email
// (as opposed to a phone number).
func (f LoginForm) IsEmail() bool {
	return isValidEmail(f.EmailOrPhone)
}

// SignUpForm is the account-creation screen's state.
type SignUpForm struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password"`
	IDNumber        string `json:"id_number" validate:"required"`
	Address         string `json:"address"`
	MedicalInfo     string `json:"medical_info"`
	AgreedToTerms   bool   `json:"agreed_to_terms"`
}

func (f SignUpForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	} else if len(f.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !isValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(f.Phone) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	} else if f.Password != f.ConfirmPassword {
		errs["password"] = "Passwords do not match"
	}

	if strings.TrimSpace(f.IDNumber) == "" {
		errs["id_number"] = "ID number is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// VerifyOTPForm is the OTP screen's state. Terms must have been agreed
// to before verification can run.
type VerifyOTPForm struct {
	Email         string `json:"email" validate:"required,email"`
	Name          string `json:"name" validate:"required"`
	OTPCode       string `json:"otp_code"`
	AgreedToTerms bool   `json:"agreed_to_terms"`
}

var otpPattern = regexp.MustCompile(`^\d{6}$`)

func (f VerifyOTPForm) Validate() map[string]string {
	errs := make(map[string]string)

	if !isValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	if !otpPattern.MatchString(f.OTPCode) {
		errs["otp_code"] = "OTP code must be 6 digits"
	}
	if !f.AgreedToTerms {
		errs["agreed_to_terms"] = "You must agree to the terms to continue"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
