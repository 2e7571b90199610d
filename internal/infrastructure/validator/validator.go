package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// NewValidator creates a validator with the custom tags registered.
func NewValidator() *AppValidator {
	v := validator.New()
	registerOn(v)
	return &AppValidator{validate: v}
}

// ValidateUsername checks length and allowed characters.
func (av *AppValidator) ValidateUsername(username string) error {
	if err := av.validate.Var(username, "required,min=3,max=32,username"); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	return nil
}

// ValidateDirection accepts "like" and "dislike" only.
func (av *AppValidator) ValidateDirection(direction string) error {
	if err := av.validate.Var(direction, "required,reactiondirection"); err != nil {
		return fmt.Errorf("invalid direction %q: %w", direction, err)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerOn(v)
	}
}

func registerOn(v *validator.Validate) {
	_ = v.RegisterValidation("reactiondirection", reactionDirectionFL)
	_ = v.RegisterValidation("username", usernameFL)
}

func reactionDirectionFL(fl validator.FieldLevel) bool {
	return entity.ReactionType(fl.Field().String()).Valid()
}

// usernameFL allows letters, digits and . _ - like the forum's user model.
func usernameFL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, char := range s {
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && !strings.ContainsRune("._-", char) {
			return false
		}
	}
	return true
}
