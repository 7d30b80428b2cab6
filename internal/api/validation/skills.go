package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"
)

// ValidateKnownRole checks that a target role has a requirement profile
func ValidateKnownRole(fl validator.FieldLevel) bool {
	return utils.Contains(skills.Roles(), fl.Field().String())
}

// RegisterSkillValidators registers all skill-related custom validators
func RegisterSkillValidators(v *validator.Validate) {
	v.RegisterValidation("known_role", ValidateKnownRole)
}
