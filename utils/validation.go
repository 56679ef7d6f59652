package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	SkillTypeOffered = "offered"
	SkillTypeWanted  = "wanted"
)

var validate = validator.New()

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("skilltype", skillType)
	}
}

func skillType(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == SkillTypeOffered || s == SkillTypeWanted
}

// ValidEmail reports whether s is a syntactically valid email address.
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
