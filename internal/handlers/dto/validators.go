package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// RegisterValidators registra as validações customizadas no validador
// do Gin. Deve ser chamado uma vez na inicialização.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// cep: 8 dígitos, com ou sem máscara (#####-###)
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		_, err := valueobjects.NewCEP(fl.Field().String())
		return err == nil
	})
}
