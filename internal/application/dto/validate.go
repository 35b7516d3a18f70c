package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/obrasur/remitos-api/internal/domain"
)

// validate es la instancia compartida; es segura para uso concurrente y
// cachea la metadata de los structs.
var validate = validator.New()

// Validate aplica las reglas declaradas en los tags del DTO y traduce
// cualquier incumplimiento a domain.ErrValidation.
func Validate(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
