package tinylog

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateWriterConfig(config *WriterConfig) error {
	if config == nil {
		return errors.New(errMsgNilWriter)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(config); err != nil {
		return err
	}

	return nil
}
