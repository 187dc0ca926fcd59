package providers

import (
	"errors"
	"github.com/gookit/validate"
	"readtrack/internal/structures"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

// Validate checks every section of the config against its struct tags and
// returns the first failing field.
func (c *CnfValidator) Validate() error {
	sections := []interface{}{
		&c.conf.WebServer,
		&c.conf.Persistence,
		&c.conf.Logger,
		&c.conf.Bible,
		&c.conf.Quotes,
		&c.conf.Tracker,
	}
	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return errors.New(v.Errors.One())
		}
	}
	return nil
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}
