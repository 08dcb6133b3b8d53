package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/options"
)

// compositeConfig holds the settings shared by the composite encoders.
// Each constructor seeds its own defaults and documents which options it
// honors.
type compositeConfig struct {
	elem    Encoder
	delim   byte
	quoting bool
	null    []byte
}

func newCompositeConfig(elem Encoder, delim byte, quoting bool) compositeConfig {
	return compositeConfig{elem: elem, delim: delim, quoting: quoting}
}

func (c *compositeConfig) setElement(e Encoder) error {
	if e == nil {
		return fmt.Errorf("%w: element encoder cannot be nil", errs.ErrInvalidOption)
	}
	c.elem = e
	return nil
}

func (c *compositeConfig) setDelimiter(d byte) error {
	switch d {
	case 0, '"', '\\', '{', '}':
		return fmt.Errorf("%w: delimiter %q conflicts with quoting characters", errs.ErrInvalidOption, d)
	}
	c.delim = d
	return nil
}

func (c *compositeConfig) setNullToken(tok string) error {
	if tok == "" {
		return fmt.Errorf("%w: null token cannot be empty", errs.ErrInvalidOption)
	}
	c.null = []byte(tok)
	return nil
}

// CompositeOption configures a composite encoder at construction time.
type CompositeOption = options.Option[*compositeConfig]

// WithElement sets the encoder applied to each element or field. The
// default is String.
func WithElement(e Encoder) CompositeOption {
	return func(c *compositeConfig) error { return c.setElement(e) }
}

// WithDelimiter sets the separator byte between elements. Bytes that
// collide with the quoting dialect ('"', '\\', '{', '}', and NUL) are
// rejected with errs.ErrInvalidOption.
func WithDelimiter(d byte) CompositeOption {
	return func(c *compositeConfig) error { return c.setDelimiter(d) }
}

// WithQuoting toggles element quoting. With quoting off, element text is
// emitted verbatim and the caller vouches that it needs no escaping.
func WithQuoting(enabled bool) CompositeOption {
	return options.NoError(func(c *compositeConfig) { c.quoting = enabled })
}

// WithNullToken sets the token CopyRow writes for null fields, `\N` by
// default. The token is written verbatim, without escaping.
func WithNullToken(tok string) CompositeOption {
	return func(c *compositeConfig) error { return c.setNullToken(tok) }
}
