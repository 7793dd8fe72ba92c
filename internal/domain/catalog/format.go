package catalog

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultLocale = "en-IN"

// PriceFormatter renders whole-unit prices with the digit grouping of a
// locale and no fraction digits ("1,00,000" for en-IN).
type PriceFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

func NewPriceFormatter(locale string) (*PriceFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &PriceFormatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

func (f *PriceFormatter) Format(price int64) string {
	return f.printer.Sprintf("%v", number.Decimal(price, number.MaxFractionDigits(0)))
}

func (f *PriceFormatter) Locale() string {
	return f.tag.String()
}
