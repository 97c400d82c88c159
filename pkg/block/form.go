package block

import (
	"errors"
	"slices"
	"strconv"

	"github.com/umputun/freshblock/pkg/domain"
)

// form field names, shared by the admin form and the stored configuration
const (
	FieldTitle            = "title"
	FieldNoResultsMessage = "no_results_message"
	FieldCacheHours       = "how_many_hours_to_cache"
	FieldResultLimit      = "how_many_to_show"
)

const defaultMessage = "There are no updated content for today."

// Values is a submitted key/value form post
type Values map[string]string

// FieldOption is a choice of a select field
type FieldOption struct {
	Value string
	Label string
}

// Field describes one form element
type Field struct {
	Name        string
	Type        string // textfield or select
	Title       string
	Description string
	Value       string
	Required    bool
	Options     []FieldOption
	Error       string
}

// FormSpec is the configuration form of a block
type FormSpec struct {
	Fields []Field
}

// Field returns the named field and true if present
func (f FormSpec) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// WithError attaches a validation error to its field
func (f FormSpec) WithError(verr *domain.ValidationError) FormSpec {
	res := FormSpec{Fields: slices.Clone(f.Fields)}
	for i := range res.Fields {
		if res.Fields[i].Name == verr.Field {
			res.Fields[i].Error = verr.Reason
		}
	}
	return res
}

// Defaults returns the configuration of a newly placed block
func Defaults() domain.BlockConfig {
	return domain.BlockConfig{
		Title:            defaultMessage,
		NoResultsMessage: defaultMessage,
		CacheHours:       12,
		ResultLimit:      0,
	}
}

// Form renders the configuration form for cfg
func Form(cfg domain.BlockConfig) FormSpec {
	opts := make([]FieldOption, 0, len(domain.CacheHourOptions))
	for _, h := range domain.CacheHourOptions {
		v := strconv.Itoa(h)
		opts = append(opts, FieldOption{Value: v, Label: v})
	}

	return FormSpec{Fields: []Field{
		{
			Name:        FieldTitle,
			Type:        "textfield",
			Title:       "Title for the results.",
			Description: `Enter a title to show in the block container (uncheck "Display title" when placing if entered).`,
			Value:       cfg.Title,
		},
		{
			Name:        FieldNoResultsMessage,
			Type:        "textfield",
			Title:       "Message for no results",
			Description: "Enter a brief message to show for when there are no results.",
			Value:       cfg.NoResultsMessage,
			Required:    true,
		},
		{
			Name:        FieldCacheHours,
			Type:        "select",
			Title:       "How many hours to cache?",
			Description: "How many hours should the block be refreshed with data.",
			Value:       strconv.Itoa(cfg.CacheHours),
			Options:     opts,
		},
		{
			Name:        FieldResultLimit,
			Type:        "textfield",
			Title:       "How many results to show?",
			Description: "Enter 0 to show all results.",
			Value:       strconv.Itoa(cfg.ResultLimit),
			Required:    true,
		},
	}}
}

// Validate checks submitted values. Required fields must be present, cache hours must be
// one of the offered options and the result limit must be numeric. Every failing field is
// reported as a *domain.ValidationError, joined in form order.
func Validate(values Values) error {
	var errs []error
	if values[FieldNoResultsMessage] == "" {
		errs = append(errs, &domain.ValidationError{Field: FieldNoResultsMessage, Reason: "required"})
	}
	if hours, ok := values[FieldCacheHours]; ok && hours != "" && !isCacheHoursOption(hours) {
		errs = append(errs, &domain.ValidationError{Field: FieldCacheHours, Reason: "illegal choice"})
	}
	if !isNumeric(values[FieldResultLimit]) {
		errs = append(errs, &domain.ValidationError{Field: FieldResultLimit, Reason: "not numeric"})
	}
	return errors.Join(errs...)
}

// FieldErrors extracts the per field validation errors from an error returned by Validate
func FieldErrors(err error) []*domain.ValidationError {
	var res []*domain.ValidationError
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) { //nolint:errorlint // walking joined errors
		case *domain.ValidationError:
			res = append(res, v)
		case interface{ Unwrap() []error }:
			for _, je := range v.Unwrap() {
				walk(je)
			}
		}
	}
	walk(err)
	return res
}

// isCacheHoursOption reports whether v is exactly one of the offered select keys
func isCacheHoursOption(v string) bool {
	return slices.ContainsFunc(domain.CacheHourOptions, func(h int) bool { return strconv.Itoa(h) == v })
}

// Submit converts validated values into a block configuration. A missing cache hours
// value keeps the default.
func Submit(values Values) domain.BlockConfig {
	cfg := domain.BlockConfig{
		Title:            values[FieldTitle],
		NoResultsMessage: values[FieldNoResultsMessage],
		CacheHours:       Defaults().CacheHours,
		ResultLimit:      toInt(values[FieldResultLimit]),
	}
	if hours, ok := values[FieldCacheHours]; ok && hours != "" {
		cfg.CacheHours = toInt(hours)
	}
	return cfg
}
