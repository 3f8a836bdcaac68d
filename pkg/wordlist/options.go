// pkg/wordlist/options.go

package wordlist

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/basewords"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/mutate"
)

// DefaultSpecialChars is the special-character vocabulary drawn on for
// template binding, insertion variants, and leet substitutions.
const DefaultSpecialChars = "!@#$%&*_.-"

// Options tunes a generation run. The zero value is not usable; start
// from Default and override.
type Options struct {
	// Length band and output bound.
	MinLength int `validate:"gte=1"`
	MaxLength int `validate:"gte=1"`
	MaxOutput int `validate:"gte=1"`

	// Stage switches. A disabled stage contributes nothing.
	EnableNumbers  bool
	EnableSpecials bool
	EnableCombine  bool
	LeetLevel      int `validate:"gte=0,lte=4"`

	// Character vocabularies.
	SpecialChars string
	Separators   []string

	// Per-stage work bounds.
	PerSourceCap int `validate:"gte=1"`
	NumberCap    int `validate:"gte=0"`
	SpecialCap   int `validate:"gte=0"`
	LeetCap      int `validate:"gte=0"`
	CombineCap   int `validate:"gte=0"`

	// Leet enumeration ceilings.
	LeetExhaustiveLimit int `validate:"gte=0"`
	LeetComboBudget     int `validate:"gte=0"`

	// Optional filter tightening.
	MaxDigitRun         int `validate:"gte=0"`
	MinUpper            int `validate:"gte=0"`
	MinDigits           int `validate:"gte=0"`
	MinSpecials         int `validate:"gte=0"`
	MaxRepeat           int `validate:"gte=0"`
	BanSequentialDigits bool

	// Seed drives every random draw in the run. The same profile,
	// options, and seed always reproduce the same list.
	Seed int64
}

// Default returns the standard run configuration.
func Default() Options {
	return Options{
		MinLength: 6,
		MaxLength: 20,
		MaxOutput: 5000,

		EnableNumbers:  true,
		EnableSpecials: true,
		EnableCombine:  true,
		LeetLevel:      1,

		SpecialChars: DefaultSpecialChars,
		Separators:   mutate.DefaultSeparators,

		PerSourceCap: basewords.DefaultPerSourceCap,
		NumberCap:    100,
		SpecialCap:   50,
		LeetCap:      200,
		CombineCap:   50,

		LeetExhaustiveLimit: 3,
		LeetComboBudget:     1000,

		MaxDigitRun: 5,
	}
}

// Validate reports every violation at once, never just the first.
func (o Options) Validate() error {
	var verr error

	if err := validator.New().Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if cerr.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verr = multierror.Append(verr, cerr.Newf(
					"option %s: value %v fails constraint %q", fe.Field(), fe.Value(), fe.Tag()))
			}
		} else {
			verr = multierror.Append(verr, err)
		}
	}

	if o.MinLength > o.MaxLength {
		verr = multierror.Append(verr, cerr.Newf(
			"min length %d exceeds max length %d", o.MinLength, o.MaxLength))
	}
	if o.LeetLevel > 0 && o.LeetCap > 0 && o.LeetComboBudget == 0 && o.LeetLevel >= 3 {
		verr = multierror.Append(verr, cerr.Newf(
			"leet level %d needs a combination budget", o.LeetLevel))
	}
	return verr
}
