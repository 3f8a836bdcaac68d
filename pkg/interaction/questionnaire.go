// pkg/interaction/questionnaire.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CollectProfile walks the user through the profile questionnaire.
// Every question may be skipped with an empty answer; dates re-prompt
// until they parse or are skipped.
func CollectProfile(ctx context.Context, reader *bufio.Reader) (profile.Profile, error) {
	log := otelzap.Ctx(ctx)
	log.Info("terminal prompt: Insert the information about the target to build a wordlist.")
	log.Info("terminal prompt: Leave a field empty to skip it.")
	log.Info("terminal prompt: ")

	var p profile.Profile
	var err error

	if p.FirstName, err = ReadLine(ctx, reader, "> First name"); err != nil {
		return p, err
	}
	if p.LastName, err = ReadLine(ctx, reader, "> Last name"); err != nil {
		return p, err
	}
	if p.Nickname, err = ReadLine(ctx, reader, "> Nickname"); err != nil {
		return p, err
	}
	if p.MaidenName, err = ReadLine(ctx, reader, "> Maiden name"); err != nil {
		return p, err
	}
	if p.BirthDate, err = promptDate(ctx, reader, "> Birth date (DDMMYYYY)"); err != nil {
		return p, err
	}

	log.Info("terminal prompt: ")
	if p.SpouseName, err = ReadLine(ctx, reader, "> Partner's name"); err != nil {
		return p, err
	}

	children, err := promptList(ctx, reader, "> Children's names (comma separated)")
	if err != nil {
		return p, err
	}
	p.ChildNames = children

	if p.PetName, err = ReadLine(ctx, reader, "> Pet's name"); err != nil {
		return p, err
	}

	log.Info("terminal prompt: ")
	if p.Phone, err = ReadLine(ctx, reader, "> Phone number"); err != nil {
		return p, err
	}
	if p.Zip, err = ReadLine(ctx, reader, "> Postcode"); err != nil {
		return p, err
	}

	keywords, err := promptList(ctx, reader, "> Keywords (comma separated)")
	if err != nil {
		return p, err
	}
	p.Keywords = keywords

	dates, err := promptList(ctx, reader, "> Other important dates (DDMMYYYY, comma separated)")
	if err != nil {
		return p, err
	}
	for _, d := range dates {
		if profile.ParseDate(d).IsZero() {
			log.Info("terminal prompt: ⚠️  Skipping unrecognized date: " + d)
			continue
		}
		p.OtherDates = append(p.OtherDates, d)
	}

	interests, err := promptInterests(ctx, reader)
	if err != nil {
		return p, err
	}
	p.Interests = interests

	return p, nil
}

// CollectOptions asks the mutation questions, starting from base values.
// Answers override the base; unrecognized answers keep it.
func CollectOptions(ctx context.Context, reader *bufio.Reader, base wordlist.Options) (wordlist.Options, error) {
	log := otelzap.Ctx(ctx)
	log.Info("terminal prompt: ")
	log.Info("terminal prompt: Mutation options")

	opts := base
	opts.EnableNumbers = PromptYesNo(ctx, reader, "> Append common numbers and years", base.EnableNumbers)
	opts.EnableSpecials = PromptYesNo(ctx, reader, "> Decorate with special characters", base.EnableSpecials)
	opts.EnableCombine = PromptYesNo(ctx, reader, "> Combine base words into pairs", base.EnableCombine)

	answer := PromptInput(ctx, reader, "> Leetspeak level (0-4)", strconv.Itoa(base.LeetLevel))
	level, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || level < 0 || level > 4 {
		log.Info(fmt.Sprintf("terminal prompt: ⚠️  Keeping leetspeak level %d: %q is not a level between 0 and 4", base.LeetLevel, answer))
		level = base.LeetLevel
	}
	opts.LeetLevel = level

	return opts, nil
}

func promptDate(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	return PromptValidated(ctx, reader, label, func(input string) error {
		if profile.ParseDate(input).IsZero() {
			return fmt.Errorf("date %q not recognized, use DDMMYYYY (or leave empty to skip)", input)
		}
		return nil
	})
}

func promptList(ctx context.Context, reader *bufio.Reader, label string) ([]string, error) {
	line, err := ReadLine(ctx, reader, label)
	if err != nil {
		return nil, err
	}
	return splitList(line), nil
}

// promptInterests collects category/value pairs until the user enters an
// empty category.
func promptInterests(ctx context.Context, reader *bufio.Reader) (map[string]string, error) {
	log := otelzap.Ctx(ctx)
	log.Info("terminal prompt: ")
	log.Info("terminal prompt: Interests, e.g. category \"team\" with value \"chelsea\".")

	interests := make(map[string]string)
	for {
		category, err := ReadLine(ctx, reader, "> Interest category (blank to finish)")
		if err != nil {
			return interests, err
		}
		if category == "" {
			break
		}

		value, err := ReadLine(ctx, reader, fmt.Sprintf("> Value for %q", category))
		if err != nil {
			return interests, err
		}
		if value == "" {
			log.Debug("Skipping interest with empty value", zap.String("category", category))
			continue
		}
		interests[category] = value
	}

	if len(interests) == 0 {
		return nil, nil
	}
	return interests, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
