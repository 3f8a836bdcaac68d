// pkg/wordlist/pipeline.go

// Package wordlist runs the candidate generation pipeline: profile
// normalization, seed extraction, template expansion, the four
// mutation stages, filtering, sampling, and final ordering. Stages run
// strictly in that order; each only ever grows the pool, and the one
// filter pass happens at the end.
package wordlist

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/basewords"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/candidate"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/filter"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/mutate"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/sampler"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/templates"
)

// Pipeline generates candidate lists from profiles. Options are
// validated once at construction; after that a Pipeline is safe for
// concurrent Generate calls.
type Pipeline struct {
	opts  Options
	table templates.Table
	rules filter.Rules
	log   *zap.Logger
}

// New validates opts eagerly and returns a ready Pipeline using the
// embedded template table. A nil log disables engine logging.
func New(opts Options, log *zap.Logger) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, cerr.Wrap(err, "invalid options")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		opts:  opts,
		table: templates.DefaultTable(),
		rules: rulesFrom(opts),
		log:   log,
	}, nil
}

// WithTable swaps in a custom pattern table, for callers that loaded
// their own file.
func (p *Pipeline) WithTable(t templates.Table) *Pipeline {
	p.table = t
	return p
}

// Generate is the one-shot form: builds a Pipeline over the default
// table and the global logger and runs it.
func Generate(ctx context.Context, prof profile.Profile, opts Options) (*Result, error) {
	p, err := New(opts, logger.L())
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, prof)
}

// Generate produces the ordered candidate list for one profile. An
// empty profile yields an empty Result, not an error. Cancellation is
// checked between stages; a cancelled context returns ctx.Err wrapped
// with the stage it interrupted.
func (p *Pipeline) Generate(ctx context.Context, prof profile.Profile) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	tracer := otel.Tracer("pythia/wordlist")
	ctx, span := tracer.Start(ctx, "wordlist.generate",
		trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()

	log := p.log.With(zap.String("run_id", runID))
	res := &Result{Stats: Stats{RunID: runID}}

	if prof.IsEmpty() {
		log.Debug("empty profile, nothing to generate")
		return res, nil
	}

	// One RNG per run. Draw order is fixed (special binding, leet
	// sampling, pool sampling) so a seed pins the whole run.
	rng := rand.New(rand.NewSource(p.opts.Seed))

	norm := profile.Normalize(prof)
	seeds := basewords.Extract(norm, p.opts.PerSourceCap)
	res.Stats.Seeds = len(seeds)
	log.Debug("seed vocabulary extracted", zap.Int("seeds", len(seeds)))

	set := candidate.NewSetFrom(seeds...)

	special := ""
	if p.opts.EnableSpecials && p.opts.SpecialChars != "" {
		chars := []rune(p.opts.SpecialChars)
		special = string(chars[rng.Intn(len(chars))])
	}
	banned := p.bannedRunes(norm)

	runStage := func(name string, enabled bool, fn func() int) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, cerr.Wrapf(err, "cancelled before %s stage", name)
		}
		if !enabled {
			return 0, nil
		}
		_, sspan := tracer.Start(ctx, "wordlist.stage."+name)
		added := fn()
		sspan.SetAttributes(attribute.Int("added", added), attribute.Int("pool", set.Len()))
		sspan.End()
		log.Debug("stage complete",
			zap.String("stage", name),
			zap.Int("added", added),
			zap.Int("pool", set.Len()))
		return added, nil
	}

	var err error
	res.Stats.Expanded, err = runStage("templates", true, func() int {
		b := templates.Bind(norm, special)
		return set.AddAll(templates.Expand(p.table, b, templates.ExpandConfig{
			BandMin: p.opts.MinLength,
			BandMax: p.opts.MaxLength,
			Banned:  banned,
		}))
	})
	if err != nil {
		return nil, err
	}

	res.Stats.Numbers, err = runStage("numbers", p.opts.EnableNumbers, func() int {
		return mutate.Numbers(set, p.opts.NumberCap)
	})
	if err != nil {
		return nil, err
	}

	res.Stats.Specials, err = runStage("specials", p.opts.EnableSpecials, func() int {
		return mutate.Specials(set, p.opts.SpecialChars, p.opts.SpecialCap)
	})
	if err != nil {
		return nil, err
	}

	res.Stats.Leet, err = runStage("leet", p.opts.LeetLevel > 0, func() int {
		return mutate.Leet(set, mutate.LeetConfig{
			Level:           p.opts.LeetLevel,
			PrefixCap:       p.opts.LeetCap,
			ExhaustiveLimit: p.opts.LeetExhaustiveLimit,
			ComboBudget:     p.opts.LeetComboBudget,
			Banned:          banned,
		}, rng)
	})
	if err != nil {
		return nil, err
	}

	res.Stats.Combined, err = runStage("combine", p.opts.EnableCombine, func() int {
		return mutate.Combine(set, seeds, p.separators(), p.opts.CombineCap)
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, cerr.Wrap(err, "cancelled before filtering")
	}

	pool := set.Sorted()
	res.Stats.PoolSize = len(pool)

	kept, rejects := p.rules.Apply(pool)
	res.Stats.Rejects = rejects
	res.Stats.Kept = len(kept)
	log.Debug("filter applied",
		zap.Int("kept", len(kept)),
		zap.Int("rejected", rejects.Total()))

	if len(kept) > p.opts.MaxOutput {
		cfg := sampler.Default(p.opts.MaxOutput)
		cfg.Specials = p.opts.SpecialChars
		kept = sampler.Sample(kept, cfg, rng)
		res.Stats.Sampled = true
		log.Debug("pool sampled down",
			zap.Int("max_output", p.opts.MaxOutput),
			zap.Int("pool", res.Stats.Kept))
	}

	sort.Slice(kept, func(i, j int) bool { return candidate.Less(kept[i], kept[j]) })
	res.Candidates = kept
	res.Stats.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("candidates", len(kept)),
		attribute.Bool("sampled", res.Stats.Sampled),
	)
	log.Debug("generation complete",
		zap.Int("candidates", len(kept)),
		zap.Duration("took", res.Stats.Duration))
	return res, nil
}

// bannedRunes implements the specials gate on the construction side:
// with special augmentation off, configured symbols may not appear in
// any generated candidate unless the profile contained them verbatim.
func (p *Pipeline) bannedRunes(n profile.Normalized) map[rune]bool {
	if p.opts.EnableSpecials {
		return nil
	}
	banned := make(map[rune]bool, len(p.opts.SpecialChars))
	for _, r := range p.opts.SpecialChars {
		if !n.RawSpecials[r] {
			banned[r] = true
		}
	}
	return banned
}

// separators returns the combine-stage separator list, stripped of
// special-bearing entries when special augmentation is off.
func (p *Pipeline) separators() []string {
	if p.opts.EnableSpecials {
		return p.opts.Separators
	}
	kept := make([]string, 0, len(p.opts.Separators))
	for _, s := range p.opts.Separators {
		if s == "" || !strings.ContainsAny(s, p.opts.SpecialChars) {
			kept = append(kept, s)
		}
	}
	return kept
}

func rulesFrom(o Options) filter.Rules {
	r := filter.Default()
	r.MinLength = o.MinLength
	r.MaxLength = o.MaxLength
	r.MaxDigitRun = o.MaxDigitRun
	r.MinUpper = o.MinUpper
	r.MinDigits = o.MinDigits
	r.MinSpecials = o.MinSpecials
	r.MaxRepeat = o.MaxRepeat
	r.BanSequentialDigits = o.BanSequentialDigits
	r.Specials = o.SpecialChars
	return r
}
