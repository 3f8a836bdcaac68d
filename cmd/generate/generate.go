// cmd/generate/generate.go

package generate

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_cli"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_err"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/pythia_io"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

// GenerateCmd builds a wordlist from profile flags, or interactively
// when none are given and a terminal is attached.
var GenerateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a password-candidate wordlist",
	Long: `Generate a deduplicated password-candidate wordlist from profile details.

The wordlist goes to stdout unless --output or --clipboard redirect it.
With no profile flags and a terminal attached, pythia asks for the
profile interactively.

Use it only against accounts you own or are explicitly authorized to assess.`,
	Example: `  pythia generate --first sarah --last jones --birthdate 15061990
  pythia generate --first sarah --pet biscuit --interest team=chelsea -o wordlist.txt
  pythia generate --preset quick --seed 42 --show 10`,
	RunE: pythia_cli.Wrap(runGenerate),
}

// profileFlags are the flags that suppress the interactive fallback.
var profileFlags = []string{
	"first", "last", "nickname", "maiden", "pet", "spouse", "child",
	"birthdate", "date", "keyword", "phone", "zip", "interest",
}

func init() {
	d := wordlist.Default()
	f := GenerateCmd.Flags()

	// Profile
	f.String("first", "", "Target's first name")
	f.String("last", "", "Target's last name")
	f.String("nickname", "", "Nickname")
	f.String("maiden", "", "Maiden name")
	f.String("pet", "", "Pet's name")
	f.String("spouse", "", "Partner's name")
	f.StringSlice("child", nil, "Child's name (repeatable)")
	f.String("birthdate", "", "Birth date, DDMMYYYY")
	f.StringSlice("date", nil, "Other important date, DDMMYYYY (repeatable)")
	f.StringSlice("keyword", nil, "Extra keyword (repeatable)")
	f.String("phone", "", "Phone number")
	f.String("zip", "", "Postcode")
	f.StringSlice("interest", nil, "Interest as category=value, e.g. team=chelsea (repeatable)")

	// Engine
	f.Bool("numbers", d.EnableNumbers, "Append common numbers and years")
	f.Bool("specials", d.EnableSpecials, "Decorate candidates with special characters")
	f.Bool("combine", d.EnableCombine, "Combine base words into pairs")
	f.Bool("leet", d.LeetLevel > 0, "Apply leetspeak substitutions")
	f.Int("leet-level", d.LeetLevel, "Leetspeak aggressiveness, 0-4")
	f.String("special-chars", d.SpecialChars, "Special characters to draw on")
	f.StringSlice("separators", d.Separators, "Separators for combined pairs")
	f.Int("min-length", d.MinLength, "Shortest candidate kept")
	f.Int("max-length", d.MaxLength, "Longest candidate kept")
	f.Int("max", d.MaxOutput, "Output cap; larger pools are sampled down")
	f.Int64("seed", 0, "RNG seed; unseeded runs pick one and log it")
	f.String("preset", "", "Named preset from the config file")

	// Output
	f.StringP("output", "o", "", "Write the wordlist to this file")
	f.Bool("clipboard", false, "Copy the wordlist to the clipboard")
	f.Bool("no-header", false, "Omit the commented header")
	f.Int("show", 0, "Preview this many candidates on stderr")
}

func runGenerate(rc *pythia_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	v, err := cli.NewViper()
	if err != nil {
		return err
	}
	if err := cli.BindFlags(cmd, v); err != nil {
		return err
	}

	opts := cli.OptionsFromViper(v)

	if preset := v.GetString("preset"); preset != "" {
		p, err := cli.LoadPreset(v, preset)
		if err != nil {
			return err
		}
		p.Apply(&opts, cmd.Flags().Changed)
		log.Debug("Applied preset", zap.String("preset", preset))
	}

	prof := profileFromFlags(cmd, rc)

	if !anyProfileFlagSet(cmd) && term.IsTerminal(int(os.Stdin.Fd())) {
		reader := bufio.NewReader(os.Stdin)
		if prof, err = interaction.CollectProfile(rc.Ctx, reader); err != nil {
			return err
		}
		if opts, err = interaction.CollectOptions(rc.Ctx, reader, opts); err != nil {
			return err
		}
	}

	if prof.IsEmpty() {
		log.Warn("No profile fields provided; the wordlist will be empty")
	}

	// Unseeded runs pick a seed so repeated runs differ. The seed is
	// logged so any run can be reproduced.
	if !cmd.Flags().Changed("seed") && opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	log.Info("Starting generation", zap.Int64("seed", opts.Seed))

	pipe, err := wordlist.New(opts, rc.Log)
	if err != nil {
		return pythia_err.NewExpectedError(cerr.Wrap(err, "invalid options"))
	}

	sh := pythia_cli.NewSignalHandler(rc.Ctx)
	defer sh.Stop()

	res, err := pipe.Start(sh.Context(), prof).Wait()
	if err != nil {
		if cerr.Is(err, context.Canceled) {
			return pythia_err.NewUserCancelledError("generation")
		}
		return err
	}

	logStats(rc.Ctx, res)

	if n := v.GetInt("show"); n > 0 {
		preview(rc.Ctx, res.Candidates, n)
	}

	var meta *output.Metadata
	if !v.GetBool("no-header") {
		meta = &output.Metadata{
			RunID:     res.Stats.RunID,
			Name:      strings.TrimSpace(prof.FirstName + " " + prof.LastName),
			BirthDate: prof.BirthDate,
			Total:     len(res.Candidates),
			Generated: time.Now(),
		}
	}

	wrote := false
	if path := v.GetString("output"); path != "" {
		if err := output.WriteFile(rc.Ctx, path, res.Candidates, meta); err != nil {
			return err
		}
		log.Info(fmt.Sprintf("terminal prompt: 📝 Saved %d candidates to %s", len(res.Candidates), path))
		wrote = true
	}
	if v.GetBool("clipboard") {
		if err := output.CopyToClipboard(rc.Ctx, res.Candidates); err != nil {
			return err
		}
		log.Info(fmt.Sprintf("terminal prompt: 📋 Copied %d candidates to the clipboard", len(res.Candidates)))
		wrote = true
	}
	if !wrote {
		if err := output.WriteStdout(res.Candidates, meta); err != nil {
			return err
		}
	}

	rc.Attributes["candidates"] = strconv.Itoa(len(res.Candidates))
	rc.Attributes["sampled"] = strconv.FormatBool(res.Stats.Sampled)
	return nil
}

func profileFromFlags(cmd *cobra.Command, rc *pythia_io.RuntimeContext) profile.Profile {
	f := cmd.Flags()
	first, _ := f.GetString("first")
	last, _ := f.GetString("last")
	nickname, _ := f.GetString("nickname")
	maiden, _ := f.GetString("maiden")
	pet, _ := f.GetString("pet")
	spouse, _ := f.GetString("spouse")
	children, _ := f.GetStringSlice("child")
	birthdate, _ := f.GetString("birthdate")
	dates, _ := f.GetStringSlice("date")
	keywords, _ := f.GetStringSlice("keyword")
	phone, _ := f.GetString("phone")
	zip, _ := f.GetString("zip")
	interests, _ := f.GetStringSlice("interest")

	return profile.Profile{
		FirstName:  first,
		LastName:   last,
		Nickname:   nickname,
		MaidenName: maiden,
		PetName:    pet,
		SpouseName: spouse,
		ChildNames: children,
		BirthDate:  birthdate,
		OtherDates: dates,
		Keywords:   keywords,
		Phone:      phone,
		Zip:        zip,
		Interests:  parseInterestFlags(rc, interests),
	}
}

// parseInterestFlags reads repeated category=value pairs. Malformed
// pairs are skipped, consistent with the engine's silent-skip rule.
func parseInterestFlags(rc *pythia_io.RuntimeContext, pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	interests := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, val, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		val = strings.TrimSpace(val)
		if !ok || k == "" || val == "" {
			otelzap.Ctx(rc.Ctx).Debug("Skipping malformed interest", zap.String("pair", pair))
			continue
		}
		interests[k] = val
	}
	if len(interests) == 0 {
		return nil
	}
	return interests
}

func anyProfileFlagSet(cmd *cobra.Command) bool {
	for _, name := range profileFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func logStats(ctx context.Context, res *wordlist.Result) {
	st := res.Stats
	otelzap.Ctx(ctx).Info("Generation complete",
		zap.String("run_id", st.RunID),
		zap.Int("seeds", st.Seeds),
		zap.Int("expanded", st.Expanded),
		zap.Int("numbers", st.Numbers),
		zap.Int("specials", st.Specials),
		zap.Int("leet", st.Leet),
		zap.Int("combined", st.Combined),
		zap.Int("pool", st.PoolSize),
		zap.Int("kept", st.Kept),
		zap.Int("rejected", st.Rejects.Total()),
		zap.Bool("sampled", st.Sampled),
		zap.Duration("duration", st.Duration))
	if len(st.Rejects) > 0 {
		otelzap.Ctx(ctx).Debug("Filter rejects by rule", zap.Any("rejects", st.Rejects))
	}
}

// preview prints a bounded sample on stderr, leaving stdout to the
// wordlist itself.
func preview(ctx context.Context, words []string, n int) {
	log := otelzap.Ctx(ctx)
	if n > len(words) {
		n = len(words)
	}
	log.Info("terminal prompt: 🔎 Sample candidates:")
	for _, w := range words[:n] {
		log.Info("terminal prompt:   " + w)
	}
	if rest := len(words) - n; rest > 0 {
		log.Info(fmt.Sprintf("terminal prompt:   … and %d more", rest))
	}
}
