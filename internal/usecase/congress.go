package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

const notAvailable = "not available"

// BillRef identifies a bill by congress, type and number.
type BillRef struct {
	Congress int
	Type     string
	Number   string
}

// Cornerstone is the bill shown first by the default exploration run.
var Cornerstone = BillRef{Congress: 64, Type: "hr", Number: "15522"}

// ParseBillRef parses "118/hr/1".
func ParseBillRef(s string) (BillRef, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) != 3 {
		return BillRef{}, fmt.Errorf("invalid bill reference %q: expected congress/type/number", s)
	}
	congress, err := strconv.Atoi(parts[0])
	if err != nil || congress <= 0 {
		return BillRef{}, fmt.Errorf("invalid congress number in %q", s)
	}
	if parts[1] == "" || parts[2] == "" {
		return BillRef{}, fmt.Errorf("invalid bill reference %q: expected congress/type/number", s)
	}
	return BillRef{Congress: congress, Type: strings.ToLower(parts[1]), Number: parts[2]}, nil
}

func (r BillRef) String() string {
	return fmt.Sprintf("%d/%s/%s", r.Congress, r.Type, r.Number)
}

// CongressUseCase prints readable reports from a legislative source.
type CongressUseCase struct {
	source       port.LegislativeSource
	out          io.Writer
	summaryChars int
	logger       *zap.Logger
}

// NewCongressUseCase creates a new explorer writing to out.
func NewCongressUseCase(source port.LegislativeSource, out io.Writer, summaryChars int, logger *zap.Logger) *CongressUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if summaryChars <= 0 {
		summaryChars = 400
	}
	return &CongressUseCase{
		source:       source,
		out:          out,
		summaryChars: summaryChars,
		logger:       logger,
	}
}

// Explore runs the default report: the cornerstone bill, recent bills
// matching query, and the laws of the 1st Congress. Failing sections print a
// diagnostic and the run continues; the returned count is the number of
// sections that failed.
func (u *CongressUseCase) Explore(ctx context.Context, query string, limit int) (int, error) {
	fmt.Fprintln(u.out, "Exploring Congressional Time Capsule...")

	failed := 0
	sections := []func(context.Context) error{
		func(ctx context.Context) error {
			fmt.Fprintln(u.out, "\n--- Exploring Environmental Legislation ---")
			fmt.Fprintln(u.out, "\nHistorical Cornerstone:")
			return u.ShowBill(ctx, Cornerstone)
		},
		func(ctx context.Context) error {
			return u.RecentBills(ctx, query, limit)
		},
		func(ctx context.Context) error {
			return u.EarlyLaws(ctx, 1, limit)
		},
	}
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		if err := section(ctx); err != nil {
			failed++
			u.logger.Warn("section failed", zap.Error(err))
			fmt.Fprintf(u.out, "  Error: %v\n", err)
		}
	}
	return failed, nil
}

// ShowBill prints details, summaries and subjects of one bill.
func (u *CongressUseCase) ShowBill(ctx context.Context, ref BillRef) error {
	bill, err := u.source.Bill(ctx, ref.Congress, ref.Type, ref.Number)
	if err != nil {
		return fmt.Errorf("failed to fetch bill %s: %w", ref, err)
	}
	if bill == nil {
		fmt.Fprintf(u.out, "Could not retrieve details for %s.\n", ref)
		return nil
	}

	summaries, err := u.source.BillSummaries(ctx, ref.Congress, ref.Type, ref.Number)
	if err != nil {
		// details are still worth printing
		u.logger.Warn("failed to fetch summaries", zap.String("bill", ref.String()), zap.Error(err))
	}
	u.writeBill(bill, summaries)
	return nil
}

// RecentBills searches summaries and shows the bill behind each hit.
func (u *CongressUseCase) RecentBills(ctx context.Context, query string, limit int) error {
	if current, err := u.source.CurrentCongress(ctx); err == nil {
		fmt.Fprintf(u.out, "\nCurrent Congress: %s\n", ordinal(current))
	} else {
		u.logger.Debug("current congress unavailable", zap.Error(err))
	}
	fmt.Fprintf(u.out, "\nRecent bills about %q:\n", query)

	hits, err := u.source.SearchSummaries(ctx, query, limit)
	if err != nil {
		return fmt.Errorf("failed to search summaries: %w", err)
	}
	if len(hits) == 0 {
		fmt.Fprintln(u.out, "  No recent bills found.")
		return nil
	}

	for _, hit := range hits {
		if hit.Congress == 0 || hit.BillType == "" || hit.BillNumber == "" {
			u.writeHit(hit)
			continue
		}
		ref := BillRef{Congress: hit.Congress, Type: strings.ToLower(hit.BillType), Number: hit.BillNumber}
		if err := u.ShowBill(ctx, ref); err != nil {
			fmt.Fprintf(u.out, "  Error: %v\n", err)
			u.writeHit(hit)
		}
	}
	return nil
}

// EarlyLaws prints the first laws enacted by a congress.
func (u *CongressUseCase) EarlyLaws(ctx context.Context, congress, limit int) error {
	fmt.Fprintf(u.out, "\n--- Laws of the %s Congress ---\n", ordinal(congress))

	laws, err := u.source.Laws(ctx, congress, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch laws: %w", err)
	}
	if len(laws) == 0 {
		fmt.Fprintln(u.out, "  No laws found.")
		return nil
	}

	for _, law := range laws {
		fmt.Fprintf(u.out, "\n  %s (%s%s)\n", orNA(law.Title), law.Type, law.Number)
		fmt.Fprintf(u.out, "    Enacted: %s\n", orNA(law.EnactedOn))
		fmt.Fprintf(u.out, "    Subjects: %s\n", joinSubjects(law.Subjects))
	}
	return nil
}

func (u *CongressUseCase) writeBill(bill *domain.Bill, summaries []domain.BillSummary) {
	w := u.out
	fmt.Fprintf(w, "\n--- %s (%s%s) ---\n", orNA(bill.Title), bill.Type, bill.Number)
	if bill.Congress > 0 {
		fmt.Fprintf(w, "  Congress: %s\n", ordinal(bill.Congress))
	} else {
		fmt.Fprintf(w, "  Congress: %s\n", notAvailable)
	}
	fmt.Fprintf(w, "  Bill Type: %s\n", orNA(bill.Type))
	fmt.Fprintf(w, "  Introduced: %s\n", orNA(bill.IntroducedOn))
	if bill.LatestAction != nil {
		fmt.Fprintf(w, "  Latest Action: %s - %s\n", orNA(bill.LatestAction.ActionDate), orNA(bill.LatestAction.Text))
	} else {
		fmt.Fprintf(w, "  Latest Action: %s\n", notAvailable)
	}

	fmt.Fprintln(w, "\n  Summaries:")
	if len(summaries) == 0 {
		fmt.Fprintln(w, "  No summaries available for this bill.")
	}
	for _, s := range summaries {
		fmt.Fprintf(w, "  - %s: %s\n", orNA(s.UpdateDate), u.truncate(s.Text))
	}

	fmt.Fprintf(w, "\n  Subjects: %s\n", joinSubjects(bill.Subjects))
}

func (u *CongressUseCase) writeHit(hit domain.SummaryHit) {
	fmt.Fprintf(u.out, "\n--- %s ---\n", orNA(hit.Title))
	fmt.Fprintf(u.out, "  - %s: %s\n", orNA(hit.UpdateDate), u.truncate(hit.Text))
}

// truncate cuts text to summaryChars runes and appends "...".
func (u *CongressUseCase) truncate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return notAvailable
	}
	runes := []rune(text)
	if len(runes) <= u.summaryChars {
		return text
	}
	return string(runes[:u.summaryChars]) + "..."
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func joinSubjects(subjects []string) string {
	if len(subjects) == 0 {
		return notAvailable
	}
	return strings.Join(subjects, ", ")
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
