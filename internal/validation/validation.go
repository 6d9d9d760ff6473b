package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/models"
	"github.com/julianstephens/wellhub/internal/records"
	"github.com/julianstephens/wellhub/internal/stats"
	"github.com/julianstephens/wellhub/internal/storage"
	"github.com/julianstephens/wellhub/internal/utils"
)

// IssueType represents the kind of problem found in a stored document
type IssueType string

const (
	IssueMalformedJSON    IssueType = "malformed_json"
	IssueInvalidRecord    IssueType = "invalid_record"
	IssueDuplicateDate    IssueType = "duplicate_date"
	IssueDuplicateID      IssueType = "duplicate_id"
	IssueDurationMismatch IssueType = "duration_mismatch"
	IssueInvalidSetting   IssueType = "invalid_setting"
	IssueUnknownKey       IssueType = "unknown_key"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding of an audit
type Issue struct {
	Type        IssueType
	Severity    Severity
	Key         string // storage key the issue was found under
	Description string
	Items       []string // dates or IDs involved
}

// ValidationResult contains all findings
type ValidationResult struct {
	Issues []Issue
}

// HasIssues returns true if anything was found
func (vr *ValidationResult) HasIssues() bool {
	return len(vr.Issues) > 0
}

// HasErrors returns true if any finding is an error rather than a warning
func (vr *ValidationResult) HasErrors() bool {
	for _, i := range vr.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues with the given severity
func (vr *ValidationResult) Count(sev Severity) int {
	n := 0
	for _, i := range vr.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all issues
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasIssues() {
		return "No issues detected."
	}

	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, issue := range vr.Issues {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", issue.Severity, issue.Key, issue.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(sev Severity, typ IssueType, key string, items []string, format string, args ...interface{}) {
	vr.Issues = append(vr.Issues, Issue{
		Type:        typ,
		Severity:    sev,
		Key:         key,
		Description: fmt.Sprintf(format, args...),
		Items:       items,
	})
}

// Validator audits stored documents
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateProvider audits every key held by p.
func (v *Validator) ValidateProvider(p storage.Provider) (ValidationResult, error) {
	docs, err := storage.Snapshot(p)
	if err != nil {
		return ValidationResult{}, err
	}
	return v.ValidateDocuments(docs), nil
}

// ValidateDocuments audits a key/value snapshot. Keys are visited in
// sorted order so reports are stable.
func (v *Validator) ValidateDocuments(docs map[string]string) ValidationResult {
	result := ValidationResult{Issues: []Issue{}}

	known := make(map[string]bool, len(constants.AllKeys))
	for _, k := range constants.AllKeys {
		known[k] = true
	}

	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := docs[key]
		if !known[key] {
			result.add(SeverityWarning, IssueUnknownKey, key, nil, "key is not used by %s", constants.AppName)
			continue
		}

		decoded, err := records.Decode(key, raw)
		if err != nil {
			result.add(SeverityError, IssueMalformedJSON, key, nil, "document is not valid JSON for its schema (%v); it will be treated as absent", err)
			continue
		}

		switch doc := decoded.(type) {
		case *models.SleepData:
			v.checkSleep(&result, key, doc.Records)
		case *models.WeightData:
			v.checkWeight(&result, key, doc)
		case *models.MoodData:
			v.checkMood(&result, key, *doc)
		case *[]models.Meal:
			checkIdentified(&result, key, *doc, func(m *models.Meal) (models.ID, error) { return m.ID, m.Validate() })
		case *[]models.RunningActivity:
			checkIdentified(&result, key, *doc, func(r *models.RunningActivity) (models.ID, error) { return r.ID, r.Validate() })
		case *[]models.JournalEntry:
			checkIdentified(&result, key, *doc, func(e *models.JournalEntry) (models.ID, error) { return e.ID, e.Validate() })
		case *models.WeeklyWater:
			if err := doc.Validate(); err != nil {
				result.add(SeverityError, IssueInvalidRecord, key, nil, "%v", err)
			}
		case *models.Profile:
		case string:
			v.checkScalar(&result, key, doc)
		}
	}

	return result
}

func (v *Validator) checkSleep(result *ValidationResult, key string, recs []models.SleepRecord) {
	dates := make(map[string]int)
	for i := range recs {
		r := recs[i]
		if err := r.Validate(); err != nil {
			result.add(SeverityError, IssueInvalidRecord, key, []string{r.Date}, "record %d (%s): %v", i, r.Date, err)
			continue
		}
		dates[r.Date]++
		if want, err := stats.SleepDuration(r.SleepTime, r.WakeTime); err == nil && math.Abs(want-r.Duration) > 0.1 {
			result.add(SeverityWarning, IssueDurationMismatch, key, []string{r.Date},
				"record %d (%s): stored duration %.1fh but %s-%s is %.1fh", i, r.Date, r.Duration, r.SleepTime, r.WakeTime, want)
		}
	}
	reportDuplicateDates(result, key, dates)
}

func (v *Validator) checkWeight(result *ValidationResult, key string, data *models.WeightData) {
	dates := make(map[string]int)
	for i := range data.Records {
		r := data.Records[i]
		if err := r.Validate(); err != nil {
			result.add(SeverityError, IssueInvalidRecord, key, []string{r.Date}, "record %d (%s): %v", i, r.Date, err)
			continue
		}
		dates[r.Date]++
	}
	if data.Goal < 0 {
		result.add(SeverityError, IssueInvalidRecord, key, nil, "goal cannot be negative: %.1f", data.Goal)
	}
	if data.StartingWeight != nil && *data.StartingWeight <= 0 {
		result.add(SeverityError, IssueInvalidRecord, key, nil, "starting weight must be positive: %.1f", *data.StartingWeight)
	}
	reportDuplicateDates(result, key, dates)
}

func (v *Validator) checkMood(result *ValidationResult, key string, data models.MoodData) {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		e := data[d]
		if !utils.ValidateDateFormat(d) {
			result.add(SeverityError, IssueInvalidRecord, key, []string{d}, "invalid date key %q", d)
			continue
		}
		if err := e.Validate(); err != nil {
			result.add(SeverityError, IssueInvalidRecord, key, []string{d}, "%s: %v", d, err)
		}
	}
}

// checkIdentified validates each record and reports duplicate IDs.
func checkIdentified[T any](result *ValidationResult, key string, list []T, check func(*T) (models.ID, error)) {
	seen := make(map[models.ID]int)
	for i := range list {
		id, err := check(&list[i])
		if id == "" {
			result.add(SeverityError, IssueInvalidRecord, key, nil, "record %d has no id", i)
			continue
		}
		if err != nil {
			result.add(SeverityError, IssueInvalidRecord, key, []string{id.String()}, "record %d (id %s): %v", i, id, err)
		}
		seen[id]++
	}

	ids := make([]string, 0)
	for id, n := range seen {
		if n > 1 {
			ids = append(ids, id.String())
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		result.add(SeverityError, IssueDuplicateID, key, []string{id}, "id %s appears %d times; delete and edit will only reach the first", id, seen[models.ID(id)])
	}
}

// reportDuplicateDates warns about dates logged more than once. Sleep and
// weight allow it, but it usually means a double submission.
func reportDuplicateDates(result *ValidationResult, key string, dates map[string]int) {
	dups := make([]string, 0)
	for d, n := range dates {
		if n > 1 {
			dups = append(dups, d)
		}
	}
	sort.Strings(dups)
	for _, d := range dups {
		result.add(SeverityWarning, IssueDuplicateDate, key, []string{d}, "%d records on %s", dates[d], d)
	}
}

func (v *Validator) checkScalar(result *ValidationResult, key, raw string) {
	value := strings.TrimSpace(raw)
	bad := func(format string, args ...interface{}) {
		result.add(SeverityError, IssueInvalidSetting, key, nil, format, args...)
	}

	switch key {
	case constants.KeyWaterGoal, constants.KeyCalorieGoal:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			bad("expected a positive whole number, got %q", raw)
		}
	case constants.KeyWaterIntake:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			bad("expected a non-negative whole number, got %q", raw)
		}
	case constants.KeyWaterIntakeDate:
		if !utils.ValidateDateFormat(value) {
			bad("invalid date %q (expected YYYY-MM-DD)", raw)
		}
	case constants.KeyUserWeight, constants.KeyUserHeight:
		if value == "" {
			return
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			bad("expected a non-negative number, got %q", raw)
		}
	case constants.KeyRemindersEnabled, constants.KeySoundsEnabled:
		if value != "true" && value != "false" {
			result.add(SeverityWarning, IssueInvalidSetting, key, nil, "expected true or false, got %q", raw)
		}
	case constants.KeyTheme:
		if !models.IsTheme(value) {
			bad("unknown theme %q", raw)
		}
	case constants.KeyTimezone:
		if !utils.ValidateTimezone(value) {
			bad("unknown timezone %q", raw)
		}
	}
}
