// Package leads captures "sell your horse" submissions.
package leads

import (
	"fmt"
	"html"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

const (
	maxHorseAge       = 40
	maxDescriptionLen = 4000
	maxFieldLen       = 200
)

// Discipline is what the seller says the horse does.
type Discipline string

const (
	DisciplineDressage    Discipline = "dressage"
	DisciplineShowjumping Discipline = "showjumping"
	DisciplineOther       Discipline = "other"
)

// Disciplines lists the choices offered on the form.
var Disciplines = []Discipline{DisciplineDressage, DisciplineShowjumping, DisciplineOther}

// Valid reports whether d is one of Disciplines.
func (d Discipline) Valid() bool {
	return d == DisciplineDressage || d == DisciplineShowjumping || d == DisciplineOther
}

// Form is the raw submission. Numbers stay strings so the form can be
// re-rendered exactly as typed when validation fails.
type Form struct {
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	HorseName      string `json:"horse_name"`
	HorseAge       string `json:"horse_age"`
	Discipline     string `json:"discipline"`
	EstimatedPrice string `json:"estimated_price"`
	VideoURL       string `json:"video_url"`
	Description    string `json:"description"`
	AcceptedPolicy bool   `json:"accepted_policy"`
}

// ValidationErrors maps form field names to messages.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid lead: " + strings.Join(parts, "; ")
}

// Lead is an accepted submission.
type Lead struct {
	ID             uuid.UUID
	FullName       string
	Phone          string
	Location       string
	HorseName      string
	HorseAge       *int
	Discipline     Discipline
	EstimatedPrice *decimal.Decimal
	VideoURL       string
	Description    string
	CreatedAt      time.Time
}

var strictPolicy = bluemonday.StrictPolicy()

// plainText strips markup and returns the text unescaped, as typed.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Parse validates f and converts it into a Lead without id or timestamp.
func (f Form) Parse() (Lead, ValidationErrors) {
	errs := ValidationErrors{}

	lead := Lead{
		FullName:    strings.TrimSpace(f.FullName),
		Phone:       strings.TrimSpace(f.Phone),
		Location:    strings.TrimSpace(f.Location),
		HorseName:   strings.TrimSpace(f.HorseName),
		Discipline:  Discipline(strings.TrimSpace(f.Discipline)),
		VideoURL:    strings.TrimSpace(f.VideoURL),
		Description: plainText(f.Description),
	}

	required(errs, "full_name", lead.FullName)
	required(errs, "phone", lead.Phone)
	required(errs, "horse_name", lead.HorseName)
	maxLen(errs, "location", lead.Location, maxFieldLen)

	if lead.Phone != "" && !validPhone(lead.Phone) {
		errs["phone"] = "must be a phone number"
	}

	if !lead.Discipline.Valid() {
		errs["discipline"] = "choose dressage, showjumping or other"
	}

	if s := strings.TrimSpace(f.HorseAge); s != "" {
		age, err := strconv.Atoi(s)
		if err != nil || age < 0 || age > maxHorseAge {
			errs["horse_age"] = fmt.Sprintf("must be a whole number between 0 and %d", maxHorseAge)
		} else {
			lead.HorseAge = &age
		}
	}

	if s := normalizeAmount(f.EstimatedPrice); s != "" {
		price, err := decimal.NewFromString(s)
		if err != nil || price.IsNegative() {
			errs["estimated_price"] = "must be a non-negative amount"
		} else {
			lead.EstimatedPrice = &price
		}
	}

	if lead.VideoURL != "" {
		u, err := url.Parse(lead.VideoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs["video_url"] = "must be an http or https link"
		}
	}

	if utf8.RuneCountInString(lead.Description) > maxDescriptionLen {
		errs["description"] = fmt.Sprintf("must be at most %d characters", maxDescriptionLen)
	}

	if !f.AcceptedPolicy {
		errs["accepted_policy"] = "the privacy policy must be accepted"
	}

	if len(errs) > 0 {
		return Lead{}, errs
	}
	return lead, nil
}

func required(errs ValidationErrors, field, value string) {
	if value == "" {
		errs[field] = "is required"
		return
	}
	maxLen(errs, field, value, maxFieldLen)
}

func maxLen(errs ValidationErrors, field, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		errs[field] = fmt.Sprintf("must be at most %d characters", n)
	}
}

func validPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	return digits >= 6 && digits <= 15
}

// normalizeAmount accepts the Spanish "50.000" thousands form as well as
// plain numbers. A single comma is treated as the decimal separator.
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if strings.Count(s, ".") >= 1 && !strings.Contains(s, ",") {
		if parts := strings.Split(s, "."); len(parts) > 2 || len(parts[len(parts)-1]) == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	if strings.Count(s, ",") == 1 {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}
