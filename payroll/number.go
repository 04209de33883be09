package payroll

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// EMPLOYEE NUMBER - LAS-NNNNN-DDMONYYYY
// =============================================================================

const (
	numberPrefixLen   = 3
	numberPrefixPad   = "X"
	numberEmptyPrefix = "EMP"
	numberSpace       = 100000 // random part is in [0, numberSpace)
)

var monthCodes = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

var employeeNumberPattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{5}-(0[1-9]|[12][0-9]|3[01])(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)[0-9]{4}$`)

// ValidEmployeeNumber reports whether s has the employee-number format.
func ValidEmployeeNumber(s string) bool {
	return employeeNumberPattern.MatchString(s)
}

// NumberGenerator draws the random part of employee numbers.
// The zero value uses the process-wide random source.
type NumberGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// NewSeededNumberGenerator returns a generator with a reproducible sequence.
func NewSeededNumberGenerator(seed uint64) *NumberGenerator {
	return &NumberGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *NumberGenerator) draw() int {
	if g.rng == nil {
		return rand.IntN(numberSpace)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(numberSpace)
}

// Generate builds a new employee number for the last name and date of birth.
func (g *NumberGenerator) Generate(lastName, dateOfBirth string) (string, error) {
	dob, err := generic.ParseDateField("dateOfBirth", dateOfBirth)
	if err != nil {
		return "", err
	}
	return FormatEmployeeNumber(lastName, dob, g.draw()), nil
}

// FormatEmployeeNumber renders an employee number from its three parts.
// n is taken modulo the random space.
func FormatEmployeeNumber(lastName string, dob generic.TimePoint, n int) string {
	n %= numberSpace
	if n < 0 {
		n += numberSpace
	}
	return fmt.Sprintf("%s-%05d-%02d%s%04d",
		numberPrefix(lastName), n, dob.Day(), monthCodes[dob.Month()-1], dob.Year())
}

// numberPrefix keeps ASCII letters only, uppercases, and takes three
// characters, padding short names with X.
func numberPrefix(lastName string) string {
	var b strings.Builder
	for _, r := range lastName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	clean := strings.ToUpper(b.String())
	if clean == "" {
		return numberEmptyPrefix
	}
	if len(clean) > numberPrefixLen {
		clean = clean[:numberPrefixLen]
	}
	return clean + strings.Repeat(numberPrefixPad, numberPrefixLen-len(clean))
}
