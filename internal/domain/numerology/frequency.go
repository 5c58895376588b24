package numerology

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/destiny-matrix/internal/domain"
)

// FrequencyTable counts how many matrix positions hold each digit 1..9.
type FrequencyTable struct {
	counts [domain.MaxDigit]int
}

// Analyze counts every valid digit of the matrix. All eleven positions take
// part, the diagonals included.
func Analyze(matrix domain.Matrix) FrequencyTable {
	var freq FrequencyTable
	for _, key := range domain.PositionKeys() {
		if d, ok := matrix.Value(key); ok {
			freq.counts[d-1]++
		}
	}
	return freq
}

// Count returns the occurrences of d, or 0 for anything outside 1..9.
func (f FrequencyTable) Count(d domain.Digit) int {
	if !d.Valid() {
		return 0
	}
	return f.counts[d-1]
}

// Total returns the number of analysed entries.
func (f FrequencyTable) Total() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return total
}

// Counts returns the table as a digit-keyed map holding all nine digits.
func (f FrequencyTable) Counts() map[domain.Digit]int {
	out := make(map[domain.Digit]int, len(f.counts))
	for i, c := range f.counts {
		out[domain.Digit(i+1)] = c
	}
	return out
}

// digits returns, in ascending order, the digits whose count satisfies keep.
func (f FrequencyTable) digits(keep func(count int) bool) []domain.Digit {
	var out []domain.Digit
	for i, c := range f.counts {
		if keep(c) {
			out = append(out, domain.Digit(i+1))
		}
	}
	return out
}

// MarshalJSON encodes the table as an object keyed "1".."9".
func (f FrequencyTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(f.counts))
	for i, c := range f.counts {
		out[strconv.Itoa(i+1)] = c
	}
	return json.Marshal(out)
}

// MarshalYAML encodes the table as a mapping keyed 1..9.
func (f FrequencyTable) MarshalYAML() (interface{}, error) {
	return f.Counts(), nil
}

// EnergyProfile is the narrative classification of a FrequencyTable.
type EnergyProfile struct {
	Strong  string `json:"strong" yaml:"strong"`
	Missing string `json:"missing" yaml:"missing"`
	// KarmicPatterns is nil when none of the triad or pair conditions hold.
	KarmicPatterns *string `json:"karmic_patterns,omitempty" yaml:"karmic_patterns,omitempty"`
}

const (
	strongTemplate   = "У вас ярко выражены энергии: %s. Это ваши доминирующие качества."
	strongBalanced   = "У вас нет сильно доминирующих энергий, что говорит о сбалансированности вашей личности."
	missingTemplate  = "У вас отсутствуют энергии: %s. Это указывает на качества, которые вам стоит развивать."
	missingNoneFound = "У вас представлены все энергии, что говорит о вашей многогранности."
)

// karmicCondition is one of the fixed triad or pair checks.
type karmicCondition struct {
	sentence string
	holds    func(f FrequencyTable, p *Params) bool
}

// atLeast reports whether every digit reaches the triad threshold.
func atLeast(digits ...domain.Digit) func(FrequencyTable, *Params) bool {
	return func(f FrequencyTable, p *Params) bool {
		for _, d := range digits {
			if f.Count(d) < p.TriadThreshold {
				return false
			}
		}
		return true
	}
}

// absent reports whether none of the digits occur.
func absent(digits ...domain.Digit) func(FrequencyTable, *Params) bool {
	return func(f FrequencyTable, _ *Params) bool {
		for _, d := range digits {
			if f.Count(d) != 0 {
				return false
			}
		}
		return true
	}
}

// karmicConditions are evaluated in declaration order.
var karmicConditions = []karmicCondition{
	{
		sentence: "Триада 1-5-7 усилена: вам дана сила вести других через перемены к мудрости.",
		holds:    atLeast(1, 5, 7),
	},
	{
		sentence: "Триада 2-4-8 усилена: вы умеете превращать партнерство и порядок в материальный успех.",
		holds:    atLeast(2, 4, 8),
	},
	{
		sentence: "Триада 3-6-9 усилена: творчество, забота и гуманизм складываются в ваше высшее призвание.",
		holds:    atLeast(3, 6, 9),
	},
	{
		sentence: "Отсутствуют 1 и 5: кармическая задача состоит в том, чтобы проявлять инициативу и не бояться перемен.",
		holds:    absent(1, 5),
	},
	{
		sentence: "Отсутствуют 3 и 9: кармическая задача состоит в том, чтобы развивать самовыражение и доверие к миру.",
		holds:    absent(3, 9),
	},
}

// Classify describes the dominant and missing energies of freq using the
// default thresholds.
func Classify(freq FrequencyTable) EnergyProfile {
	return classify(freq, NewDefaultParams())
}

func classify(freq FrequencyTable, params *Params) EnergyProfile {
	var profile EnergyProfile

	if strong := freq.digits(func(c int) bool { return c >= params.StrongThreshold }); len(strong) > 0 {
		profile.Strong = fmt.Sprintf(strongTemplate, joinDigits(strong))
	} else {
		profile.Strong = strongBalanced
	}

	if missing := freq.digits(func(c int) bool { return c == 0 }); len(missing) > 0 {
		profile.Missing = fmt.Sprintf(missingTemplate, joinDigits(missing))
	} else {
		profile.Missing = missingNoneFound
	}

	var karmic []string
	for _, cond := range karmicConditions {
		if cond.holds(freq, params) {
			karmic = append(karmic, cond.sentence)
		}
	}
	if len(karmic) > 0 {
		joined := strings.Join(karmic, " ")
		profile.KarmicPatterns = &joined
	}

	return profile
}

func joinDigits(digits []domain.Digit) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d.Int())
	}
	return strings.Join(parts, ", ")
}
