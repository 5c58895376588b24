package numerology

import (
	"fmt"

	"github.com/phrazzld/destiny-matrix/internal/domain"
)

// InsightKind classifies an Insight by the pattern that produced it.
type InsightKind string

// Insight kinds, in the order Detect emits them.
const (
	InsightCenter   InsightKind = "center"
	InsightMirror   InsightKind = "mirror"
	InsightDecade   InsightKind = "decade"
	InsightTriangle InsightKind = "triangle"
	InsightGate     InsightKind = "gate"
)

// Insight is a single human-readable observation about a matrix.
type Insight struct {
	Kind InsightKind `json:"kind" yaml:"kind"`
	Text string      `json:"text" yaml:"text"`
}

var centerMeanings = map[domain.Digit]string{
	1: "ваше предназначение в лидерстве и смелых начинаниях.",
	2: "ваше предназначение в том, чтобы объединять людей и создавать гармонию в отношениях.",
	3: "ваше предназначение в творчестве и вдохновении окружающих словом.",
	4: "ваше предназначение в том, чтобы строить прочный фундамент и наводить порядок.",
	5: "ваше предназначение в свободе, путешествиях и познании перемен.",
	6: "ваше предназначение в заботе о семье и служении близким.",
	7: "ваше предназначение в поиске истины и духовном познании.",
	8: "ваше предназначение в управлении ресурсами и достижении материального успеха.",
	9: "ваше предназначение в служении людям и передаче мудрости.",
}

const (
	centerTemplate = "Центральное число %d: %s"
	centerFallback = "Центральное число не определено: матрица рассчитана не полностью."
	mirrorTemplate = "Зеркальные диагонали (%d): духовный и земной пути совпадают, внутреннее и внешнее в вашей жизни находятся в равновесии."
	decadeTemplate = "Священная декада (%d + %d = 10): диагонали дополняют друг друга до полноты, вам дан дар завершать начатое."
	triangleFormat = "Резонанс треугольника (%s, число %d): три позиции звучат в унисон и многократно усиливают эту энергию."
	gateTemplate   = "%s открыты: %s"
)

// triangle is a named triple of positions that resonates when all three hold
// the same digit.
type triangle struct {
	name string
	keys [3]domain.PositionKey
}

var triangles = []triangle{
	{name: "верхний левый", keys: [3]domain.PositionKey{domain.FirstNumber, domain.SecondNumber, domain.FirstRowSum}},
	{name: "верхний правый", keys: [3]domain.PositionKey{domain.SecondNumber, domain.ThirdNumber, domain.SecondRowSum}},
	{name: "нижний", keys: [3]domain.PositionKey{domain.FourthNumber, domain.ThirdRowSum, domain.FourthRowSum}},
	{name: "центральный", keys: [3]domain.PositionKey{domain.FirstRowSum, domain.CenterNumber, domain.SecondRowSum}},
}

// equals is one exact equality constraint of a gate.
type equals struct {
	key   domain.PositionKey
	value domain.Digit
}

// gate opens when both of its constraints hold.
type gate struct {
	name        string
	description string
	when        [2]equals
}

var gates = []gate{
	{
		name:        "Врата Мудрости",
		description: "лидерская сила единицы встречается с мудростью семерки в центре.",
		when:        [2]equals{{domain.FirstNumber, 1}, {domain.CenterNumber, 7}},
	},
	{
		name:        "Врата Любви",
		description: "чуткость двойки питает заботу шестерки в центре.",
		when:        [2]equals{{domain.SecondNumber, 2}, {domain.CenterNumber, 6}},
	},
	{
		name:        "Врата Изобилия",
		description: "удача восьмерки опирается на трудолюбие четверки.",
		when:        [2]equals{{domain.SecondRowSum, 8}, {domain.ThirdRowSum, 4}},
	},
	{
		name:        "Врата Служения",
		description: "гуманизм девятки раскрывается через память и заботу шестерки.",
		when:        [2]equals{{domain.ThirdNumber, 9}, {domain.FourthRowSum, 6}},
	},
	{
		name:        "Врата Свободы",
		description: "духовный путь пятерки и земной путь тройки ведут к свободному самовыражению.",
		when:        [2]equals{{domain.FirstDiagonal, 5}, {domain.SecondDiagonal, 3}},
	},
}

// Detect inspects the matrix for special numeric relationships.
//
// The center meaning always comes first. Diagonal, triangle and gate checks
// follow in a fixed order; each is evaluated independently, so any subset of
// them may fire.
func Detect(matrix domain.Matrix) []Insight {
	insights := []Insight{centerInsight(matrix)}
	insights = append(insights, diagonalInsights(matrix)...)
	insights = append(insights, triangleInsights(matrix)...)
	insights = append(insights, gateInsights(matrix)...)
	return insights
}

// Texts returns the text of each insight, preserving order.
func Texts(insights []Insight) []string {
	out := make([]string, len(insights))
	for i, in := range insights {
		out[i] = in.Text
	}
	return out
}

func centerInsight(matrix domain.Matrix) Insight {
	center, ok := matrix.Value(domain.CenterNumber)
	if !ok {
		return Insight{Kind: InsightCenter, Text: centerFallback}
	}
	return Insight{Kind: InsightCenter, Text: fmt.Sprintf(centerTemplate, center, centerMeanings[center])}
}

func diagonalInsights(matrix domain.Matrix) []Insight {
	first, okFirst := matrix.Value(domain.FirstDiagonal)
	second, okSecond := matrix.Value(domain.SecondDiagonal)
	if !okFirst || !okSecond {
		return nil
	}

	var out []Insight
	if first == second {
		out = append(out, Insight{Kind: InsightMirror, Text: fmt.Sprintf(mirrorTemplate, first)})
	}
	if first+second == 10 {
		out = append(out, Insight{Kind: InsightDecade, Text: fmt.Sprintf(decadeTemplate, first, second)})
	}
	return out
}

func triangleInsights(matrix domain.Matrix) []Insight {
	var out []Insight
	for _, tri := range triangles {
		if d, ok := sameValue(matrix, tri.keys); ok {
			out = append(out, Insight{Kind: InsightTriangle, Text: fmt.Sprintf(triangleFormat, tri.name, d)})
		}
	}
	return out
}

// sameValue reports the shared digit when all keys hold the same valid value.
func sameValue(matrix domain.Matrix, keys [3]domain.PositionKey) (domain.Digit, bool) {
	first, ok := matrix.Value(keys[0])
	if !ok {
		return 0, false
	}
	for _, key := range keys[1:] {
		d, ok := matrix.Value(key)
		if !ok || d != first {
			return 0, false
		}
	}
	return first, true
}

func gateInsights(matrix domain.Matrix) []Insight {
	var out []Insight
	for _, g := range gates {
		if g.opens(matrix) {
			out = append(out, Insight{Kind: InsightGate, Text: fmt.Sprintf(gateTemplate, g.name, g.description)})
		}
	}
	return out
}

func (g gate) opens(matrix domain.Matrix) bool {
	for _, cond := range g.when {
		d, ok := matrix.Value(cond.key)
		if !ok || d != cond.value {
			return false
		}
	}
	return true
}
