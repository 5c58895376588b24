package numerology

import (
	"fmt"
	"strings"

	"github.com/phrazzld/destiny-matrix/internal/domain"
)

// Element is the symbolic element attached to a matrix position.
type Element string

// Symbolic elements.
const (
	ElementFire  Element = "Огонь"
	ElementWater Element = "Вода"
	ElementAir   Element = "Воздух"
	ElementEarth Element = "Земля"
	ElementEther Element = "Эфир"
)

// Planet is the symbolic ruling body attached to a matrix position.
type Planet string

// Symbolic ruling bodies.
const (
	PlanetSun     Planet = "Солнце"
	PlanetMoon    Planet = "Луна"
	PlanetMercury Planet = "Меркурий"
	PlanetVenus   Planet = "Венера"
	PlanetMars    Planet = "Марс"
	PlanetJupiter Planet = "Юпитер"
	PlanetSaturn  Planet = "Сатурн"
	PlanetUranus  Planet = "Уран"
	PlanetNeptune Planet = "Нептун"
	PlanetPluto   Planet = "Плутон"
)

// Sentinel strings returned instead of errors for lookups that miss.
const (
	UnknownMeaning  = "Значение не определено"
	UnknownPosition = "Позиция не определена"
)

// PositionInfo is the static metadata of a matrix position.
type PositionInfo struct {
	Key         domain.PositionKey `json:"key" yaml:"key"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	// Cell is the "row,column" coordinate in the display grid; empty for
	// the diagonals, which have no cell.
	Cell    string  `json:"cell,omitempty" yaml:"cell,omitempty"`
	Element Element `json:"element" yaml:"element"`
	Planet  Planet  `json:"planet" yaml:"planet"`
}

var positionCatalog = map[domain.PositionKey]PositionInfo{
	domain.FirstNumber: {
		Name:        "Характер",
		Description: "Базовые черты вашей личности",
		Cell:        "1,1",
		Element:     ElementFire,
		Planet:      PlanetSun,
	},
	domain.SecondNumber: {
		Name:        "Энергия",
		Description: "Ваш энергетический потенциал",
		Cell:        "1,2",
		Element:     ElementFire,
		Planet:      PlanetMars,
	},
	domain.ThirdNumber: {
		Name:        "Интерес",
		Description: "Что вас интересует в жизни",
		Cell:        "1,3",
		Element:     ElementAir,
		Planet:      PlanetMercury,
	},
	domain.FirstRowSum: {
		Name:        "Здоровье",
		Description: "Ваш потенциал здоровья",
		Cell:        "2,1",
		Element:     ElementEarth,
		Planet:      PlanetSaturn,
	},
	domain.CenterNumber: {
		Name:        "Центр",
		Description: "Ваша жизненная цель",
		Cell:        "2,2",
		Element:     ElementEther,
		Planet:      PlanetSun,
	},
	domain.SecondRowSum: {
		Name:        "Удача",
		Description: "Ваш потенциал удачи",
		Cell:        "2,3",
		Element:     ElementWater,
		Planet:      PlanetJupiter,
	},
	domain.FourthNumber: {
		Name:        "Логика",
		Description: "Ваше мышление",
		Cell:        "3,1",
		Element:     ElementAir,
		Planet:      PlanetUranus,
	},
	domain.ThirdRowSum: {
		Name:        "Труд",
		Description: "Ваше отношение к работе",
		Cell:        "3,2",
		Element:     ElementEarth,
		Planet:      PlanetPluto,
	},
	domain.FourthRowSum: {
		Name:        "Память",
		Description: "Ваша память и способность учиться",
		Cell:        "3,3",
		Element:     ElementWater,
		Planet:      PlanetMoon,
	},
	domain.FirstDiagonal: {
		Name:        "Духовный путь",
		Description: "Ваше стремление к смыслу и внутреннему росту",
		Element:     ElementEther,
		Planet:      PlanetNeptune,
	},
	domain.SecondDiagonal: {
		Name:        "Земной путь",
		Description: "Ваше отношение к материальному миру и быту",
		Element:     ElementEarth,
		Planet:      PlanetVenus,
	},
}

var numberMeanings = map[domain.Digit]string{
	1: "Лидерство, индивидуальность, начало всего нового",
	2: "Дипломатия, партнерство, гармония, чувствительность",
	3: "Коммуникация, самовыражение, оптимизм, творчество",
	4: "Стабильность, практичность, организованность, основательность",
	5: "Свобода, адаптивность, перемены, приключения",
	6: "Гармония, ответственность, сочувствие, баланс",
	7: "Анализ, мудрость, интуиция, внутренняя глубина",
	8: "Власть, материальный успех, достижения, организованность",
	9: "Гуманизм, альтруизм, завершение, духовная мудрость",
}

var elementNarratives = map[Element]string{
	ElementFire:  "Стихия Огня придает этой энергии страсть и решительность.",
	ElementWater: "Стихия Воды наполняет ее чувствами и интуицией.",
	ElementAir:   "Стихия Воздуха делает ее подвижной и любознательной.",
	ElementEarth: "Стихия Земли дает ей опору и практичность.",
	ElementEther: "Эфир связывает ее с тонким миром и высшими смыслами.",
}

var planetNarratives = map[Planet]string{
	PlanetSun:     "Солнце наполняет ее волей и жизненной силой.",
	PlanetMoon:    "Луна окрашивает ее эмоциями и памятью рода.",
	PlanetMercury: "Меркурий усиливает ум и способность к общению.",
	PlanetVenus:   "Венера приносит любовь к красоте и комфорту.",
	PlanetMars:    "Марс добавляет напора и смелости.",
	PlanetJupiter: "Юпитер расширяет возможности и приносит удачу.",
	PlanetSaturn:  "Сатурн учит дисциплине и терпению.",
	PlanetUranus:  "Уран пробуждает оригинальность и тягу к новому.",
	PlanetNeptune: "Нептун открывает воображение и сострадание.",
	PlanetPluto:   "Плутон дает силу глубоких перемен.",
}

// Lookup returns the metadata of key. The boolean is false for keys outside
// the closed position set.
func Lookup(key domain.PositionKey) (PositionInfo, bool) {
	info, ok := positionCatalog[key]
	if !ok {
		return PositionInfo{}, false
	}
	info.Key = key
	return info, true
}

// Describe returns the metadata of key. Every valid key is catalogued; an
// unknown key yields a zero PositionInfo.
func Describe(key domain.PositionKey) PositionInfo {
	info, _ := Lookup(key)
	return info
}

// Catalog returns the metadata of all eleven positions in canonical order.
func Catalog() []PositionInfo {
	keys := domain.PositionKeys()
	out := make([]PositionInfo, 0, len(keys))
	for _, key := range keys {
		out = append(out, Describe(key))
	}
	return out
}

// NumberMeaning returns the narrative attached to a digit, or UnknownMeaning
// for anything outside 1..9.
func NumberMeaning(d domain.Digit) string {
	if meaning, ok := numberMeanings[d]; ok {
		return meaning
	}
	return UnknownMeaning
}

// ElementNarrative returns the narrative fragment of an element, or "".
func ElementNarrative(e Element) string {
	return elementNarratives[e]
}

// PlanetNarrative returns the narrative fragment of a ruling body, or "".
func PlanetNarrative(p Planet) string {
	return planetNarratives[p]
}

// Interpret builds the descriptive sentence for a position holding value.
// An unknown key yields the UnknownPosition sentinel rather than an error.
func Interpret(key domain.PositionKey, value domain.Digit) string {
	info, ok := Lookup(key)
	if !ok {
		return UnknownPosition
	}

	parts := []string{
		fmt.Sprintf("%s (%d): %s.", info.Name, value, info.Description),
		NumberMeaning(value) + ".",
	}
	if fragment := ElementNarrative(info.Element); fragment != "" {
		parts = append(parts, fragment)
	}
	if fragment := PlanetNarrative(info.Planet); fragment != "" {
		parts = append(parts, fragment)
	}

	return strings.Join(parts, " ")
}
