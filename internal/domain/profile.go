package domain

import (
	"sort"
	"strings"
)

// Gender самоопределённый пол участника
type Gender string

const (
	GenderUnknown Gender = "unknown"
	GenderGirl    Gender = "girl"
	GenderBoy     Gender = "boy"
	GenderOther   Gender = "other"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderUnknown, GenderGirl, GenderBoy, GenderOther:
		return true
	default:
		return false
	}
}

// Label человекочитаемая подпись для уведомлений о паре
func (g Gender) Label() string {
	switch g {
	case GenderGirl:
		return "girl"
	case GenderBoy:
		return "boy"
	default:
		return "person"
	}
}

// ParseGender парсит пользовательский ввод с алиасами (girl|g|female|f и т.д.)
func ParseGender(raw string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "girl", "g", "female", "f":
		return GenderGirl, true
	case "boy", "b", "male", "m":
		return GenderBoy, true
	case "other", "o", "any":
		return GenderOther, true
	default:
		return GenderUnknown, false
	}
}

// Profile анкета участника анонимного чата, ключ - telegram user id.
// Поля сериализуются в data.json как есть - это внешний контракт
type Profile struct {
	Gender            Gender   `json:"gender"`
	Interests         []string `json:"interests"`
	PartnerID         *int64   `json:"partnerId"`
	PremiumGirlsUntil int64    `json:"premiumGirlsUntil"` // unix millis, 0 = нет премиума
}

// NewProfile создаёт анкету с дефолтами для первого обращения
func NewProfile() *Profile {
	return &Profile{
		Gender:    GenderUnknown,
		Interests: []string{},
	}
}

func (p *Profile) HasPartner() bool {
	return p.PartnerID != nil
}

func (p *Profile) HasInterest(token string) bool {
	for _, it := range p.Interests {
		if it == token {
			return true
		}
	}
	return false
}

// SharedInterests пересечение интересов двух анкет в порядке анкеты p
func (p *Profile) SharedInterests(other *Profile) []string {
	shared := make([]string, 0)
	for _, it := range p.Interests {
		if other.HasInterest(it) {
			shared = append(shared, it)
		}
	}
	return shared
}

// Clone глубокая копия анкеты, для снапшотов
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Interests = append([]string(nil), p.Interests...)
	if p.PartnerID != nil {
		partner := *p.PartnerID
		cp.PartnerID = &partner
	}
	return &cp
}

// NormalizeInterests приводит сырой ввод к нормализованным токенам:
// lowercase, разделители - запятые/переводы строк/пробелы, без дублей.
// Порядок стабильный для детерминированной сериализации
func NormalizeInterests(raw string) []string {
	raw = strings.ToLower(raw)
	raw = strings.NewReplacer(",", " ", "\n", " ").Replace(raw)

	seen := make(map[string]struct{})
	tokens := make([]string, 0)
	for _, piece := range strings.Fields(raw) {
		if _, ok := seen[piece]; ok {
			continue
		}
		seen[piece] = struct{}{}
		tokens = append(tokens, piece)
	}
	sort.Strings(tokens)
	return tokens
}
