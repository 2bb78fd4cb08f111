package domain

// MatchOutcomeKind дискриминатор исхода подбора пары
type MatchOutcomeKind string

const (
	MatchRejectedBanned    MatchOutcomeKind = "rejected_banned"
	MatchAlreadyPaired     MatchOutcomeKind = "already_paired"
	MatchQueuedEmpty       MatchOutcomeKind = "queued_empty"        // очередь была пуста
	MatchQueuedNoCandidate MatchOutcomeKind = "queued_no_candidate" // никто не прошёл фильтр
	MatchPaired            MatchOutcomeKind = "paired"
)

// PartnerView публичная часть анкеты собеседника для уведомления о паре
type PartnerView struct {
	Gender    Gender
	Interests []string
}

// MatchOutcome результат requestMatch. Вызывающий по нему решает,
// что и кому отправить - сам подбор сообщений не шлёт
type MatchOutcome struct {
	Kind      MatchOutcomeKind
	PartnerID int64    // заполнен только для MatchPaired
	Shared    []string // общие интересы пары
	// Взгляд каждой стороны на другую
	ForRequester PartnerView // что инициатор узнаёт о партнёре
	ForPartner   PartnerView // что партнёр узнаёт об инициаторе
}
