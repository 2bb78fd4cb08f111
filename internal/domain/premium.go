package domain

import "time"

// PremiumActive активен ли girl-only фильтр анкеты на момент now
func PremiumActive(p *Profile, now time.Time) bool {
	return p != nil && p.PremiumGirlsUntil > now.UnixMilli()
}

// GrantPremium выставляет срок действия фильтра: now + duration.
// Повторная покупка перезаписывает срок, а не суммирует
func GrantPremium(p *Profile, now time.Time, duration time.Duration) {
	p.PremiumGirlsUntil = now.Add(duration).UnixMilli()
}

// PremiumRemainingHours остаток премиума в часах с округлением вверх, для показа.
// Ноль и меньше - фильтр неактивен
func PremiumRemainingHours(p *Profile, now time.Time) int {
	remainingMs := p.PremiumGirlsUntil - now.UnixMilli()
	if remainingMs <= 0 {
		return 0
	}
	const hourMs = int64(time.Hour / time.Millisecond)
	return int((remainingMs + hourMs - 1) / hourMs)
}
