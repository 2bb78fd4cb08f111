package texts

import (
	"fmt"
	"strings"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// FormatPaired собирает уведомление о найденном собеседнике
func FormatPaired(partner domain.PartnerView, shared []string) string {
	var sb strings.Builder
	sb.WriteString("🎉 Partner found! You are now chatting with a ")
	sb.WriteString(partner.Gender.Label())
	sb.WriteString(".")
	switch {
	case len(shared) > 0:
		sb.WriteString("\n✨ Shared interests: ")
		sb.WriteString(strings.Join(shared, ", "))
	case len(partner.Interests) > 0:
		sb.WriteString("\n✨ Their interests: ")
		sb.WriteString(strings.Join(partner.Interests, ", "))
	default:
		sb.WriteString("\n🤷 They did not set any interests.")
	}
	sb.WriteString("\nSay hi! Send /next for a new partner or /stop to end the chat.")
	return sb.String()
}

// FormatProfile собирает карточку анкеты
func FormatProfile(profile *domain.Profile, premiumActive bool, premiumHours int) string {
	gender := "not set"
	if profile.Gender != domain.GenderUnknown {
		gender = string(profile.Gender)
	}
	interests := "not set"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}
	premium := "inactive"
	if premiumActive {
		premium = fmt.Sprintf("active, ~%d h left", premiumHours)
	}
	return fmt.Sprintf("👤 Your profile\nGender: %s\nInterests: %s\nGirls-only filter: %s", gender, interests, premium)
}

func FormatGenderSet(gender domain.Gender) string {
	return fmt.Sprintf("✅ Gender set: %s", gender)
}

func FormatInterestsSet(interests []string) string {
	return fmt.Sprintf("✅ Interests set: %s", strings.Join(interests, ", "))
}

func FormatGirlsInvoiceDescription(hours int) string {
	return fmt.Sprintf("For %d hours you will be matched with girls only.", hours)
}

func FormatPremiumNone(price int64) string {
	return fmt.Sprintf("Girls-only filter is inactive.\nSend /girls to enable it for %d ⭐️.", price)
}

func FormatPremiumActive(hoursLeft int) string {
	return fmt.Sprintf("💝 Girls-only filter is active, ~%d h left.", hoursLeft)
}

func FormatUnknownCommand(command string) string {
	return fmt.Sprintf("🤔 Unknown command /%s. Send /help for the list of commands.", command)
}

func FormatStats(users, waiting, pairs, banned int) string {
	return fmt.Sprintf("📊 Stats\nUsers: %d\nIn queue: %d\nActive pairs: %d\nBanned: %d", users, waiting, pairs, banned)
}

func FormatBanned(userID int64) string {
	return fmt.Sprintf("✅ User %d banned.", userID)
}

func FormatUnbanned(userID int64) string {
	return fmt.Sprintf("✅ User %d unbanned.", userID)
}

func FormatForcePaired(firstID, secondID int64) string {
	return fmt.Sprintf("✅ Users %d and %d are now paired.", firstID, secondID)
}

func FormatBroadcastDone(sent, total int) string {
	return fmt.Sprintf("📣 Broadcast delivered to %d of %d users.", sent, total)
}
