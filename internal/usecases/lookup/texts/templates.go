package texts

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/admin/tg-bots/info-bot/internal/domain"
)

// maxResponseLength предел длины полезной нагрузки в ответе пользователю
const maxResponseLength = 3000

const (
	UnknownCommand = "❌ Unknown command. Use /help for available commands."

	InvalidInput = "❌ Invalid input. Please use buttons or send a valid number.\n\nUse /help for guidance."

	Processing = "🔍 Processing your request...\nPlease wait..."

	ProtectedNumber = "🛡️ *Protected Number*\n\nThis number is protected and cannot be looked up."

	ChargeFailed = "❌ Failed to deduct credits. Please try again."

	APIError = "❌ API Error: Failed to fetch data. Credits have been refunded."

	AccessDenied = "❌ Access denied."

	UserNotFound = "❌ User not found."

	JoinChannel = "👋 *Welcome!*\n\n" +
		"To use this bot, you must be a member of our official channel.\n\n" +
		"Please join the channel below and then press /start again."

	Help = "📚 *Professional Help Guide* 📚\n\n" +
		"🔍 *Available Lookup Services:*\n\n" +
		"📱 *Number Info* - 1 credit\n" +
		"• Format: 10-digit number\n" +
		"• Example: 9876543210\n\n" +
		"🆔 *Aadhaar Lookup* - 1 credit\n" +
		"• Format: 12-digit number\n" +
		"• Example: 123456789012\n\n" +
		"🚗 *Vehicle Information* - 1 credit\n" +
		"• Format: Vehicle registration\n" +
		"• Example: KA04EQ4521\n\n" +
		"🏦 *IFSC Bank Details* - 1 credit\n" +
		"• Format: 11-character code\n" +
		"• Example: SBIN0000001\n\n" +
		"🌐 *IP Address Information* - 1 credit\n" +
		"• Format: IPv4 address\n" +
		"• Example: 149.154.167.91\n\n" +
		"📮 *Pincode Information* - 1 credit\n" +
		"• Format: 6-digit pincode\n" +
		"• Example: 110006\n\n" +
		"💎 *Credits System:*\n" +
		"• Each search costs 1 credit\n" +
		"• Check credits with /credits\n" +
		"• Buy more credits with \"🛒 Buy Credits\"\n\n" +
		"⚡ *Quick Tips:*\n" +
		"• Send numbers directly without commands\n" +
		"• Use buttons for easy navigation\n" +
		"• All data returned in JSON format"
)

// lookupPrompts подсказки по формату запроса для каждого сервиса
var lookupPrompts = map[string]string{
	"phone":   "📱 *Number Info Lookup*\n\nPlease send a 10-digit mobile number.\nExample: 9876543210",
	"aadhaar": "🆔 *Aadhaar Lookup*\n\nPlease send a 12-digit Aadhaar number.\nExample: 123456789012",
	"vehicle": "🚗 *Vehicle Lookup*\n\nPlease send a vehicle registration number.\nExample: KA04EQ4521",
	"ifsc":    "🏦 *IFSC Lookup*\n\nPlease send an 11-character IFSC code.\nExample: SBIN0000001",
	"ip":      "🌐 *IP Lookup*\n\nPlease send an IPv4 address.\nExample: 149.154.167.91",
	"pincode": "📮 *Pincode Lookup*\n\nPlease send a 6-digit pincode.\nExample: 110006",
}

// FormatLookupPrompt возвращает подсказку для сервиса поиска
func FormatLookupPrompt(lt domain.LookupType) string {
	if prompt, ok := lookupPrompts[lt.Key]; ok {
		return prompt
	}
	return fmt.Sprintf("%s\n\nExample: %s", lt.Name, lt.Example)
}

// FormatWelcome приветствие после /start
func FormatWelcome(firstName string, credits int64) string {
	return fmt.Sprintf("✨ *Welcome %s!* ✨\n\n"+
		"🤖 *Professional Multi-Info Bot*\n"+
		"Your all-in-one information lookup solution\n\n"+
		"💎 Available Credits: *%d*\n"+
		"Each search costs 1 credit\n\n"+
		"🔍 *Available Lookups:*\n"+
		"• 📱 Number Info - 10-digit mobile numbers\n"+
		"• 🆔 Aadhaar Cards - 12-digit Aadhaar numbers\n"+
		"• 🚗 Vehicle Info - Vehicle registration numbers\n"+
		"• 🏦 Bank IFSC - 11-character IFSC codes\n"+
		"• 🌐 IP Addresses - IPv4 address information\n"+
		"• 📮 Pincode Info - 6-digit postal pincode details\n\n"+
		"Choose an option below to get started!",
		firstName, credits)
}

// FormatBanNotice уведомление о бане (только в ответ на /start)
func FormatBanNotice(reason string, banDate *time.Time) string {
	date := "Unknown"
	if banDate != nil {
		date = banDate.Format("2006-01-02 15:04:05")
	}
	if reason == "" {
		reason = "No reason provided"
	}
	return fmt.Sprintf("🚫 *ACCOUNT BANNED*\n\n"+
		"❌ Your account has been banned from using this bot.\n\n"+
		"📋 Reason: %s\n"+
		"📅 Banned on: %s\n\n"+
		"🔍 If you think this is a mistake, contact the administrator.",
		reason, date)
}

// FormatCredits текущий баланс пользователя
func FormatCredits(firstName string, credits int64) string {
	text := fmt.Sprintf("💎 *Your Credits*\n\n"+
		"🆔 User: %s\n"+
		"💳 Available Credits: *%d*\n"+
		"🔍 Cost per search: 1 credit\n\n",
		firstName, credits)

	if credits < 5 {
		text += "⚠️ *Low Balance!* Please buy more credits.\n\n"
	}

	text += "🛒 *Need more credits?*\nClick '🛒 Buy Credits' button below"
	return text
}

// FormatBuyCredits прайс-лист пакетов кредитов (покупка - вручную через админа)
func FormatBuyCredits(userID int64) string {
	return fmt.Sprintf("🛒 *Buy Credits*\n\n"+
		"💎 *Credit Packages Available:*\n\n"+
		"💰 *100 Credits* - ₹500\n"+
		"💰 *500 Credits* - ₹2000\n"+
		"💰 *1000 Credits* - ₹3500\n"+
		"💰 *5000 Credits* - ₹15000\n\n"+
		"📞 *To Purchase:*\n"+
		"Contact admin with your:\n"+
		"• User ID: `%d`\n"+
		"• Desired package\n\n"+
		"✅ Credits will be added instantly after verification!",
		userID)
}

// FormatInsufficientCredits отказ из-за нехватки баланса
func FormatInsufficientCredits(credits, required int64) string {
	return fmt.Sprintf("❌ *Insufficient Credits*\n\n"+
		"💎 Your Credits: %d\n"+
		"🔍 Required: %d\n\n"+
		"Please buy more credits to continue.",
		credits, required)
}

// FormatLookupResult успешный результат поиска
func FormatLookupResult(serviceName, query string, creditsUsed, remaining int64, payload string) string {
	return fmt.Sprintf("✅ *%s Result*\n\n"+
		"📊 *Query:* `%s`\n"+
		"💎 *Credits Used:* %d\n"+
		"💰 *Remaining Credits:* %d\n\n"+
		"📄 *Response:*\n```json\n%s\n```",
		serviceName, query, creditsUsed, remaining, payload)
}

// FormatResponseBody форматирует сырое тело ответа upstream-сервиса:
// JSON печатается с отступами, всё остальное передаётся как есть.
// Оба варианта обрезаются до maxResponseLength с маркером.
func FormatResponseBody(raw []byte) string {
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return truncate(string(raw))
	}

	formatted, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return truncate(string(raw))
	}
	return truncate(string(formatted))
}

func truncate(s string) string {
	if len(s) <= maxResponseLength {
		return s
	}
	return s[:maxResponseLength] + "\n... (truncated)"
}

// FormatUserStats персональная статистика (/stats)
func FormatUserStats(user *domain.User) string {
	return fmt.Sprintf("📊 *Your Statistics*\n\n"+
		"🆔 User: %s\n"+
		"💎 Credits: %d\n"+
		"🔍 Total Searches: %d\n"+
		"📅 Joined: %s\n"+
		"🕒 Last Active: %s\n\n",
		user.FirstName,
		user.Credits,
		user.TotalSearches,
		user.JoinedDate.Format("2006-01-02"),
		user.LastActive.Format("2006-01-02 15:04"))
}

// FormatAdminStatsSuffix дополнение к /stats для администратора
func FormatAdminStatsSuffix(totalUsers, totalSearches int64) string {
	return fmt.Sprintf("👑 *Admin Stats:*\n"+
		"• Total Users: %d\n"+
		"• Total Searches: %d\n",
		totalUsers, totalSearches)
}

// FormatAdminPanel сводка для /admin
func FormatAdminPanel(totalUsers, bannedUsers, protectedNumbers, totalSearches int64) string {
	return fmt.Sprintf("👑 *Admin Panel*\n\n"+
		"📊 *Statistics:*\n"+
		"• Total Users: %d\n"+
		"• Banned Users: %d\n"+
		"• Protected Numbers: %d\n"+
		"• Total Searches: %d\n\n"+
		"🛠 *Quick Commands:*\n"+
		"• Add credits: `123456789 50`\n"+
		"• Ban user: `ban 123456789 reason`\n"+
		"• Unban user: `unban 123456789`\n"+
		"• Protect number: `protect 9876543210`\n\n"+
		"Use buttons below for detailed options:",
		totalUsers, bannedUsers, protectedNumbers, totalSearches)
}

// FormatCreditsAdded подтверждение гранта кредитов администратору
func FormatCreditsAdded(amount, userID int64) string {
	return fmt.Sprintf("✅ Added %d credits to user %d", amount, userID)
}

// FormatUserBanned подтверждение бана
func FormatUserBanned(userID int64, reason string) string {
	return fmt.Sprintf("✅ User %d banned. Reason: %s", userID, reason)
}

// FormatUserUnbanned подтверждение разбана
func FormatUserUnbanned(userID int64) string {
	return fmt.Sprintf("✅ User %d unbanned", userID)
}

// FormatNumberProtected подтверждение защиты номера
func FormatNumberProtected(phoneNumber string) string {
	return fmt.Sprintf("✅ Number %s protected", phoneNumber)
}

// FormatNumberUnprotected подтверждение снятия защиты
func FormatNumberUnprotected(phoneNumber string) string {
	return fmt.Sprintf("✅ Number %s unprotected", phoneNumber)
}
