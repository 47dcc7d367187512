package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// LookupType - статический дескриптор одного из поддерживаемых сервисов поиска.
// Неизменяем на всё время жизни процесса.
type LookupType struct {
	Key         string
	Name        string
	Command     string
	Example     string
	Pattern     *regexp.Regexp
	Credits     int64
	URLTemplate string // шаблон с единственной подстановкой {query}
}

// BuildURL подставляет запрос в шаблон URL (с URL-кодированием)
func (lt LookupType) BuildURL(query string) string {
	return strings.ReplaceAll(lt.URLTemplate, "{query}", url.QueryEscape(query))
}

// Matches проверяет, подходит ли текст под паттерн этого типа
func (lt LookupType) Matches(text string) bool {
	return lt.Pattern.MatchString(text)
}

// PhonePattern используется и для поиска, и для валидации protect-директив
var PhonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// LookupTypes - реестр сервисов в фиксированном порядке. Порядок важен:
// первый совпавший паттерн выигрывает для неоднозначного ввода.
var LookupTypes = []LookupType{
	{
		Key:         "phone",
		Name:        "📱 Number Info",
		Command:     "phone",
		Example:     "9876543210",
		Pattern:     PhonePattern,
		Credits:     1,
		URLTemplate: "https://demon.taitanx.workers.dev/?mobile={query}",
	},
	{
		Key:         "aadhaar",
		Name:        "🆔 Aadhaar Lookup",
		Command:     "aadhaar",
		Example:     "123456789012",
		Pattern:     regexp.MustCompile(`^\d{12}$`),
		Credits:     1,
		URLTemplate: "https://family-members-n5um.vercel.app/fetch?aadhaar={query}&key=paidchx",
	},
	{
		Key:         "vehicle",
		Name:        "🚗 Vehicle Lookup",
		Command:     "vehicle",
		Example:     "KA04EQ4521",
		Pattern:     regexp.MustCompile(`(?i)^[A-Z]{2}\d{1,2}[A-Z]{1,2}\d{1,4}$`),
		Credits:     1,
		URLTemplate: "https://vehicleinfo-v2.zerovault.workers.dev/?vehicle_number={query}",
	},
	{
		Key:         "ifsc",
		Name:        "🏦 IFSC Lookup",
		Command:     "ifsc",
		Example:     "SBIN0000001",
		Pattern:     regexp.MustCompile(`(?i)^[A-Z]{4}0[A-Z0-9]{6}$`),
		Credits:     1,
		URLTemplate: "https://ifsc.razorpay.com/{query}",
	},
	{
		Key:         "ip",
		Name:        "🌐 IP Lookup",
		Command:     "ip",
		Example:     "149.154.167.91",
		Pattern:     regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`),
		Credits:     1,
		URLTemplate: "https://ip-info.bjcoderx.workers.dev/?ip={query}",
	},
	{
		Key:         "pincode",
		Name:        "📮 Pincode Lookup",
		Command:     "pincode",
		Example:     "110006",
		Pattern:     regexp.MustCompile(`^\d{6}$`),
		Credits:     1,
		URLTemplate: "https://api.postalpincode.in/pincode/{query}",
	},
}

// MatchLookup возвращает первый тип из реестра, чей паттерн совпал с текстом
func MatchLookup(registry []LookupType, text string) (LookupType, bool) {
	for _, lt := range registry {
		if lt.Matches(text) {
			return lt, true
		}
	}
	return LookupType{}, false
}

// LookupByCommand возвращает тип по имени команды (без слэша)
func LookupByCommand(registry []LookupType, command string) (LookupType, bool) {
	for _, lt := range registry {
		if lt.Command == command {
			return lt, true
		}
	}
	return LookupType{}, false
}
