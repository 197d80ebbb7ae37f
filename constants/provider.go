package constants

import "strings"

// Provider identifies a hosted model provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// ParseProvider maps free-form input onto a known provider.
func ParseProvider(input string) (Provider, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(ProviderOpenAI):
		return ProviderOpenAI, true
	case string(ProviderAnthropic):
		return ProviderAnthropic, true
	default:
		return "", false
	}
}
