package models

import "strings"

// Sentiment is the categorical mood value recorded per member.
// The canonical representation is lowercase; Normalize accepts any casing.
type Sentiment string

const (
	SentimentHappy   Sentiment = "happy"
	SentimentNeutral Sentiment = "neutral"
	SentimentSad     Sentiment = "sad"
)

// IsValid checks if the Sentiment is one of the three canonical values
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentHappy, SentimentNeutral, SentimentSad:
		return true
	}
	return false
}

// NormalizeSentiment lowercases an inbound sentiment value. Some clients
// submit uppercase variants (HAPPY/NEUTRAL/SAD); storage is always lowercase.
func NormalizeSentiment(value string) Sentiment {
	return Sentiment(strings.ToLower(strings.TrimSpace(value)))
}

// CheckinFrequency defines how often sentiment check-ins are requested
type CheckinFrequency string

const (
	CheckinFrequencyDaily   CheckinFrequency = "daily"
	CheckinFrequencyWeekly  CheckinFrequency = "weekly"
	CheckinFrequencyMonthly CheckinFrequency = "monthly"
)

// IsValid checks if the CheckinFrequency is valid
func (f CheckinFrequency) IsValid() bool {
	switch f {
	case CheckinFrequencyDaily, CheckinFrequencyWeekly, CheckinFrequencyMonthly:
		return true
	}
	return false
}
