package models

// VotingOptions enumerates the values clients may submit for a vote.
type VotingOptions struct {
	Mbti      []string `json:"mbti"`
	Enneagram []string `json:"enneagram"`
	Zodiac    []string `json:"zodiac"`
}

var (
	MbtiTypes = []string{
		"ESTJ", "ENTJ", "ESFJ", "ENFJ",
		"ISTJ", "ISFJ", "INTJ", "INFJ",
		"ESTP", "ESFP", "ENTP", "ENFP",
		"ISTP", "ISFP", "INTP", "INFP",
	}
	EnneagramTypes = []string{
		"1w2", "2w3", "3w2", "3w4",
		"4w3", "4w5", "5w4", "5w6",
		"6w5", "6w7", "7w6", "7w8",
		"8w7", "8w9", "9w8", "9w1",
	}
	ZodiacSigns = []string{
		"Aries", "Taurus", "Gemini", "Cancer",
		"Leo", "Virgo", "Libra", "Scorpio",
		"Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
)

func NewVotingOptions() VotingOptions {
	return VotingOptions{
		Mbti:      MbtiTypes,
		Enneagram: EnneagramTypes,
		Zodiac:    ZodiacSigns,
	}
}
