package service

import (
	"regexp"
	"strings"
)

// TopicRule maps a keyword pattern to a topic slug. Rules are evaluated in
// order and the first match wins, so more specific rules must stay above the
// generic catch-alls.
type TopicRule struct {
	Pattern *regexp.Regexp
	Slug    string
}

var topicRules = []TopicRule{
	// Polity — specific before generic
	{regexp.MustCompile(`constituent assembly|drafting committee|objectives resolution`), "making-of-the-constitution"},
	{regexp.MustCompile(`preamble`), "preamble"},
	{regexp.MustCompile(`fundamental rights|right to equality|right to freedom|writ of`), "fundamental-rights"},
	{regexp.MustCompile(`directive principles|dpsp`), "directive-principles"},
	{regexp.MustCompile(`supreme court|high court|chief justice|judicial review|judiciary`), "judiciary"},
	{regexp.MustCompile(`lok sabha|rajya sabha|parliament|speaker|money bill`), "parliament"},
	{regexp.MustCompile(`president|vice[- ]president|governor|council of ministers|prime minister`), "executive"},
	{regexp.MustCompile(`panchayat|municipalit|local government|73rd amendment|74th amendment`), "local-government"},
	{regexp.MustCompile(`election commission|electoral|universal adult franchise`), "elections"},
	// Generic polity catch-all: any article/schedule reference
	{regexp.MustCompile(`article\s*\d+|schedule`), "constitution-general"},

	// History
	{regexp.MustCompile(`indus valley|harappa|mohenjo[- ]?daro`), "indus-valley-civilisation"},
	{regexp.MustCompile(`maurya|ashoka|chandragupta`), "mauryan-empire"},
	{regexp.MustCompile(`mughal|akbar|aurangzeb|babur`), "mughal-empire"},
	{regexp.MustCompile(`east india company|battle of plassey|sepoy|revolt of 1857`), "company-rule"},
	{regexp.MustCompile(`non[- ]cooperation|civil disobedience|quit india|salt march|gandhi`), "freedom-struggle"},

	// Geography
	{regexp.MustCompile(`himalaya|western ghats|eastern ghats|mountain range`), "physiography"},
	{regexp.MustCompile(`monsoon|climate|rainfall`), "climate"},
	{regexp.MustCompile(`river|ganga|brahmaputra|tributary`), "drainage"},

	// Economy
	{regexp.MustCompile(`reserve bank|rbi|monetary policy|repo rate`), "monetary-policy"},
	{regexp.MustCompile(`gdp|national income|fiscal deficit|budget`), "macro-economy"},

	// Science
	{regexp.MustCompile(`photosynthesis|cell|chromosome|dna`), "biology-basics"},
	{regexp.MustCompile(`newton|velocity|acceleration|gravitation`), "physics-basics"},
}

// ClassifyTopic assigns a topic slug from question + explanation text using
// the ordered rule list. Returns ("", false) when nothing matches. Used only
// at import time; stored questions are never reclassified.
func ClassifyTopic(questionText, explanationText string) (string, bool) {
	haystack := strings.ToLower(questionText + " " + explanationText)
	for _, rule := range topicRules {
		if rule.Pattern.MatchString(haystack) {
			return rule.Slug, true
		}
	}
	return "", false
}
