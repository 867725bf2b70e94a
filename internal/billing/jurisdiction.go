package billing

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultStateCode is returned when an address matches no known state (Uttar Pradesh).
	DefaultStateCode = "09"
	// LegacySellerState is the seller jurisdiction used before it became configurable (Karnataka).
	LegacySellerState = "29"
)

// JurisdictionPolicy decides what happens when an address cannot be resolved.
type JurisdictionPolicy string

const (
	// JurisdictionPolicyDefault falls back to DefaultStateCode and flags the result.
	JurisdictionPolicyDefault JurisdictionPolicy = "default"
	// JurisdictionPolicyReject fails the computation with ErrUnresolvableJurisdiction.
	JurisdictionPolicyReject JurisdictionPolicy = "reject"
)

type stateRule struct {
	code    string
	name    string
	names   []string
	aliases []string
}

// stateRules is evaluated in order. Full names of every rule are tried before
// any alias, so a short abbreviation never shadows a state spelled out in full.
var stateRules = []stateRule{
	{code: "29", name: "Karnataka", names: []string{"karnataka"}, aliases: []string{"bengaluru", "bangalore", "mysuru", "mysore", "ka"}},
	{code: "27", name: "Maharashtra", names: []string{"maharashtra"}, aliases: []string{"mumbai", "pune", "nagpur", "mh"}},
	{code: "07", name: "Delhi", names: []string{"delhi"}, aliases: []string{"dl"}},
	{code: "33", name: "Tamil Nadu", names: []string{"tamil nadu", "tamilnadu"}, aliases: []string{"chennai", "coimbatore", "tn"}},
	{code: "36", name: "Telangana", names: []string{"telangana"}, aliases: []string{"hyderabad", "ts", "tg"}},
	{code: "37", name: "Andhra Pradesh", names: []string{"andhra pradesh"}, aliases: []string{"visakhapatnam", "vijayawada", "ap"}},
	{code: "09", name: "Uttar Pradesh", names: []string{"uttar pradesh"}, aliases: []string{"lucknow", "noida", "ghaziabad", "kanpur", "up"}},
	{code: "23", name: "Madhya Pradesh", names: []string{"madhya pradesh"}, aliases: []string{"bhopal", "indore", "mp"}},
	{code: "02", name: "Himachal Pradesh", names: []string{"himachal pradesh"}, aliases: []string{"shimla", "hp"}},
	{code: "24", name: "Gujarat", names: []string{"gujarat"}, aliases: []string{"ahmedabad", "surat", "vadodara", "gj"}},
	{code: "08", name: "Rajasthan", names: []string{"rajasthan"}, aliases: []string{"jaipur", "udaipur", "rj"}},
	{code: "19", name: "West Bengal", names: []string{"west bengal"}, aliases: []string{"kolkata", "calcutta", "wb"}},
	{code: "32", name: "Kerala", names: []string{"kerala"}, aliases: []string{"kochi", "thiruvananthapuram", "kl"}},
	{code: "06", name: "Haryana", names: []string{"haryana"}, aliases: []string{"gurugram", "gurgaon", "faridabad", "hr"}},
	{code: "03", name: "Punjab", names: []string{"punjab"}, aliases: []string{"ludhiana", "amritsar", "pb"}},
	{code: "10", name: "Bihar", names: []string{"bihar"}, aliases: []string{"patna", "br"}},
	{code: "21", name: "Odisha", names: []string{"odisha", "orissa"}, aliases: []string{"bhubaneswar", "od"}},
	{code: "20", name: "Jharkhand", names: []string{"jharkhand"}, aliases: []string{"ranchi", "jamshedpur", "jh"}},
	{code: "22", name: "Chhattisgarh", names: []string{"chhattisgarh", "chattisgarh"}, aliases: []string{"raipur", "cg"}},
	{code: "18", name: "Assam", names: []string{"assam"}, aliases: []string{"guwahati"}},
	{code: "30", name: "Goa", names: []string{"goa"}, aliases: []string{"panaji"}},
	{code: "01", name: "Jammu and Kashmir", names: []string{"jammu and kashmir", "jammu kashmir"}, aliases: []string{"srinagar", "jammu", "jk"}},
}

// ResolveJurisdiction maps a free-text address to a 2-digit GST state code.
// Keywords are matched on word boundaries against the lower-cased address.
// When nothing matches it returns DefaultStateCode and false.
func ResolveJurisdiction(address string) (code string, matched bool) {
	haystack := normalizeAddress(address)
	if haystack == "" {
		return DefaultStateCode, false
	}
	for _, rule := range stateRules {
		if containsAny(haystack, rule.names) {
			return rule.code, true
		}
	}
	for _, rule := range stateRules {
		if containsAny(haystack, rule.aliases) {
			return rule.code, true
		}
	}
	return DefaultStateCode, false
}

// StateName returns the display name for a known state code.
func StateName(code string) (string, bool) {
	for _, rule := range stateRules {
		if rule.code == code {
			return rule.name, true
		}
	}
	return "", false
}

// KnownStateCodes returns the codes the resolver can produce, in rule order.
func KnownStateCodes() []string {
	codes := make([]string, 0, len(stateRules))
	for _, rule := range stateRules {
		codes = append(codes, rule.code)
	}
	return codes
}

// ValidStateCode reports whether code is a 2-digit GST state code (01-38).
func ValidStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 1 && n <= 38
}

func normalizeAddress(address string) string {
	fields := strings.FieldsFunc(strings.ToLower(address), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return ""
	}
	return " " + strings.Join(fields, " ") + " "
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, " "+kw+" ") {
			return true
		}
	}
	return false
}
