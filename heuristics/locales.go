package heuristics

// langCodes holds ISO 639-1 language codes seen as URL locale subpaths.
var langCodes = toSet(
	"aa", "ab", "af", "am", "ar", "az", "be", "bg", "bn", "bs", "ca",
	"cs", "cy", "da", "de", "el", "en", "eo", "es", "et", "eu", "fa",
	"fi", "fo", "fr", "ga", "gl", "gu", "he", "hi", "hr", "hu", "hy",
	"id", "is", "it", "ja", "ka", "kk", "km", "kn", "ko", "ku", "ky",
	"lo", "lt", "lv", "mk", "ml", "mn", "mr", "ms", "mt", "my", "nb",
	"ne", "nl", "nn", "no", "pa", "pl", "ps", "pt", "ro", "ru", "si",
	"sk", "sl", "sq", "sr", "sv", "sw", "ta", "te", "th", "tl", "tr",
	"uk", "ur", "uz", "vi", "zh", "zu",
)

// countryCodes holds ISO 3166-1 alpha-2 country codes seen as URL locale
// subpaths.
var countryCodes = toSet(
	"ad", "ae", "ar", "at", "au", "ba", "bd", "be", "bg", "bh", "bo",
	"br", "by", "ca", "ch", "cl", "cn", "co", "cr", "cy", "cz", "de",
	"dk", "do", "dz", "ec", "ee", "eg", "es", "fi", "fr", "gb", "ge",
	"gr", "gt", "hk", "hn", "hr", "hu", "id", "ie", "il", "in", "iq",
	"ir", "is", "it", "jo", "jp", "ke", "kr", "kw", "kz", "lb", "li",
	"lk", "lt", "lu", "lv", "ly", "ma", "mk", "mt", "mx", "my", "ng",
	"ni", "nl", "no", "np", "nz", "om", "pa", "pe", "ph", "pk", "pl",
	"pt", "py", "qa", "ro", "rs", "ru", "sa", "se", "sg", "si", "sk",
	"sv", "sy", "th", "tn", "tr", "tw", "ua", "us", "uy", "uz", "ve",
	"vn", "ye", "za",
)

func toSet(codes ...string) map[string]bool {
	s := make(map[string]bool, len(codes))
	for _, c := range codes {
		s[c] = true
	}
	return s
}
