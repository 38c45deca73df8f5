package entity

import "regexp"

// Ordered most specific first; the bare digit run is a last resort and must
// not shadow a canonical item path.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/itm/(\d+)`),
	regexp.MustCompile(`item(\d+)`),
	regexp.MustCompile(`(\d{10,})`),
}

// ExtractID pulls the marketplace listing ID out of a listing URL.
func ExtractID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
