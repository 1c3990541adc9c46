package swell

import "net/http"

// Cookie names read as the lowest-precedence fallback for session, locale,
// and currency headers.
const (
	SessionCookie  = "swell-session"
	LocaleCookie   = "swell-locale"
	CurrencyCookie = "swell-currency"
)

// CookieReader supplies cookie values to the request builder. It stands in
// for the ambient browser cookie store of JavaScript clients: hosts that have
// one (server-side renderers forwarding an inbound request, test fixtures)
// inject it; everyone else leaves it unset.
type CookieReader interface {
	Cookie(name string) string
}

// CookieMap is a fixed CookieReader backed by a map. Useful for tests and
// for hosts that resolve cookies once up front.
type CookieMap map[string]string

func (m CookieMap) Cookie(name string) string {
	return m[name]
}

type requestCookies struct {
	r *http.Request
}

func (rc requestCookies) Cookie(name string) string {
	c, err := rc.r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// RequestCookies returns a CookieReader backed by the cookies of an inbound
// HTTP request, for server-side rendering hosts that want per-visitor
// session, locale, and currency fallbacks.
func RequestCookies(r *http.Request) CookieReader {
	return requestCookies{r: r}
}
