package api

import (
	"net/http"
	"net/url"
)

// Cookie names under which servers commonly issue their anti-forgery
// token, and the two header conventions it is mirrored to. Both headers
// are set so either middleware family on the server accepts the request.
const (
	csrfCookieDjango  = "csrftoken"
	csrfCookieAngular = "XSRF-TOKEN"

	csrfHeaderDjango  = "X-CSRFToken"
	csrfHeaderAngular = "X-XSRF-TOKEN"
)

// applyCSRF relays a CSRF cookie from the jar into both conventional
// headers. A header the caller already set explicitly is left untouched.
func (c *Client) applyCSRF(req *http.Request) {
	if c.httpClient.Jar == nil {
		return
	}

	var token string
	for _, cookie := range c.httpClient.Jar.Cookies(req.URL) {
		if cookie.Name == csrfCookieDjango || cookie.Name == csrfCookieAngular {
			token = cookie.Value
			if decoded, err := url.QueryUnescape(cookie.Value); err == nil {
				token = decoded
			}
			break
		}
	}
	if token == "" {
		return
	}

	if req.Header.Get(csrfHeaderDjango) == "" {
		req.Header.Set(csrfHeaderDjango, token)
	}
	if req.Header.Get(csrfHeaderAngular) == "" {
		req.Header.Set(csrfHeaderAngular, token)
	}
}
