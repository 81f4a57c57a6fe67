package httpserver

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aalvaropc/setupd/internal/domain"
)

// Responder maps GET / (and HEAD /) to the fixed page. Every other request
// gets an explicit 404.
type Responder struct {
	body        []byte
	contentType string
	etag        string
}

// NewResponder builds a Responder serving domain.PageHTML.
func NewResponder() *Responder {
	return newResponder([]byte(domain.PageHTML), domain.PageContentType)
}

func newResponder(body []byte, contentType string) *Responder {
	return &Responder{
		body:        body,
		contentType: contentType,
		etag:        weakETag(body),
	}
}

// ETag returns the entity tag sent with the page.
func (p *Responder) ETag() string {
	return p.etag
}

func (p *Responder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		notFound(w, r)
		return
	}

	h := w.Header()
	h.Set("Content-Type", p.contentType)
	h.Set("ETag", p.etag)

	if !noCache(r.Header.Get("Cache-Control")) && etagMatches(r.Header.Get("If-None-Match"), p.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Length", strconv.Itoa(len(p.body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(p.body)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "Cannot %s %s\n", r.Method, r.URL.Path)
}

// weakETag derives W/"<len>-<sha1>" from the body.
func weakETag(body []byte) string {
	sum := sha1.Sum(body)
	hash := base64.StdEncoding.EncodeToString(sum[:])[:27]
	return fmt.Sprintf(`W/"%x-%s"`, len(body), hash)
}

// noCache reports whether a Cache-Control request header asks for an
// end-to-end reload.
func noCache(header string) bool {
	for _, directive := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(directive), "no-cache") {
			return true
		}
	}
	return false
}

// etagMatches applies the weak comparison from RFC 9110 to an
// If-None-Match header value.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}
