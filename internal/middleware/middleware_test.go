package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sessionChain(h http.Handler) http.Handler {
	return Session(SessionConfig{SigningKey: "test-key"})(CSRF(h))
}

func cookiesFrom(rr *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rr.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestSessionCookieRoundTrip(t *testing.T) {
	var first, second string
	h := sessionChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if first == "" {
			first = GetSession(r).ID
		} else {
			second = GetSession(r).ID
		}
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	ck := cookiesFrom(rr)
	require.Contains(t, ck, sessionCookieName)
	require.Contains(t, ck, csrfCookieName)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(ck[sessionCookieName])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

func TestTamperedSessionIsReplaced(t *testing.T) {
	var id string
	h := sessionChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = GetSession(r).ID
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "eyJpZCI6ImZvcmdlZCJ9.AAAA"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NotEqual(t, "forged", id)
	require.NotEmpty(t, id)
}

func TestFlashSurvivesOneRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		GetSession(r).SetFlash("sent")
		http.Redirect(w, r, "/get", http.StatusSeeOther)
	})
	var got []string
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		got = append(got, GetSession(r).PopFlash())
	})
	h := Session(SessionConfig{SigningKey: "k"})(mux)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/set", nil))
	c := cookiesFrom(rr)[sessionCookieName]
	require.NotNil(t, c)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(c)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	c2 := cookiesFrom(rr)[sessionCookieName]
	require.NotNil(t, c2, "popping the flash rewrites the cookie")

	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(c2)
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, []string{"sent", ""}, got)
}

func TestCSRFAcceptsFormFieldAndHeader(t *testing.T) {
	var token string
	h := sessionChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFToken(r)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	ck := cookiesFrom(rr)
	require.NotEmpty(t, token)

	form := url.Values{CSRFFormField: {token}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(ck[sessionCookieName])
	req.AddCookie(ck[csrfCookieName])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(csrfHeaderName, token)
	req.AddCookie(ck[sessionCookieName])
	req.AddCookie(ck[csrfCookieName])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCSRFRejectsMissingOrWrongToken(t *testing.T) {
	h := sessionChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusForbidden, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(csrfHeaderName, "nope")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusForbidden, rr.Code)
}

type observed struct {
	route  string
	status int
}

type fakeObserver struct{ got []observed }

func (f *fakeObserver) ObserveRequest(route, _ string, status int, _ time.Duration) {
	f.got = append(f.got, observed{route, status})
}

func TestLoggerLevelsByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := &fakeObserver{}
	h := Logger(zap.New(core), obs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte("ok"))
		}
	}))
	for _, p := range []string{"/", "/missing", "/boom"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	require.Equal(t, int64(404), entries[1].ContextMap()["status"])
	require.Equal(t, []observed{{"", 200}, {"", 404}, {"", 500}}, obs.got)
}

func TestLoggerIsAvailableDownstream(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Logger(zap.New(core), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Log(r.Context()).Info("inside")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, 1, logs.FilterMessage("inside").Len())
	require.NotNil(t, Log(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	l, err := NewLogger("bogus")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger("debug")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestAssetsETagAndNoListing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))
	h := AssetsWithCache(dir, "/assets")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "body{}", rr.Body.String())
	et := rr.Header().Get("ETag")
	require.True(t, strings.HasPrefix(et, `W/"`))
	require.Contains(t, rr.Header().Get("Cache-Control"), "max-age")

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", et)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotModified, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/css/", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHTMXMarksContextAndPushURL(t *testing.T) {
	var is bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is = IsHTMX(r.Context())
		PushURL(w, "/products/sliding?image=1")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.True(t, is)
	require.Equal(t, "/products/sliding?image=1", rr.Header().Get("HX-Push-Url"))
	require.Equal(t, "HX-Request", rr.Header().Get("Vary"))
}
