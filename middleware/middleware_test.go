package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keshwala/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:4000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.2:4000", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.9:5555", "192.0.2.9"},
		{"garbage forwarded entry skipped", map[string]string{"X-Forwarded-For": "unknown, 203.0.113.8"}, "10.0.0.2:4000", "203.0.113.8"},
		{"garbage headers fall back", map[string]string{"X-Forwarded-For": "<script>", "X-Real-IP": "nope"}, "192.0.2.10:80", "192.0.2.10"},
		{"ipv6", map[string]string{"X-Real-IP": "2001:db8::1"}, "10.0.0.2:4000", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			if got := ClientIP(c); got != tt.want {
				t.Fatalf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for _, ip := range []string{"192.0.2.1", "192.0.2.1", "192.0.2.1", "192.0.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	want := []int{200, 200, 429, 200}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
}

func TestSessionCookieIssuedAndReused(t *testing.T) {
	issuer := utils.NewTokenIssuer("test-secret")
	r := gin.New()
	r.Use(SessionMiddleware(issuer, time.Hour, false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first := w.Body.String()
	cookies := w.Result().Cookies()
	if first == "" || len(cookies) != 1 || cookies[0].Name != utils.SessionCookie || !cookies[0].HttpOnly {
		t.Fatalf("first visit: id %q cookies %v", first, cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != first {
		t.Fatalf("session not reused: %q != %q", w.Body.String(), first)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("valid cookie should not be reissued")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: "forged"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() == first || len(w.Result().Cookies()) != 1 {
		t.Fatal("forged cookie should start a new session")
	}
}
