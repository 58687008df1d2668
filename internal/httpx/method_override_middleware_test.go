package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func overrideRequest(form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/books/7", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestMethodOverrideMiddleware(t *testing.T) {
	var gotMethod, gotOverrideField string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotOverrideField = r.PostForm.Get("_method")
	})
	mw := MethodOverrideMiddleware(next)

	t.Run("rewrites PUT and strips the field", func(t *testing.T) {
		mw.ServeHTTP(httptest.NewRecorder(), overrideRequest(url.Values{
			"_method": {"PUT"},
			"title":   {"Dune"},
		}))
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Empty(t, gotOverrideField)
	})

	t.Run("rewrites DELETE", func(t *testing.T) {
		mw.ServeHTTP(httptest.NewRecorder(), overrideRequest(url.Values{"_method": {"DELETE"}}))
		assert.Equal(t, http.MethodDelete, gotMethod)
	})

	t.Run("ignores other values", func(t *testing.T) {
		mw.ServeHTTP(httptest.NewRecorder(), overrideRequest(url.Values{"_method": {"PATCH"}}))
		assert.Equal(t, http.MethodPost, gotMethod)
	})

	t.Run("leaves plain posts alone", func(t *testing.T) {
		mw.ServeHTTP(httptest.NewRecorder(), overrideRequest(url.Values{"title": {"Dune"}}))
		assert.Equal(t, http.MethodPost, gotMethod)
	})

	t.Run("never touches GET", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?_method=DELETE", nil)
		mw.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, http.MethodGet, gotMethod)
	})

	t.Run("form stays readable downstream", func(t *testing.T) {
		var gotTitle string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotTitle = r.PostFormValue("title")
		})
		MethodOverrideMiddleware(inner).ServeHTTP(httptest.NewRecorder(), overrideRequest(url.Values{
			"_method": {"PUT"},
			"title":   {"Dune"},
		}))
		assert.Equal(t, "Dune", gotTitle)
	})
}
