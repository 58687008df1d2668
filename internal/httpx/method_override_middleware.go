package httpx

import "net/http"

const methodOverrideField = "_method"

// MethodOverrideMiddleware lets HTML forms issue PUT and DELETE.
// Browser forms can only send GET and POST, so the intended verb
// travels in a hidden _method field; the effective method is rewritten
// before routing and the field is stripped from the parsed form.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err == nil {
				switch r.PostForm.Get(methodOverrideField) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
				r.PostForm.Del(methodOverrideField)
				r.Form.Del(methodOverrideField)
			}
		}
		next.ServeHTTP(w, r)
	})
}
