package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes builds the route table. Method override has already run by
// the time requests reach the router, so PUT and DELETE match the
// rewritten verb of ordinary form posts.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()

	r.Methods("GET").Path("/").Handler(appHandler(h.listBooks))
	r.Methods("GET").Path("/searches/new").Handler(appHandler(h.newSearch))
	r.Methods("POST").Path("/searches").Handler(appHandler(h.createSearch))
	r.Methods("GET").Path("/books/{id:[0-9]+}").Handler(appHandler(h.showBook))
	r.Methods("POST").Path("/books").Handler(appHandler(h.createBook))
	r.Methods("PUT").Path("/books/{id:[0-9]+}").Handler(appHandler(h.updateBook))
	r.Methods("DELETE").Path("/books/{id:[0-9]+}").Handler(appHandler(h.deleteBook))

	r.PathPrefix("/public/").Handler(
		http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)
	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("This route does not exist"))
}
