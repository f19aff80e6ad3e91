package auth

import (
	"net/http"
	"sync"
)

// Result is the terminal outcome of a callback.
type Result struct {
	Outcome Outcome
	Message string
	Err     error
}

// Server serves the callback route and the two pages it redirects to.
type Server struct {
	Exchanger Exchanger
	Tokens    *Tokens

	results chan Result
	landed  chan struct{}

	mu    sync.Mutex
	flash string
	done  bool
}

func NewServer(exchanger Exchanger, tokens *Tokens) *Server {
	return &Server{
		Exchanger: exchanger,
		Tokens:    tokens,
		results:   make(chan Result, 1),
		landed:    make(chan struct{}),
	}
}

// Results delivers the first terminal outcome.
func (s *Server) Results() <-chan Result {
	return s.results
}

// Landed is closed once the browser has reached the page a terminal outcome redirected to.
func (s *Server) Landed() <-chan struct{} {
	return s.landed
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /callback", s.handleCallback)
	mux.HandleFunc("GET /profile", s.handleProfile)
	mux.HandleFunc("GET /{$}", s.handleHome)
	return mux
}

type httpNavigator struct {
	target *Navigation
}

func (n *httpNavigator) Navigate(nav Navigation) {
	n.target = &nav
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	nav := &httpNavigator{}
	cb := &Callback{Exchanger: s.Exchanger, Tokens: s.Tokens, Navigator: nav}

	outcome := cb.Mount(r.Context(), r.URL.RawQuery)
	if outcome == Pending || nav.target == nil {
		render(w, http.StatusOK, pageData{Title: "Login", Message: cb.Message()})
		return
	}

	if nav.target.Replace {
		s.mu.Lock()
		s.flash = cb.Message()
		s.mu.Unlock()
	}

	s.publish(Result{Outcome: outcome, Message: cb.Message(), Err: cb.Err()})

	// a 303 is followed with a fresh GET, which reloads the target page
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, nav.target.Path, http.StatusSeeOther)
}

func (s *Server) publish(result Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	s.results <- result
}

func (s *Server) land() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.done {
		return
	}

	select {
	case <-s.landed:
	default:
		close(s.landed)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	flash := s.flash
	s.flash = ""
	s.mu.Unlock()

	defer s.land()

	if flash == "" {
		render(w, http.StatusOK, pageData{Title: "Home", Message: "Not logged in", Hint: "Run miru login from the terminal."})
		return
	}

	render(w, http.StatusOK, pageData{Title: "Home", Message: flash, Hint: "You may close this tab and return to the terminal.", Error: true})
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	defer s.land()

	token, err := s.Tokens.Token()
	if err != nil || token.IsAbsent() {
		render(w, http.StatusOK, pageData{Title: "Profile", Message: "Not logged in"})
		return
	}

	render(w, http.StatusOK, pageData{Title: "Profile", Message: "Logged in", Hint: "You may close this tab and return to the terminal."})
}
