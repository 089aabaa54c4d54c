package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/cricklet/chessgrid/internal/game"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/cricklet/chessgrid/internal/storage"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Server shares one session between the REST endpoints. Every websocket
// connection gets a session of its own.
type Server struct {
	Logger Logger

	lock    sync.Mutex
	session *game.Session
	store   *storage.Storage

	upgrader websocket.Upgrader
}

func NewServer(store *storage.Storage, logger Logger) (*Server, Error) {
	session, err := game.NewSession(game.WithLogger(logger))
	if !IsNil(err) {
		return nil, err
	}
	return &Server{
		Logger:  logger,
		session: session,
		store:   store,
	}, NilError
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleWebsocket)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/board", s.handleBoard).Methods(http.MethodGet)
	api.HandleFunc("/moves/{square}", s.handleMoves).Methods(http.MethodGet)
	api.HandleFunc("/move/{move}", s.handleMove).Methods(http.MethodPost)
	api.HandleFunc("/rewind/{count:[0-9]+}", s.handleRewind).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/games", s.handleListGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.handleSaveGame).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", s.handleLoadGame).Methods(http.MethodGet)
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, boardResponse(s.session))
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	moves, err := s.session.MovesForSelection(mux.Vars(r)["square"])
	if !IsNil(err) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, moves)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	err := s.session.PerformMoveFromString(mux.Vars(r)["move"])
	if !IsNil(err) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse(s.session))
}

func (s *Server) handleRewind(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	count, _ := strconv.Atoi(mux.Vars(r)["count"])
	err := s.session.Rewind(count)
	if !IsNil(err) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse(s.session))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.session.Reset()
	writeJSON(w, http.StatusOK, boardResponse(s.session))
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, Errorf("no storage configured"))
		return false
	}
	return true
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ids, err := s.store.List()
	if !IsNil(err) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	record := s.session.Record(mux.Vars(r)["id"])
	err := s.store.Save(record)
	if !IsNil(err) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleLoadGame(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	session, err := s.loadSession(mux.Vars(r)["id"], s.Logger)
	if !IsNil(err) {
		status := http.StatusInternalServerError
		if errorsIsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	s.session = session
	writeJSON(w, http.StatusOK, boardResponse(s.session))
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func (s *Server) loadSession(id string, logger Logger) (*game.Session, Error) {
	record, err := s.store.Load(id)
	if !IsNil(err) {
		return nil, err
	}
	return game.SessionFromRecord(record, game.WithLogger(logger))
}
