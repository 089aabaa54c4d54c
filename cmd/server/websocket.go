package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cricklet/chessgrid/internal/game"
	. "github.com/cricklet/chessgrid/internal/helpers"
	"github.com/gorilla/websocket"
)

type wsConnection struct {
	c       *websocket.Conn
	session *game.Session
	server  *Server
	logger  Logger
	gameID  string
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Println("upgrade:", err)
		return
	}
	defer c.Close()

	conn := &wsConnection{c: c, server: s}

	// logs are forwarded to the browser as one-element JSON arrays
	conn.logger = FuncLogger(func(message string) {
		s.Logger.Print("logging: ", message)
		bytes, err := json.Marshal([]string{message})
		if err != nil {
			s.Logger.Println("logging: json marshal:", err)
			return
		}
		if err := c.WriteMessage(websocket.TextMessage, bytes); err != nil {
			s.Logger.Println("logging: websocket:", err)
		}
	})

	session, sessionErr := game.NewSession(game.WithLogger(FuncLogger(func(message string) {
		conn.logger.Print("session: ", message)
	})))
	if !IsNil(sessionErr) {
		s.Logger.Println("session:", sessionErr)
		return
	}
	conn.session = session

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			s.Logger.Printf("websocket closed: %v", err)
			break
		}
		conn.handleMessageFromWeb(message)
	}
}

func (conn *wsConnection) sendUpdate(update UpdateToWeb) {
	update.FenString = conn.session.FenString()
	update.Player = conn.session.SideToMove().String()
	update.GameID = conn.gameID
	if lastMove := conn.session.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}

	bytes, err := json.Marshal(update)
	if err != nil {
		conn.server.Logger.Println("update: json marshal:", err)
		return
	}
	if err := conn.c.WriteMessage(websocket.TextMessage, bytes); err != nil {
		conn.server.Logger.Println("websocket:", err)
	}
}

func (conn *wsConnection) handleMessageFromWeb(bytes []byte) {
	var message MessageFromWeb
	update := UpdateToWeb{}

	if err := json.Unmarshal(bytes, &message); err != nil {
		update.Error = fmt.Sprint("json unmarshal: ", err)
		conn.sendUpdate(update)
		return
	}
	conn.logger.Println("received", message)

	var err Error
	if message.NewFen != nil {
		err = conn.session.SetupFen(*message.NewFen)
	} else if message.Selection != nil {
		update.Selection = *message.Selection
		if *message.Selection != "" {
			update.PossibleMoves, err = conn.session.MovesForSelection(*message.Selection)
		}
	} else if message.Move != nil {
		err = conn.session.PerformMoveFromString(*message.Move)
	} else if message.Rewind != nil {
		err = conn.session.Rewind(*message.Rewind)
	} else if message.Reset != nil && *message.Reset {
		conn.session.Reset()
	} else if message.Save != nil {
		err = conn.save(*message.Save)
	} else if message.Load != nil {
		err = conn.load(*message.Load)
	}

	if !IsNil(err) {
		conn.logger.Println("error:", err)
		update.Error = err.Error()
	}
	conn.sendUpdate(update)
}

func (conn *wsConnection) save(id string) Error {
	if conn.server.store == nil {
		return Errorf("no storage configured")
	}
	err := conn.server.store.Save(conn.session.Record(id))
	if IsNil(err) {
		conn.gameID = id
	}
	return err
}

func (conn *wsConnection) load(id string) Error {
	if conn.server.store == nil {
		return Errorf("no storage configured")
	}
	session, err := conn.server.loadSession(id, conn.session.Logger)
	if !IsNil(err) {
		return err
	}
	conn.session = session
	conn.gameID = id
	return NilError
}
