package ws

import (
	"log"
	"net/http"

	"rozgarhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

const maxMessageBytes = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the chat flow over a websocket: one JSON request in, one
// JSON reply out, repeated until the client hangs up.
type Handler struct {
	uc     usecase.ChatUsecase
	logger *log.Logger
}

func NewHandler(uc usecase.ChatUsecase, logger *log.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

type chatFrame struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	UserID   string `json:"user_id"`
}

type replyFrame struct {
	Message string            `json:"message"`
	Jobs    []usecase.JobCard `json:"jobs"`
}

func (h *Handler) HandleChatWS(c fiber.Ctx) error {
	if h == nil || h.uc == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] Upgrade failed: %v", err)
			}
			return
		}
		defer conn.Close()

		conn.SetReadLimit(maxMessageBytes)
		h.serve(r, conn)
	})

	return fiberHandler(c)
}

func (h *Handler) serve(r *http.Request, conn *websocket.Conn) {
	for {
		var frame chatFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				if h.logger != nil {
					h.logger.Printf("[WS] Read failed: %v", err)
				}
			}
			return
		}

		reply := h.uc.Respond(r.Context(), usecase.ChatRequest{
			Message:  frame.Message,
			Language: frame.Language,
			UserID:   frame.UserID,
		})

		jobs := reply.Jobs
		if jobs == nil {
			jobs = []usecase.JobCard{}
		}
		if err := conn.WriteJSON(replyFrame{Message: reply.Message, Jobs: jobs}); err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] Write failed: %v", err)
			}
			return
		}
	}
}
