package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/manthansinghshekhawat/personahitesh/internal/chat"
)

type MessageRequest struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	UserMessage      chat.Entry `json:"user_message"`
	AssistantMessage chat.Entry `json:"assistant_message"`
}

type HistoryResponse struct {
	Messages []chat.Entry `json:"messages"`
	Banner   string       `json:"banner,omitempty"`
}

type EndResponse struct {
	Farewell chat.Entry `json:"farewell"`
	Archived bool       `json:"archived"`
}

type Server struct {
	echo      *echo.Echo
	assistant *chat.Assistant
	banner    string
}

// NewServer builds the HTTP surface around one assistant. banner is a
// startup configuration or initialization error to show persistently
// in the UI; empty means a healthy start.
func NewServer(assistant *chat.Assistant, banner string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	s := &Server{
		echo:      e,
		assistant: assistant,
		banner:    banner,
	}

	s.setupRoutes()
	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) setupRoutes() {
	s.echo.Static("/", "views")
	s.echo.GET("/healthz", s.healthz)

	api := s.echo.Group("/api")
	api.GET("/chat", s.getHistory)
	api.POST("/chat", s.sendMessage)
	api.POST("/chat/end", s.endConversation)
}

func (s *Server) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// getHistory returns the transcript for rendering. A fresh session
// picks up its greeting here.
func (s *Server) getHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, HistoryResponse{
		Messages: s.assistant.History(),
		Banner:   s.banner,
	})
}

// sendMessage runs one conversation turn. On a completion failure the
// user message is already part of the transcript; the error payload
// takes the place of the missing reply.
func (s *Server) sendMessage(c echo.Context) error {
	req := new(MessageRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	userEntry, replyEntry, err := s.assistant.HandleMessage(c.Request().Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrClientUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		UserMessage:      userEntry,
		AssistantMessage: replyEntry,
	})
}

// endConversation archives the transcript and resets the session.
func (s *Server) endConversation(c echo.Context) error {
	farewell := s.assistant.EndConversation()
	return c.JSON(http.StatusOK, EndResponse{
		Farewell: farewell,
		Archived: true,
	})
}
