// Package api exposes the vocabulary scheduler over HTTP.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/example/vocabsrs/internal/deck"
	"github.com/example/vocabsrs/internal/srs"
	"github.com/example/vocabsrs/pkg/models"
)

// Server wires the scheduler service into an echo HTTP server.
type Server struct {
	echo    *echo.Echo
	service *Service
}

// NewServer builds the HTTP server and registers the vocabulary routes.
func NewServer(service *Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{echo: e, service: service}

	g := e.Group("/api/vocabulary")
	g.GET("/due", s.handleDue)
	g.POST("/review", s.handleReview)
	g.POST("", s.handleAddWord)
	g.GET("/stats", s.handleStats)

	return s
}

// Start begins serving on the given address. Blocks until Shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleDue(c echo.Context) error {
	cards := s.service.DueCards(time.Now())
	if cards == nil {
		cards = []models.Card{}
	}
	return c.JSON(http.StatusOK, cards)
}

type reviewRequest struct {
	VocabularyID string `json:"vocabularyId"`
	Quality      int    `json:"quality"`
}

type reviewResponse struct {
	Card    models.Card `json:"card"`
	Warning string      `json:"warning,omitempty"`
}

func (s *Server) handleReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VocabularyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "vocabularyId is required")
	}

	card, err := s.service.Review(req.VocabularyID, srs.Quality(req.Quality), time.Now())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, reviewResponse{Card: card})
	case errors.Is(err, srs.ErrInvalidQuality):
		return echo.NewHTTPError(http.StatusBadRequest, "quality must be between 0 and 5")
	case errors.Is(err, deck.ErrCardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "vocabulary card not found")
	case errors.Is(err, deck.ErrPersistence):
		// The review is applied in memory; warn instead of failing.
		log.Printf("Warning: review applied but not persisted: %v", err)
		return c.JSON(http.StatusOK, reviewResponse{Card: card, Warning: "progress may not be saved"})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

type addWordRequest struct {
	Word        string `json:"word"`
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
}

func (s *Server) handleAddWord(c echo.Context) error {
	var req addWordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Word == "" || req.Meaning == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "word and meaning are required")
	}

	card, err := s.service.AddWord(req.Word, req.Meaning, req.Translation, time.Now())
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, card)
	case errors.Is(err, deck.ErrPersistence):
		log.Printf("Warning: word added but not persisted: %v", err)
		return c.JSON(http.StatusCreated, card)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.service.Stats(time.Now()))
}
