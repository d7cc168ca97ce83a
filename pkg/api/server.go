// Package api provides the REST API server for kalimba2midi
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/james-see/kalimba2midi/pkg/converter"
	"github.com/james-see/kalimba2midi/pkg/notation"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Kalimba2MIDI API
// @version 1.0
// @description API for converting between kalimba tabs, piano note names and MIDI notes
// @host localhost:8080
// @BasePath /api/v1

// maxUploadSize bounds MIDI uploads
const maxUploadSize = 8 << 20

// TabRequest carries a kalimba tab
type TabRequest struct {
	Tab string `json:"tab"`
}

// PianoRequest carries space separated piano note names
type PianoRequest struct {
	Piano string `json:"piano"`
}

// SymbolInfo is one row of the mapping table
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	MIDI   int    `json:"midi"`
	Piano  string `json:"piano"`
}

// StartServer starts the API server on the specified port
func StartServer(port int, log logrus.FieldLogger) error {
	return NewRouter(log).Run(fmt.Sprintf(":%d", port))
}

// NewRouter builds the API routes
func NewRouter(log logrus.FieldLogger) *gin.Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware(log))

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/symbols", listSymbols)
		v1.POST("/kalimba/piano", handleKalimbaToPiano)
		v1.POST("/kalimba/midi", handleKalimbaToMIDI)
		v1.POST("/piano/kalimba", handlePianoToKalimba)
		v1.POST("/midi/notes", handleMIDINotes)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func requestIDMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)

		c.Next()

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		}).Info("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kalimba2midi",
	})
}

// listSymbols godoc
// @Summary List kalimba symbols
// @Description Returns the kalimba to MIDI and piano mapping table
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]SymbolInfo
// @Router /api/v1/symbols [get]
func listSymbols(c *gin.Context) {
	table := notation.Table()
	symbols := make([]SymbolInfo, len(table))
	for i, e := range table {
		symbols[i] = SymbolInfo{Symbol: string(e.Symbol), MIDI: e.MIDI, Piano: e.Piano}
	}
	c.JSON(http.StatusOK, gin.H{"symbols": symbols})
}

// handleKalimbaToPiano godoc
// @Summary Convert a kalimba tab to piano note names
// @Tags convert
// @Accept json
// @Produce json
// @Param request body TabRequest true "Kalimba tab"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/v1/kalimba/piano [post]
func handleKalimbaToPiano(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"piano": notation.ToPianoNames(req.Tab)})
}

// handleKalimbaToMIDI godoc
// @Summary Convert a kalimba tab to MIDI note numbers
// @Description Unknown tokens are returned unchanged as strings
// @Tags convert
// @Accept json
// @Produce json
// @Param request body TabRequest true "Kalimba tab"
// @Success 200 {object} map[string][]any
// @Failure 400 {object} map[string]string
// @Router /api/v1/kalimba/midi [post]
func handleKalimbaToMIDI(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tokens := notation.ToMIDINumbers(req.Tab)
	notes := make([]any, len(tokens))
	for i, tok := range tokens {
		notes[i] = tok.Value()
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// handlePianoToKalimba godoc
// @Summary Convert piano note names to a kalimba tab
// @Tags convert
// @Accept json
// @Produce json
// @Param request body PianoRequest true "Piano note names"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/v1/piano/kalimba [post]
func handlePianoToKalimba(c *gin.Context) {
	var req PianoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tab": notation.PianoToKalimba(req.Piano)})
}

// handleMIDINotes godoc
// @Summary Extract notes from a MIDI file
// @Description Upload a MIDI file and receive its sounding note numbers
// @Tags convert
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "MIDI file"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/midi/notes [post]
func handleMIDINotes(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// one byte past the limit tells a full upload from an oversized one
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	if len(data) > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds %d bytes", maxUploadSize),
			"file":  header.Filename,
		})
		return
	}

	notes, err := converter.ParseNotes(data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, converter.ErrMIDIParse) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error(), "file": header.Filename})
		return
	}

	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = notation.NoteName(n)
	}
	c.JSON(http.StatusOK, gin.H{
		"file":    header.Filename,
		"notes":   notes,
		"names":   names,
		"kalimba": notation.MIDIToKalimba(notes),
	})
}
