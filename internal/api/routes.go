package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"fake-recruiter-detector/backend/internal/config"
	"fake-recruiter-detector/backend/internal/scoring"
	"fake-recruiter-detector/backend/internal/store"
	"fake-recruiter-detector/backend/internal/util"
)

const rootMessage = "Fake Recruiter Detector API is running."

// Config defines server dependencies.
type Config struct {
	PatternsPath   string
	PatternsDBPath string
	AllowedOrigins []string
	SilentDB       bool
	// Table overrides the configured pattern sources when set.
	Table *scoring.PatternTable
}

// Server wires HTTP handlers to the scoring engine.
type Server struct {
	analyzer       *scoring.Analyzer
	patternSource  string
	allowedOrigins []string
	allowAll       bool
	metrics        *metrics
}

// NewServer resolves the pattern table and constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{config.DefaultOrigin}
	}
	if err := config.ValidateOrigins(origins); err != nil {
		return nil, err
	}

	watch := util.StartStopwatch()
	table, source, err := loadPatternTable(cfg)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"source":   source,
		"patterns": table.Len(),
		"load_ms":  watch.ElapsedMs(),
	}).Info("pattern table loaded")

	return &Server{
		analyzer:       scoring.NewAnalyzer(table),
		patternSource:  source,
		allowedOrigins: origins,
		allowAll:       config.AllowsAllOrigins(origins),
		metrics:        newMetrics(),
	}, nil
}

func loadPatternTable(cfg Config) (*scoring.PatternTable, string, error) {
	if cfg.Table != nil {
		return cfg.Table, "provided", nil
	}
	if path := strings.TrimSpace(cfg.PatternsDBPath); path != "" {
		db, err := store.Open(path, cfg.SilentDB)
		if err != nil {
			return nil, "", fmt.Errorf("pattern store: %w", err)
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logrus.WithError(cerr).Warn("close pattern store")
			}
		}()
		table, err := db.LoadTable()
		if err != nil {
			return nil, "", fmt.Errorf("pattern store %s: %w", path, err)
		}
		return table, "db:" + path, nil
	}
	if path := strings.TrimSpace(cfg.PatternsPath); path != "" {
		table, err := scoring.LoadTable(path)
		if err != nil {
			return nil, "", fmt.Errorf("pattern file: %w", err)
		}
		return table, "file:" + path, nil
	}
	return scoring.DefaultTable(), "builtin", nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(requestID(), requestLogger(), gin.CustomRecovery(recoverPanic))

	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodPost, http.MethodGet},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if s.allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.handleRoot)
	r.POST("/analyze", s.handleAnalyze)
	r.GET("/analyze/stream", s.handleAnalyzeStream)
	r.GET("/patterns", s.handlePatterns)
	r.GET("/metrics", gin.WrapH(s.metrics.handler()))

	return r, nil
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, bindError(err))
		return
	}

	result := s.analyzer.Analyze(*req.Text)
	s.metrics.observe(result)
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"score":      result.Score,
		"level":      result.Level,
		"matches":    len(result.Highlights),
		"text_len":   len(*req.Text),
	}).Debug("message analyzed")

	c.JSON(http.StatusOK, FromResult(result))
}

func (s *Server) handlePatterns(c *gin.Context) {
	c.JSON(http.StatusOK, PatternsFromTable(s.analyzer.Table()))
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindError turns JSON decoding and validation failures into client-facing messages.
func bindError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		verrs     validator.ValidationErrors
	)
	switch {
	case errors.Is(err, io.EOF):
		return errors.New("request body is required")
	case errors.As(err, &typeErr):
		if typeErr.Field == "text" {
			return errors.New("text must be a string")
		}
		return errors.New("request body must be a JSON object")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("malformed JSON: %w", err)
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			if fe.Field() == "Text" {
				return errors.New("text is required")
			}
		}
		return errors.New("invalid request body")
	default:
		return err
	}
}
