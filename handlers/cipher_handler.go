// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"classical-ciphers-backend/crypto"
	"classical-ciphers-backend/models"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type CipherHandler struct {
	maxTextLength int
	logger        *log.Logger
}

// NewCipherHandler returns a handler that rejects texts longer than
// maxTextLength runes. Zero disables the limit.
func NewCipherHandler(maxTextLength int, logger *log.Logger) *CipherHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &CipherHandler{
		maxTextLength: maxTextLength,
		logger:        logger,
	}
}

// Register mounts every cipher route under group.
func (h *CipherHandler) Register(group *gin.RouterGroup) {
	group.GET("/health", h.HealthCheck)
	group.GET("/ciphers", h.ListCiphers)
	group.GET("/ciphers/:name", h.DescribeCipher)

	cipher := group.Group("/cipher")
	{
		cipher.POST("/caesar", h.Caesar)
		cipher.POST("/vigenere", h.Vigenere)
		cipher.POST("/columnar", h.Columnar)
		cipher.POST("/atbash", h.Atbash)
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": Version,
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogueResponse{
		Success: true,
		Ciphers: crypto.Catalogue(),
	})
}

func (h *CipherHandler) DescribeCipher(c *gin.Context) {
	info, err := crypto.Lookup(c.Param("name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, crypto.ErrUnknownCipher) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.CipherInfoResponse{
			Success: false,
			Message: fmt.Sprintf("Error: %v", err),
		})
		return
	}
	c.JSON(http.StatusOK, models.CipherInfoResponse{
		Success: true,
		Cipher:  &info,
	})
}

func (h *CipherHandler) Caesar(c *gin.Context) {
	var req models.CaesarRequest
	if !h.bind(c, &req) || !h.checkLength(c, req.Text) {
		return
	}
	h.respond(c, "caesar", crypto.Caesar(req.Text, *req.Shift, !req.Decrypt), nil)
}

func (h *CipherHandler) Vigenere(c *gin.Context) {
	var req models.VigenereRequest
	if !h.bind(c, &req) || !h.checkLength(c, req.Text) {
		return
	}
	result, err := crypto.VigenereTransform(req.Text, req.Key, !req.Decrypt)
	h.respond(c, "vigenere", result, err)
}

func (h *CipherHandler) Columnar(c *gin.Context) {
	var req models.ColumnarRequest
	if !h.bind(c, &req) || !h.checkLength(c, req.Text) {
		return
	}
	result, err := crypto.ColumnarTransform(req.Text, req.Key, !req.Decrypt)
	h.respond(c, "columnar", result, err)
}

func (h *CipherHandler) Atbash(c *gin.Context) {
	var req models.AtbashRequest
	if !h.bind(c, &req) || !h.checkLength(c, req.Text) {
		return
	}
	h.respond(c, "atbash", crypto.Atbash(req.Text), nil)
}

func (h *CipherHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return false
	}
	return true
}

func (h *CipherHandler) checkLength(c *gin.Context, text string) bool {
	if h.maxTextLength == 0 {
		return true
	}
	if n := utf8.RuneCountInString(text); n > h.maxTextLength {
		c.JSON(http.StatusRequestEntityTooLarge, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Text too long. Maximum length: %d characters, got: %d", h.maxTextLength, n),
		})
		return false
	}
	return true
}

func (h *CipherHandler) respond(c *gin.Context, cipher, result string, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, crypto.ErrInvalidKey) {
			status = http.StatusBadRequest
		}
		h.logger.Debug("cipher rejected request", "cipher", cipher, "err", err)
		c.JSON(status, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Error: %v", err),
			Cipher:  cipher,
		})
		return
	}
	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Cipher:  cipher,
		Result:  result,
	})
}
