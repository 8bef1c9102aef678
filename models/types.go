// Package models contain needed models
package models

import "classical-ciphers-backend/crypto"

// CaesarRequest represents a Caesar encrypt or decrypt request
type CaesarRequest struct {
	Text    string `json:"text"`
	Shift   *int   `json:"shift" binding:"required"`
	Decrypt bool   `json:"decrypt"`
}

// VigenereRequest represents a Vigenère encrypt or decrypt request
type VigenereRequest struct {
	Text    string `json:"text"`
	Key     string `json:"key"`
	Decrypt bool   `json:"decrypt"`
}

// ColumnarRequest carries the key exactly as typed, e.g. "3,1,4,2"
type ColumnarRequest struct {
	Text    string `json:"text"`
	Key     string `json:"key"`
	Decrypt bool   `json:"decrypt"`
}

// AtbashRequest represents an Atbash request; the cipher is its own inverse
type AtbashRequest struct {
	Text string `json:"text"`
}

// CipherResponse represents the response after a transformation
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Cipher  string `json:"cipher,omitempty"`
	Result  string `json:"result,omitempty"`
}

// CatalogueResponse lists the available ciphers
type CatalogueResponse struct {
	Success bool          `json:"success"`
	Ciphers []crypto.Info `json:"ciphers"`
}

// CipherInfoResponse describes a single cipher
type CipherInfoResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Cipher  *crypto.Info `json:"cipher,omitempty"`
}
