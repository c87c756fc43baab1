package api

import (
	"net/http"

	"github.com/maksimkurb/wgconf/src/internal/wgkey"
)

// GenerateKeyPair returns a fresh private key and its public key.
// POST /api/v1/keys
func (h *Handler) GenerateKeyPair(w http.ResponseWriter, r *http.Request) {
	key, err := wgkey.Generate()
	if err != nil {
		WriteInternalError(w, "Failed to generate key: "+err.Error())
		return
	}

	writeJSONData(w, KeyPairResponse{
		PrivateKey: key.String(),
		PublicKey:  key.PublicKey().String(),
	})
}

// DerivePublicKey returns the public key of the submitted private key.
// POST /api/v1/keys/public
func (h *Handler) DerivePublicKey(w http.ResponseWriter, r *http.Request) {
	var req PublicKeyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	key, err := wgkey.Parse(req.PrivateKey)
	h.metrics.ObserveCodec("pubkey", err)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, KeyPairResponse{PublicKey: key.PublicKey().String()})
}
