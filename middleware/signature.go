package middleware

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"io"

	"attendbot/constants"
	"attendbot/response"

	"github.com/gin-gonic/gin"
)

// ParsePublicKey đọc public key dạng hex của ứng dụng Discord
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, hex.ErrLength
	}
	return ed25519.PublicKey(raw), nil
}

// DiscordSignatureMiddleware kiểm tra chữ ký ed25519 của timestamp+body
func DiscordSignatureMiddleware(publicKey ed25519.PublicKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		sig, err := hex.DecodeString(c.GetHeader(constants.HeaderSignature))
		timestamp := c.GetHeader(constants.HeaderTimestamp)
		if err != nil || len(sig) != ed25519.SignatureSize || timestamp == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Dữ liệu không hợp lệ")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		msg := make([]byte, 0, len(timestamp)+len(body))
		msg = append(msg, timestamp...)
		msg = append(msg, body...)
		if !ed25519.Verify(publicKey, msg, sig) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
