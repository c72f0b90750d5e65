// Package imagekit signs short-lived upload parameters for the external
// image host. The binary upload itself goes from the client straight to the
// host; this server only vouches for it.
package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/google/uuid"
)

// Upload parameters are valid for this long.
const authWindow = 30 * time.Minute

type AuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type Client struct {
	publicKey   string
	privateKey  string
	urlEndpoint string
}

func NewClient(cfg *config.ImageKitConfig) *Client {
	return &Client{
		publicKey:   cfg.PublicKey,
		privateKey:  cfg.PrivateKey,
		urlEndpoint: cfg.URLEndpoint,
	}
}

func (c *Client) PublicKey() string   { return c.publicKey }
func (c *Client) URLEndpoint() string { return c.urlEndpoint }

// AuthParamsAt signs the given token with an expiry relative to now. The
// signature is HMAC-SHA1 over token+expire with the private key, per the
// host's upload API contract.
func (c *Client) AuthParamsAt(token string, now time.Time) AuthParams {
	expire := now.Add(authWindow).Unix()
	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return AuthParams{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}

// AuthParams mints fresh upload parameters with a random token.
func (c *Client) AuthParams() AuthParams {
	return c.AuthParamsAt(uuid.NewString(), time.Now())
}
