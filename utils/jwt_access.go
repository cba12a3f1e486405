package utils

import (
	"log"
	"os"
)

var JWTSecretKey string

// JWTIssuer must match the issuer claim stamped by the external identity
// provider.
const JWTIssuer = "toPlan"

func InitJWT() {
	// For tests, use a default secret if the environment variable isn't set
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
