package model

import (
	"github.com/dgrijalva/jwt-go"
)

// ResultsClaims are custom claims extending default ones.
type ResultsClaims struct {
	Scope string `json:"scope"`
	jwt.StandardClaims
}
