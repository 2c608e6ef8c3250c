package utils // package utils provides helper functions for token creation and validation

import (
    "errors" // sentinel error for failed validation
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned for every validation failure: malformed input,
// wrong signing method, bad signature, missing claims, or expiry.  The
// classes are deliberately collapsed into one error so callers cannot build
// an oracle that distinguishes a forged token from an expired one.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the verified payload of a session token.  Subject holds
// the account email and AccountID the numeric identifier.  A SessionClaims
// value is only ever produced by a successful ValidateSessionToken call;
// nothing in this codebase inspects an unvalidated token's contents.
type SessionClaims struct {
    AccountID uint64 `json:"uid"` // numeric account identifier
    jwt.RegisteredClaims
}

// SessionToken represents a signed JWT along with its expiry.  The Token
// field contains the serialized JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Tokens are stateless bearer artifacts; no
// server-side session record exists for them.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for an account.  It takes
// the signing secret, the account's email and numeric id, and a TTL in
// minutes.  The claims are: subject (sub) = email, uid = account id,
// issued at (iat) and expiration (exp) = iat + TTL.
func NewSessionToken(secret string, accountID uint64, email string, ttlMin int) (SessionToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := SessionClaims{
        AccountID: accountID,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   email,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    // Create a new token object specifying the signing method (HS256) and
    // include the claims, then sign it with the provided secret.
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ValidateSessionToken parses and verifies a session token string.  It
// checks the signature with the given secret, rejects tokens signed with
// anything other than HMAC, and enforces expiry with zero clock skew: a
// token is already invalid at its exact expiry instant.  On any failure it
// returns ErrInvalidToken and never a partially trusted claims value.
func ValidateSessionToken(secret, raw string) (*SessionClaims, error) {
    claims := &SessionClaims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        // Type assert the signing method to HMAC; reject others.  An
        // attacker must not be able to downgrade to "none" or swap in an
        // asymmetric scheme keyed by the public half.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    // The library tolerates a token inspected exactly at its expiry
    // instant; this service does not.  Re-check the boundary explicitly,
    // and insist the claim is present at all.
    if claims.ExpiresAt == nil || !time.Now().UTC().Before(claims.ExpiresAt.Time) {
        return nil, ErrInvalidToken
    }
    if claims.AccountID == 0 || claims.Subject == "" {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
