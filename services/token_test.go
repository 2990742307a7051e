package services

import (
	"errors"
	"os"
	"testing"

	"suapa/utils"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func TestValidateRefreshTokenRoundTrip(t *testing.T) {
	refresh, err := GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	userID, err := ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	access, err := GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateRefreshToken(access); !errors.Is(err, ErrInvalidTokenType) {
		t.Errorf("err = %v, want %v", err, ErrInvalidTokenType)
	}
}

func TestValidateRefreshTokenRejectsExpired(t *testing.T) {
	saved := utils.RefreshTokenExpirationTime
	utils.RefreshTokenExpirationTime = -60
	defer func() { utils.RefreshTokenExpirationTime = saved }()

	refresh, err := GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if _, err := ValidateRefreshToken(refresh); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want %v", err, ErrTokenExpired)
	}
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateRefreshToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want %v", err, ErrInvalidToken)
	}
}
