package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"suapa/dto"
	"suapa/repository"
	"suapa/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Generate2FASecretHandler generates a new TOTP secret and QR code for the
// caller to scan. Nothing is persisted until the code is confirmed.
func Generate2FASecretHandler(c *gin.Context, userRepo *repository.UserRepo) {
	userID := c.GetString("user_id")

	user, err := userRepo.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "SuaPaAI",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	var buf bytes.Buffer
	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	utils.Success(c, gin.H{
		"secret":  key.Secret(),
		"qr_code": "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FAHandler confirms the generated secret with a live code and turns
// 2FA on for the account.
func Enable2FAHandler(c *gin.Context, userRepo *repository.UserRepo) {
	var req dto.Enable2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	user, err := userRepo.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa_setup")
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	if err := userRepo.Enable2FA(c.Request.Context(), userID, req.Secret); err != nil {
		utils.TrackError("database", "enable_2fa")
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_setup")
	utils.Success(c, gin.H{"message": "2FA enabled successfully"})
}
