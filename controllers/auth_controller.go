// File: /controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/middleware"
	"github.com/nousyukukangen-ringo/isibasigeru/models"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
	"github.com/nousyukukangen-ringo/isibasigeru/utils"
)

const sessionLifetime = time.Hour * 24 * 7

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "email and password are required")
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.SendValidationError(c, "invalid email address")
		return
	}

	var existing models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "this email address is already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email); err != nil {
			log.Printf("Failed to send welcome email: %v", err)
		}
	}()

	utils.SendSuccess(c, gin.H{"message": "account created, please log in"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "email and password are required")
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "invalid email address or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "invalid email address or password")
		return
	}

	token, err := ac.generateSessionToken(user.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(sessionLifetime.Seconds()), "/", "", false, true)
	utils.SendSuccess(c, gin.H{"user": user.View()})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.SendSuccess(c, gin.H{"message": "logged out"})
}

// Me reports whether the request carries a valid session. Works logged-out:
// no session is a normal answer, not an error.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserFromRequest(c, ac.jwtSecret)
	if !ok {
		utils.SendSuccess(c, gin.H{"logged_in": false})
		return
	}

	var user models.User
	if err := ac.db.First(&user, userID).Error; err != nil {
		utils.SendSuccess(c, gin.H{"logged_in": false})
		return
	}

	utils.SendSuccess(c, gin.H{"logged_in": true, "user": user.View()})
}

func (ac *AuthController) generateSessionToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
