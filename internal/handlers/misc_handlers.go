package handlers

import (
	"net/http"

	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// contactRequest is the contact form payload.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactForm acknowledges a contact form submission. There is no mail
// backend; submissions are only logged.
func ContactForm(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Message) || !utils.IsValidEmail(req.Email) {
		utils.RespondValidationFailed(c, "name, a valid email and message are required")
		return
	}
	utils.LogInfo("Contact form submission", map[string]interface{}{"name": req.Name, "email": req.Email, "subject": req.Subject})
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for contacting us! We will get back to you within 24 hours."})
}

// newsletterRequest is the newsletter signup payload.
type newsletterRequest struct {
	Email string `json:"email"`
}

// NewsletterSignup acknowledges a newsletter subscription.
func NewsletterSignup(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.RespondValidationFailed(c, "a valid email is required")
		return
	}
	utils.LogInfo("Newsletter subscription", map[string]interface{}{"email": req.Email})
	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to our newsletter!"})
}
