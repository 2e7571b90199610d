package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/dto"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/middleware"
	randomgenerator "github.com/mikiasgoitom/reactsync/internal/infrastructure/random_generator"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

type CSRFHandler struct {
	randomGen contract.IRandomGenerator
	config    usecasecontract.IConfigProvider
	logger    usecasecontract.IAppLogger
}

func NewCSRFHandler(randomGen contract.IRandomGenerator, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *CSRFHandler {
	return &CSRFHandler{randomGen: randomGen, config: config, logger: logger}
}

// IssueToken sets a fresh csrf_token cookie and echoes the value so pages
// can embed it in their markup.
func (h *CSRFHandler) IssueToken(c *gin.Context) {
	token, err := h.randomGen.GenerateRandomToken(randomgenerator.CSRFTokenBytes)
	if err != nil {
		h.logger.Errorf("failed to issue csrf token: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	// readable by page scripts, which must echo it back
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CSRFCookie, token, 0, "/", "", h.config.GetSecureCookies(), false)
	SuccessHandler(c, http.StatusOK, dto.CSRFTokenResponse{CSRFToken: token})
}
