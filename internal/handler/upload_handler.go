package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
)

type uploadPayload struct {
	Image  string `json:"image"`
	Folder string `json:"folder"`
}

// Upload 将 base64 图片透传给媒体存储，返回稳定 URL 与 publicId
func (a *API) Upload(c *gin.Context) {
	var payload uploadPayload
	if !bindJSON(c, &payload, "invalid upload payload") {
		return
	}

	stored, err := a.media.Store(c.Request.Context(), payload.Image, payload.Folder)
	if err != nil {
		if errors.Is(err, service.ErrMediaEmpty) || errors.Is(err, service.ErrMediaInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error().Err(err).Msg("media upload failed")
		respondError(c, http.StatusInternalServerError, "failed to save image")
		return
	}

	c.JSON(http.StatusOK, stored)
}
