package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
)

// GetSiteConfig 返回站点元信息，未保存过时返回默认值
func (a *API) GetSiteConfig(c *gin.Context) {
	doc, err := a.siteConfig.Get()
	if err != nil {
		a.log.Error().Err(err).Msg("site config read failed")
		respondError(c, http.StatusInternalServerError, "failed to load site config")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSiteConfig 整体覆盖站点元信息
func (a *API) UpdateSiteConfig(c *gin.Context) {
	var doc service.SiteConfigDocument
	if !bindJSON(c, &doc, "invalid site config") {
		return
	}

	saved, err := a.siteConfig.Save(&doc)
	if err != nil {
		a.log.Error().Err(err).Msg("site config save failed")
		respondError(c, http.StatusInternalServerError, "failed to save site config")
		return
	}
	c.JSON(http.StatusOK, saved)
}
