package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/service"
)

// GetSite 返回组合站点文档；降级路径保证总能返回数据
func (a *API) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, a.site.GetSiteData())
}

// UpdateSite 以一份组合文档整体替换全部五个区块
func (a *API) UpdateSite(c *gin.Context) {
	var doc service.SiteDocument
	if !bindJSON(c, &doc, "invalid site document") {
		return
	}

	updated, err := a.site.ReplaceSiteData(&doc)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error().Err(err).Msg("composite replace failed")
		respondError(c, http.StatusInternalServerError, "failed to save site content")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetSection 按区块标识读取单个嵌套文档
func (a *API) GetSection(c *gin.Context) {
	kind, err := service.ParseSectionKind(c.Param("section"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}

	doc, err := a.sections.ReadSection(kind)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			respondError(c, http.StatusNotFound, "section not found")
			return
		}
		a.log.Error().Err(err).Str("section", string(kind)).Msg("section read failed")
		respondError(c, http.StatusInternalServerError, "failed to load section")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSection 以一份完整文档替换单个区块，并回显新的权威状态
func (a *API) UpdateSection(c *gin.Context) {
	kind, err := service.ParseSectionKind(c.Param("section"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown section")
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section document")
		return
	}

	doc, err := a.sections.ReplaceSection(kind, json.RawMessage(raw))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error().Err(err).Str("section", string(kind)).Msg("section replace failed")
		respondError(c, http.StatusInternalServerError, "failed to save section")
		return
	}

	a.site.RefreshSnapshot()
	c.JSON(http.StatusOK, doc)
}
