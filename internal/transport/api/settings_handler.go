package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SettingsHandler хранилище настроек ключ/значение. Значение - произвольный JSON.
type SettingsHandler struct {
	settingSvs SettingServicer
}

func NewSettingsHandler(settingSvs SettingServicer) *SettingsHandler {
	return &SettingsHandler{
		settingSvs: settingSvs,
	}
}

func (h *SettingsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settings, err := h.settingSvs.List(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": mapSlice(settings, newSettingResponse)})
}

func (h *SettingsHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.settingSvs.Get(reqCtx, c.Param("key"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": newSettingResponse(setting)})
}

type PutSettingParams struct {
	Value json.RawMessage `binding:"required" json:"value"`
}

// Put PUT RouteGroup + SettingRoute. Создает или перезаписывает значение.
func (h *SettingsHandler) Put(c *gin.Context) {
	var params PutSettingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.settingSvs.Put(reqCtx, c.Param("key"), params.Value)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": newSettingResponse(setting)})
}

func (h *SettingsHandler) Delete(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.settingSvs.Delete(reqCtx, c.Param("key")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
