package handler

import (
	"net/http"

	"carmarket-bff/services/market/helpers"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

// StagePreviewHandler handles POST /uploads/previews (multipart field "image")
func (h *MarketHandler) StagePreviewHandler(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		helpers.HandleBindError(c, "StagePreviewHandler", err)
		return
	}
	file, err := fh.Open()
	if err != nil {
		helpers.HandleBindError(c, "StagePreviewHandler", err)
		return
	}
	defer file.Close()

	pv, err := h.catalog.StagePreview(helpers.CurrentSession(c), fh.Filename, file)
	if err != nil {
		helpers.RespondError(c, "StagePreviewHandler", err, map[string]any{"filename": fh.Filename})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.PreviewResponse{
		Handle:      pv.Handle,
		Filename:    pv.Filename,
		ContentType: pv.ContentType,
		Size:        pv.Size,
		URL:         "/uploads/previews/" + pv.Handle,
	}, "preview staged")
}

// GetPreviewHandler handles GET /uploads/previews/:preview_id and serves the staged bytes
func (h *MarketHandler) GetPreviewHandler(c *gin.Context) {
	handle := c.Param("preview_id")
	pv, err := h.catalog.GetPreview(helpers.CurrentSession(c), handle)
	if err != nil {
		helpers.RespondError(c, "GetPreviewHandler", err, map[string]any{"handle": handle})
		return
	}
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, pv.ContentType, pv.Data)
}

// RevokePreviewHandler handles DELETE /uploads/previews/:preview_id
func (h *MarketHandler) RevokePreviewHandler(c *gin.Context) {
	handle := c.Param("preview_id")
	if err := h.catalog.RevokePreview(helpers.CurrentSession(c), handle); err != nil {
		helpers.RespondError(c, "RevokePreviewHandler", err, map[string]any{"handle": handle})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "preview revoked")
}

// CommitPreviewHandler handles POST /uploads/previews/:preview_id/commit
func (h *MarketHandler) CommitPreviewHandler(c *gin.Context) {
	handle := c.Param("preview_id")
	path, err := h.catalog.CommitPreview(c.Request.Context(), helpers.CurrentSession(c), handle)
	if err != nil {
		helpers.RespondError(c, "CommitPreviewHandler", err, map[string]any{"handle": handle})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CommitResponse{Path: path, URL: h.assets.AssetURL(path)}, "image uploaded successfully")
	helpers.LogSuccess("CommitPreviewHandler", "image uploaded successfully", map[string]any{"handle": handle, "path": path})
}
