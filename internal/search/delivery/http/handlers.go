package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"laura-assistant/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Search godoc
// @Summary     Run a web search
// @Description Searches the web for the given input. When the backend is unavailable or out of quota, mock results are returned and the provider field says so.
// @Tags        Search
// @Produce     json
// @Param       user_input query string true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.UserInput)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// ExportExcel godoc
// @Summary     Export search results to Excel
// @Description Renders a previously returned search response into an .xlsx workbook and streams it back.
// @Tags        Search
// @Accept      json
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       body body exportReq true "Search response to export"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/search/export/excel [POST]
func (h *handler) ExportExcel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportExcel(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportExcel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, xlsxContentType, output.Content)
}
