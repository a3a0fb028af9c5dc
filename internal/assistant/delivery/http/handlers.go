package http

import (
	"github.com/gin-gonic/gin"

	"laura-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process one conversation turn
// @Description Classifies the message intent, answers from the profile or advances the meeting scheduling flow, and returns the reply with the full updated conversation state. The caller stores the state and sends it back with the next message.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message, prior history and prior state"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
