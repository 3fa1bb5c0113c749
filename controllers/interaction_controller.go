package controllers

import (
	"context"
	"net/http"
	"time"

	"attendbot/builders"
	"attendbot/commands"
	"attendbot/constants"
	"attendbot/dto"
	apperrors "attendbot/errors"
	"attendbot/middleware"
	"attendbot/response"
	"attendbot/services/logger"

	"github.com/gin-gonic/gin"
)

// CommandDispatcher chạy một lệnh của bot
type CommandDispatcher interface {
	Dispatch(ctx context.Context, req commands.Request) (commands.Result, error)
}

var commandKinds = map[string]commands.Kind{
	constants.CommandCheckIn:  commands.KindCheckIn,
	constants.CommandCheckOut: commands.KindCheckOut,
	constants.CommandReport:   commands.KindReport,
	constants.CommandDelete:   commands.KindDelete,
	constants.CommandLotto:    commands.KindLotto,
	constants.CommandMenu:     commands.KindMenu,
}

// InteractionController nhận interaction từ Discord
type InteractionController struct {
	dispatcher CommandDispatcher
	logger     logger.Logger
	now        func() time.Time
}

func NewInteractionController(dispatcher CommandDispatcher, log logger.Logger, now func() time.Time) *InteractionController {
	if now == nil {
		now = time.Now
	}
	return &InteractionController{dispatcher: dispatcher, logger: log, now: now}
}

// HandleInteraction xử lý PING và slash command
func (ic *InteractionController) HandleInteraction(c *gin.Context) {
	var interaction dto.Interaction
	if err := c.ShouldBindJSON(&interaction); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	switch interaction.Type {
	case dto.InteractionPing:
		c.JSON(http.StatusOK, dto.InteractionResponse{Type: dto.CallbackPong})
		return
	case dto.InteractionApplicationCommand:
	default:
		response.BadRequest(c, "Loại interaction không được hỗ trợ")
		return
	}

	req, ok := toCommandRequest(&interaction)
	if !ok {
		ic.reply(c, builders.InvalidRequestEmbed("알 수 없는 명령입니다."))
		return
	}

	result, err := ic.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsValidation(err) {
			ic.reply(c, builders.InvalidRequestEmbed(apperrors.GetAppError(err).Message))
			return
		}
		ic.logger.Error("❌ [%s] lệnh %s của %s thất bại: %v", middleware.RequestID(c), req.Kind, req.CallerID, err)
		ic.reply(c, builders.ErrorEmbed())
		return
	}

	ic.reply(c, builders.RenderResult(result, ic.now()))
}

func (ic *InteractionController) reply(c *gin.Context, embed dto.Embed) {
	c.JSON(http.StatusOK, dto.InteractionResponse{
		Type: dto.CallbackChannelMessageWithSource,
		Data: &dto.InteractionCallbackData{Embeds: []dto.Embed{embed}},
	})
}

func toCommandRequest(i *dto.Interaction) (commands.Request, bool) {
	if i.Data == nil {
		return commands.Request{}, false
	}
	kind, ok := commandKinds[i.Data.Name]
	if !ok {
		return commands.Request{}, false
	}

	req := commands.Request{Kind: kind, DateArg: i.StringOption(constants.OptionDate)}
	if caller := i.Caller(); caller != nil {
		req.CallerID = caller.ID
		req.CallerName = caller.Username
	}
	return req, true
}
