package handler

import (
	tele "gopkg.in/telebot.v3"
)

// handleFacts shows a fresh set of facts
func (h *Handler) handleFacts(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	facts := h.factService.Facts(ctx, h.factsCount)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMoreFacts),
		markup.Row(btnMainMenu),
	)

	return h.editOrSend(c, formatFacts(facts), markup)
}
