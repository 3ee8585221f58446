package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// editOrSend edits the callback's message, or sends a new one for commands
// and for messages that can no longer be edited
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Double taps edit the same message twice
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks of dynamic buttons
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch {
	case strings.HasPrefix(data, levelPrefix):
		return h.handleLevel(c, data)
	case strings.HasPrefix(data, resetPrefix):
		return h.handleReset(c, data)
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "day_"):
		return h.handleDaySelection(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleViewDays shows the first page of study days
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDaysPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "page_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}
	return h.showDaysPage(c, page)
}

func (h *Handler) showDaysPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.historyService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	if len(days) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "У тебя пока нет изученных слов",
			ShowAlert: true,
		})
	}

	return h.editOrSend(c, "📅 Дни занятий:", daysMarkup(days, page, totalPages, h.now()))
}

// handleDaySelection shows words for selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, "day_")

	words, err := h.historyService.GetWordsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get words by date",
			zap.Error(err),
			zap.String("date", dateStr),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Нет слов за этот день"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnBackToDays, btnMainMenu),
	)

	return h.editOrSend(c, formatDayWords(words), markup)
}
