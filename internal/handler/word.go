package handler

import (
	"strings"

	"englex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	// If not authorized, check password
	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send(errorText)
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send("✅ Доступ разрешён!\n\n"+mainMenuText, mainMenuMarkup())
		}

		return c.Send("❌ Неверный пароль")
	}

	unlock := h.lockUser(userID)
	defer unlock()

	// State is read under the user lock so concurrent answers see each other's result
	state := h.GetState(userID)
	if state.State != domain.StateQuiz || state.Session == nil || state.Session.Done() {
		return c.Send("Выбери уровень, чтобы начать.", mainMenuMarkup())
	}

	return h.checkAnswer(c, userID, *state.Session, text)
}

// checkAnswer evaluates text against the current quiz word
func (h *Handler) checkAnswer(c tele.Context, userID int64, session domain.QuizSession, text string) error {
	ctx, cancel := requestContext()
	defer cancel()

	result, err := h.quizService.SubmitAnswer(ctx, userID, session, text)
	if err != nil {
		h.logger.Error("Failed to submit answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Не удалось сохранить результат. Попробуйте ещё раз.")
	}

	if !result.Correct {
		return c.Send(formatReveal(result.Revealed), quizMarkup())
	}

	h.setSession(userID, result.Session)

	if result.Session.Done() {
		return c.Send("✅ Верно!\n\n"+finishedText, finishedMarkup(result.Session.Level))
	}
	return c.Send("✅ Верно!\n\n"+formatWordPrompt(result.Session), quizMarkup())
}
