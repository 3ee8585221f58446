package middleware

import (
	"englex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PasswordPrompt asks an unknown user for the bot password
const PasswordPrompt = "Привет! Это EngLex. Чтобы начать, введи пароль:"

// AuthMiddleware lets only authorized users through. Unauthorized callbacks
// get an alert; other updates get the password prompt.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			if authorized {
				return next(c)
			}

			logger.Info("Unauthorized update rejected", zap.Int64("user_id", userID))
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: PasswordPrompt, ShowAlert: true})
			}
			return c.Send(PasswordPrompt)
		}
	}
}
