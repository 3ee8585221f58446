package handler

import (
	"context"
	"sync"
	"time"

	"englex/internal/domain"
	"englex/internal/middleware"
	"englex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds the remote lookups made while handling one update
const requestTimeout = 30 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	quizService    *service.QuizService
	factService    *service.FactService
	historyService *service.HistoryService
	factsCount     int
	logger         *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// One quiz operation at a time per user
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex

	now func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	quizService *service.QuizService,
	factService *service.FactService,
	historyService *service.HistoryService,
	factsCount int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		quizService:    quizService,
		factService:    factService,
		historyService: historyService,
		factsCount:     factsCount,
		logger:         logger,
		states:         make(map[int64]*domain.StateData),
		callbackLocks:  make(map[int64]*sync.Mutex),
		now:            time.Now,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands and text answers do their own password check
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons) require an authorized user
	buttons := h.bot.Group()
	buttons.Use(middleware.AuthMiddleware(h.authService, h.logger))

	buttons.Handle(&btnChooseLevel, h.handleChooseLevel)
	buttons.Handle(&btnFacts, h.handleFacts)
	buttons.Handle(&btnMoreFacts, h.handleFacts)
	buttons.Handle(&btnViewDays, h.handleViewDays)
	buttons.Handle(&btnBackToDays, h.handleViewDays)
	buttons.Handle(&btnSkip, h.handleSkip)
	buttons.Handle(&btnMainMenu, h.handleMainMenu)

	// Generic callback handler for dynamic data
	buttons.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// setSession stores session as the user's quiz state
func (h *Handler) setSession(userID int64, session domain.QuizSession) {
	state := domain.StateQuiz
	if session.Done() {
		state = domain.StateFinished
	}
	h.SetState(userID, &domain.StateData{State: state, Session: &session})
}

// lockUser serializes quiz operations of one user; call the returned func to release
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnChooseLevel = tele.Btn{
		Unique: "choose_level",
		Text:   "📚 Выбрать уровень",
	}
	btnFacts = tele.Btn{
		Unique: "facts",
		Text:   "💡 Интересные факты",
	}
	btnMoreFacts = tele.Btn{
		Unique: "more_facts",
		Text:   "🔄 Загрузить новые факты",
	}
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📅 Изученные слова",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ К дням",
	}
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Пропустить",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnChooseLevel),
		menu.Row(btnFacts),
		menu.Row(btnViewDays),
	)
	return menu
}
