package tui

import (
	"context"
	"errors"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// now is replaced in tests.
	now func() time.Time
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger, now: time.Now}
}

// LoginFlow shows the sign-in menu until the user is signed in or quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewAuthFormModel(ctx, t.services.AuthService, authLogin),
		pageRegister: NewAuthFormModel(ctx, t.services.AuthService, authRegister),
	}

	root := newSignInModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(signInModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the signed-in screens. logout is true when the user signed
// out rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.now(), t.logger)
	defer model.close()

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
