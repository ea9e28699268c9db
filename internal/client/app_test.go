package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/mock"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/internal/tui"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	loginErr   error
	logouts    []bool
	loginCalls int
	loopCalls  int
}

func (u *fakeUI) LoginFlow(context.Context) error {
	u.loginCalls++
	return u.loginErr
}

func (u *fakeUI) MainLoop(context.Context) (bool, error) {
	logout := false
	if u.loopCalls < len(u.logouts) {
		logout = u.logouts[u.loopCalls]
	}
	u.loopCalls++
	return logout, nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService, *mock.MockClientHealthJob) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockClientAuthService(ctrl)
	health := mock.NewMockClientHealthJob(ctrl)
	health.EXPECT().Stop().AnyTimes()

	services := &service.ClientServices{
		AuthService: auth,
		HealthJob:   health,
		Registry:    syncer.NewRegistry(logger.Nop()),
	}

	app, err := NewApp(services, ui, config.Sync{FlushTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return app, auth, health
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{}
	app, auth, health := newTestApp(t, ui)

	auth.EXPECT().Session(gomock.Any()).Return(models.Session{Login: "alice"}, true)
	health.EXPECT().Start(gomock.Any(), healthInterval)

	require.NoError(t, app.Run())
	assert.Zero(t, ui.loginCalls)
	assert.Equal(t, 1, ui.loopCalls)
}

func TestApp_Run_LogoutShowsLoginAgain(t *testing.T) {
	ui := &fakeUI{logouts: []bool{true, false}}
	app, auth, health := newTestApp(t, ui)

	gomock.InOrder(
		auth.EXPECT().Session(gomock.Any()).Return(models.Session{Login: "alice"}, true),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().Session(gomock.Any()).Return(models.Session{}, false),
	)
	health.EXPECT().Start(gomock.Any(), healthInterval).Times(2)

	require.NoError(t, app.Run())
	assert.Equal(t, 1, ui.loginCalls)
	assert.Equal(t, 2, ui.loopCalls)
}

func TestApp_Run_QuitOnLoginScreen(t *testing.T) {
	ui := &fakeUI{loginErr: tui.ErrUserQuit}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().Session(gomock.Any()).Return(models.Session{}, false)

	require.NoError(t, app.Run())
	assert.Zero(t, ui.loopCalls)
}

func TestApp_Run_LoginFlowError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &fakeUI{loginErr: boom}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().Session(gomock.Any()).Return(models.Session{}, false)

	assert.ErrorIs(t, app.Run(), boom)
}

func TestNewApp_NilDependency(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.Sync{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)
}
