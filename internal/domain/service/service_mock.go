package service

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/zunnuran/discord-bot/mocks"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockServerRepo       *mocks.MockServerRepo
	mockChannelRepo      *mocks.MockChannelRepo
	mockNotificationRepo *mocks.MockNotificationRepo
	mockForwarderRepo    *mocks.MockForwarderRepo
	mockSettingsRepo     *mocks.MockSettingsRepo
	mockGateway          *mocks.MockGateway
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	serverRepo := mocks.NewMockServerRepo(ctrl)
	dm.EXPECT().Server().Return(serverRepo).AnyTimes()

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	notificationRepo := mocks.NewMockNotificationRepo(ctrl)
	dm.EXPECT().Notification().Return(notificationRepo).AnyTimes()

	forwarderRepo := mocks.NewMockForwarderRepo(ctrl)
	dm.EXPECT().Forwarder().Return(forwarderRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockServerRepo:       serverRepo,
		mockChannelRepo:      channelRepo,
		mockNotificationRepo: notificationRepo,
		mockForwarderRepo:    forwarderRepo,
		mockSettingsRepo:     settingsRepo,
		mockGateway:          mocks.NewMockGateway(ctrl),
	}

	return
}
