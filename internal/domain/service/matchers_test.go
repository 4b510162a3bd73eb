package service

import (
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

// nilTime matches a nil *time.Time argument.
func nilTime() gomock.Matcher {
	return gomock.Nil()
}

type notificationLogMatcher struct {
	notificationID int64
	status         string
	errMsg         string
}

// matchNotificationLog matches a notification log row by target, status and
// error message.
func matchNotificationLog(notificationID int64, status, errMsg string) gomock.Matcher {
	return notificationLogMatcher{
		notificationID: notificationID,
		status:         status,
		errMsg:         errMsg,
	}
}

func (m notificationLogMatcher) Matches(x any) bool {
	row, ok := x.(*entity.NotificationLog)
	if !ok {
		return false
	}
	return row.NotificationID == m.notificationID &&
		row.Status == m.status &&
		row.Error == m.errMsg &&
		!row.SentAt.IsZero()
}

func (m notificationLogMatcher) String() string {
	return fmt.Sprintf("notification log {id=%d status=%s error=%q}", m.notificationID, m.status, m.errMsg)
}

type forwarderLogMatcher struct {
	forwarderID    int64
	status         string
	matchedKeyword string
}

// matchForwarderLog matches a forwarder log row by rule, status and keyword.
func matchForwarderLog(forwarderID int64, status, matchedKeyword string) gomock.Matcher {
	return forwarderLogMatcher{
		forwarderID:    forwarderID,
		status:         status,
		matchedKeyword: matchedKeyword,
	}
}

func (m forwarderLogMatcher) Matches(x any) bool {
	row, ok := x.(*entity.ForwarderLog)
	if !ok {
		return false
	}
	return row.ForwarderID == m.forwarderID &&
		row.Status == m.status &&
		row.MatchedKeyword == m.matchedKeyword &&
		!row.ForwardedAt.IsZero()
}

func (m forwarderLogMatcher) String() string {
	return fmt.Sprintf("forwarder log {id=%d status=%s keyword=%q}", m.forwarderID, m.status, m.matchedKeyword)
}

type forwarderLogInspector struct {
	fn func(*entity.ForwarderLog)
}

// inspectForwarderLog runs assertions against the captured log row.
func inspectForwarderLog(fn func(*entity.ForwarderLog)) gomock.Matcher {
	return forwarderLogInspector{fn: fn}
}

func (m forwarderLogInspector) Matches(x any) bool {
	row, ok := x.(*entity.ForwarderLog)
	if !ok {
		return false
	}
	m.fn(row)
	return true
}

func (m forwarderLogInspector) String() string {
	return "forwarder log inspector"
}
