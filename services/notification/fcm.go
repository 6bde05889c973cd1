package notification

import (
	"context"

	accountRepo "medcrew/database/repository/account"
	"medcrew/models"
	"medcrew/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// FCMNotifier pushes notifications to the account's registered device.
type FCMNotifier struct {
	Repo accountRepo.AccountRepository
}

// NewFCMNotifier creates an FCM-backed Notifier.
func NewFCMNotifier(repo accountRepo.AccountRepository) *FCMNotifier {
	return &FCMNotifier{Repo: repo}
}

// Notify looks up the account's FCM token and sends a push. Failures are
// logged and swallowed; notification delivery never fails a wizard action.
func (f *FCMNotifier) Notify(ctx context.Context, accountID string, n models.Notification) {
	logger := utils.GetLogger()

	acct, err := f.Repo.GetByIDWithProjection(accountID, bson.M{"id": 1, "fcmToken": 1})
	if err != nil || acct == nil {
		logger.Warn("Notify: could not resolve account", zap.String("accountId", accountID), zap.Error(err))
		return
	}
	if acct.FCMToken == "" {
		logger.Debug("Notify: account has no FCM token", zap.String("accountId", accountID))
		return
	}

	msg := &messaging.Message{
		Token: acct.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Description,
		},
		Data: map[string]string{
			"severity": string(n.Severity),
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("Notify: failed to send FCM message", zap.String("accountId", accountID), zap.Error(err))
	}
}
