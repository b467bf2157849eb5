package handler

import (
	"context"
	"net/http"

	"defidesk/internal/core"
	"defidesk/internal/notify"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DeskService . DeskService
type DeskService interface {
	Challenge(ctx context.Context, address string) (string, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	SubmitAction(ctx context.Context, token string, req core.ActionRequest) (core.ActionResult, error)
	CheckAllowance(input string) core.AllowanceState
	History(ctx context.Context, token string) ([]core.HistoryEntry, error)
	LastAction(ctx context.Context, token string) (core.LastActionInfo, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name NotificationSource . NotificationSource
type NotificationSource interface {
	Recent() []notify.Notification
}
