package referral

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Identity is the host platform's numeric user id
type Identity struct {
	UserID int64
	Source string
}

// IdentityProvider supplies the current user's identity
type IdentityProvider interface {
	Identity(ctx context.Context) (Identity, error)
}

// IdentityError explains why no identity is available.
// It unwraps to domain.ErrMissingIdentity.
type IdentityError struct {
	Reason string
}

func (e *IdentityError) Error() string {
	return domain.ErrMsgMissingIdentity + ": " + e.Reason
}

func (e *IdentityError) Unwrap() error {
	return domain.ErrMissingIdentity
}

// StaticIdentity is an identity fixed by configuration. Zero means none.
type StaticIdentity struct {
	UserID int64
}

func (s StaticIdentity) Identity(ctx context.Context) (Identity, error) {
	if s.UserID <= 0 {
		return Identity{}, &IdentityError{Reason: ReasonNotInHost}
	}
	return Identity{UserID: s.UserID, Source: IdentitySourceStatic}, nil
}

// TelegramInitData reads the identity from a Telegram WebApp initData query string.
// The hash signature is not verified.
type TelegramInitData string

type telegramUser struct {
	ID int64 `json:"id"`
}

func (raw TelegramInitData) Identity(ctx context.Context) (Identity, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return Identity{}, &IdentityError{Reason: ReasonNotInHost}
	}

	id, err := ParseInitDataUser(string(raw))
	if err != nil || id <= 0 {
		return Identity{}, &IdentityError{Reason: ReasonUserUnavailable}
	}
	return Identity{UserID: id, Source: IdentitySourceTelegram}, nil
}

// ParseInitDataUser extracts user.id from an initData query string
func ParseInitDataUser(initData string) (int64, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidUserField, err)
	}

	rawUser := values.Get(InitDataUserField)
	if rawUser == "" {
		return 0, fmt.Errorf(ErrMsgInvalidUserField, domain.ErrMissingIdentity)
	}

	var u telegramUser
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidUserField, err)
	}
	return u.ID, nil
}

// BuildLink returns the bot deep link that credits userID as referrer
func BuildLink(botUsername string, userID int64) string {
	return fmt.Sprintf(LinkFormat, strings.TrimPrefix(botUsername, "@"), userID)
}
