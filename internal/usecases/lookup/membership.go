package lookup

import "context"

// isChannelMember проверяет членство пользователя в настроенном канале.
// Без настроенного канала и при ошибке Telegram API доступ открыт -
// гейт не должен блокировать бота из-за недоступности API.
func (s *Service) isChannelMember(ctx context.Context, userID int64) bool {
	if s.ChannelID == "" {
		return true
	}

	status, err := s.Telegram.GetChatMemberStatus(ctx, s.ChannelID, userID)
	if err != nil {
		s.Log.Warn("failed to check channel membership, allowing access",
			"error", err,
			"user_id", userID,
		)
		return true
	}

	switch status {
	case "member", "administrator", "creator":
		return true
	default:
		return false
	}
}
