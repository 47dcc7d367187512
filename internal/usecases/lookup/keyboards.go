package lookup

// Клавиатуры собираются как map[string]interface{} - в таком виде они
// уходят в reply_markup без промежуточных типов.

// mainKeyboard основная reply-клавиатура; админу добавляется ряд с панелью
func mainKeyboard(isAdmin bool) map[string]interface{} {
	rows := [][]map[string]string{
		{
			{"text": "📱 Number Info"},
			{"text": "🆔 Aadhaar"},
			{"text": "🚗 Vehicle"},
		},
		{
			{"text": "🏦 IFSC"},
			{"text": "🌐 IP Lookup"},
			{"text": "📮 Pincode"},
		},
		{
			{"text": "💎 My Credits"},
			{"text": "🛒 Buy Credits"},
			{"text": "ℹ️ Help"},
		},
	}

	if isAdmin {
		rows = append(rows, []map[string]string{
			{"text": "👑 Admin Panel"},
		})
	}

	return map[string]interface{}{
		"keyboard":          rows,
		"resize_keyboard":   true,
		"one_time_keyboard": false,
	}
}

// adminKeyboard reply-клавиатура админ-панели
func adminKeyboard() map[string]interface{} {
	return map[string]interface{}{
		"keyboard": [][]map[string]string{
			{{"text": "📊 User Statistics"}, {"text": "👥 All Users"}},
			{{"text": "➕ Add Credits"}, {"text": "🔨 Ban User"}},
			{{"text": "🔓 Unban User"}, {"text": "🛡️ Protect Number"}},
			{{"text": "📈 Search Stats"}, {"text": "🏠 Main Menu"}},
		},
		"resize_keyboard":   true,
		"one_time_keyboard": false,
	}
}

// joinChannelKeyboard inline-клавиатура с приглашением в канал
func joinChannelKeyboard(channelLink string) map[string]interface{} {
	return map[string]interface{}{
		"inline_keyboard": [][]map[string]string{
			{{"text": "Join Our Channel", "url": channelLink}},
			{{"text": "✅ I Have Joined", "callback_data": "joined_channel"}},
		},
	}
}
