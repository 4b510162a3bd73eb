package entity

import "time"

// Server mirrors a platform guild the bot has seen. Rows are never deleted;
// removal from a guild only flips IsConnected off.
type Server struct {
	ID          int64     `json:"id" db:"id"`
	PlatformID  string    `json:"platform_id" db:"platform_id"`
	Name        string    `json:"name" db:"name"`
	IconURL     string    `json:"icon_url" db:"icon_url"`
	MemberCount int       `json:"member_count" db:"member_count"`
	IsConnected bool      `json:"is_connected" db:"is_connected"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Channel mirrors a text-like guild channel.
type Channel struct {
	ID         int64     `json:"id" db:"id"`
	PlatformID string    `json:"platform_id" db:"platform_id"`
	ServerID   int64     `json:"server_id" db:"server_id"`
	Name       string    `json:"name" db:"name"`
	Kind       string    `json:"kind" db:"kind"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Notification is a scheduled message. The bot runtime only mutates LastSent,
// NextScheduled and IsActive; everything else belongs to the API layer.
type Notification struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"user_id" db:"user_id"`
	ServerID         int64      `json:"server_id" db:"server_id"`
	ChannelID        int64      `json:"channel_id" db:"channel_id"`
	Title            string     `json:"title" db:"title"`
	Message          string     `json:"message" db:"message"`
	ScheduleDate     time.Time  `json:"schedule_date" db:"schedule_date"`
	RepeatType       string     `json:"repeat_type" db:"repeat_type"`
	EndDate          *time.Time `json:"end_date,omitempty" db:"end_date"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	Timezone         string     `json:"timezone" db:"timezone"`
	MentionsEveryone bool       `json:"mentions_everyone" db:"mentions_everyone"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
	LastSent         *time.Time `json:"last_sent,omitempty" db:"last_sent"`
	NextScheduled    *time.Time `json:"next_scheduled,omitempty" db:"next_scheduled"`
}

// DueNotification is a due row joined with its delivery target. The channel
// side of the join is optional: a deleted channel leaves the platform ID empty
// and the scheduler records a failed delivery.
type DueNotification struct {
	Notification
	ServerPlatformID  string `json:"server_platform_id" db:"server_platform_id"`
	ChannelPlatformID string `json:"channel_platform_id" db:"channel_platform_id"`
	ChannelName       string `json:"channel_name" db:"channel_name"`
}

// NotificationLog records one delivery attempt. Append only.
type NotificationLog struct {
	ID             int64     `json:"id" db:"id"`
	NotificationID int64     `json:"notification_id" db:"notification_id"`
	SentAt         time.Time `json:"sent_at" db:"sent_at"`
	Status         string    `json:"status" db:"status"`
	Error          string    `json:"error,omitempty" db:"error"`
}

// Forwarder copies messages matching its keywords from a source channel or
// thread to a destination. Thread IDs are platform-native snowflakes.
type Forwarder struct {
	ID                   int64     `json:"id" db:"id"`
	UserID               int64     `json:"user_id" db:"user_id"`
	Name                 string    `json:"name" db:"name"`
	SourceServerID       int64     `json:"source_server_id" db:"source_server_id"`
	SourceChannelID      int64     `json:"source_channel_id" db:"source_channel_id"`
	SourceThreadID       string    `json:"source_thread_id,omitempty" db:"source_thread_id"`
	DestinationServerID  int64     `json:"destination_server_id" db:"destination_server_id"`
	DestinationChannelID int64     `json:"destination_channel_id" db:"destination_channel_id"`
	DestinationThreadID  string    `json:"destination_thread_id,omitempty" db:"destination_thread_id"`
	Keywords             []string  `json:"keywords" db:"keywords"`
	MatchType            string    `json:"match_type" db:"match_type"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// ActiveForwarder is an active rule joined with the platform IDs of its source
// and destination channels.
type ActiveForwarder struct {
	Forwarder
	SourceChannelPlatformID      string `json:"source_channel_platform_id" db:"source_channel_platform_id"`
	DestinationChannelPlatformID string `json:"destination_channel_platform_id" db:"destination_channel_platform_id"`
}

// ForwarderLog records one forwarding attempt. Append only; OriginalMessage is
// truncated to 500 characters before insert.
type ForwarderLog struct {
	ID              int64     `json:"id" db:"id"`
	ForwarderID     int64     `json:"forwarder_id" db:"forwarder_id"`
	ForwardedAt     time.Time `json:"forwarded_at" db:"forwarded_at"`
	OriginalMessage string    `json:"original_message" db:"original_message"`
	MatchedKeyword  string    `json:"matched_keyword,omitempty" db:"matched_keyword"`
	Status          string    `json:"status" db:"status"`
	Error           string    `json:"error,omitempty" db:"error"`
}

// BotSettings is the singleton settings row.
type BotSettings struct {
	DefaultTimezone      string `json:"default_timezone" db:"default_timezone"`
	MaxMessagesPerMinute int    `json:"max_messages_per_minute" db:"max_messages_per_minute"`
	EnableAnalytics      bool   `json:"enable_analytics" db:"enable_analytics"`
	AutoCleanupDays      int    `json:"auto_cleanup_days" db:"auto_cleanup_days"`
	WorkingDays          []int  `json:"working_days" db:"working_days"`
}

// BotStatus is the read-side projection served to the API layer.
type BotStatus struct {
	Online       bool   `json:"online"`
	IdentityName string `json:"identity_name,omitempty"`
	IdentityID   string `json:"identity_id,omitempty"`
	ServerCount  int    `json:"server_count"`
}
